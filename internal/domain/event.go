package domain

// Event is a single recorded interaction with a UI element.
//
// Payload holds the submitted text exactly as received, untrimmed; nil means
// the request carried no payload at all. CreatedAt is Unix epoch seconds,
// assigned by the server at recording time.
type Event struct {
	ID        int64
	Type      EventType
	ElementID int64
	Payload   *string
	CreatedAt int64
}

// EventWithElement is an event joined with descriptive fields of the element
// it was recorded against. This is the shape returned to API clients.
type EventWithElement struct {
	Event

	ElementKey   string
	ElementLabel string
	ElementType  ElementType
}
