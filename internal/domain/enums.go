package domain

// ElementType represents the kind of UI element a user can interact with.
// The constant values are the wire and storage representation.
type ElementType string

const (
	ElementTypeButton    ElementType = "button"
	ElementTypeTextInput ElementType = "text_input"
)

func (t ElementType) String() string { return string(t) }

func (t ElementType) IsValid() bool {
	switch t {
	case ElementTypeButton, ElementTypeTextInput:
		return true
	}
	return false
}

// EventType represents the kind of interaction recorded against an element.
// The constant values are the wire and storage representation.
type EventType string

const (
	EventTypeClick      EventType = "click"
	EventTypeTextSubmit EventType = "text_submit"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeClick, EventTypeTextSubmit:
		return true
	}
	return false
}

// RequiresPayload reports whether events of this type must carry a
// non-blank payload. Click events may carry anything, including nothing.
func (t EventType) RequiresPayload() bool {
	return t == EventTypeTextSubmit
}
