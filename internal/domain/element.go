package domain

// UIElement is a user-facing control that interaction events are recorded
// against. Key is the stable machine identifier clients send in requests;
// Label is the human-readable display name.
type UIElement struct {
	ID    int64
	Key   string
	Type  ElementType
	Label string
}

// SeedElements returns the fixed element catalog installed into an empty
// store on first start. Rows are inserted in this order, so IDs are
// assigned in this order too.
func SeedElements() []UIElement {
	return []UIElement{
		{Key: "btn_red", Type: ElementTypeButton, Label: "Red Button"},
		{Key: "btn_blue", Type: ElementTypeButton, Label: "Blue Button"},
		{Key: "txt_note", Type: ElementTypeTextInput, Label: "Note"},
		{Key: "txt_idea", Type: ElementTypeTextInput, Label: "Idea"},
	}
}
