package components

// UIState represents the current interaction state of a UI element.
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// String returns a short name for logging.
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// PositionComponent stores the screen position of an entity.
// For buttons and progress bars it is the top-left corner; for falling links it is the
// centre of the label.
type PositionComponent struct {
	X float64
	Y float64
}
