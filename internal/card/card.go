// Package card models the interactive card bodies the app can send.
// The types here are transport-neutral; the googlechat adapter owns the
// conversion to Chat API wire structures.
package card

// Action function names the app's cards invoke. Card clicks deliver
// these back as the invoked function, so the dispatcher matches against
// the same constants.
const (
	ActionCardClick       = "onCardClick"
	ActionUpdateMessage   = "onUpdateMessage"
	ActionSelectionSubmit = "onSelectionSubmit"
	ActionAccessoryClick  = "onAccessoryClick"
)

// SelectionInputName is the form input name used by the selection
// cards. Submissions come back keyed by this name in formInputs.
const SelectionInputName = "selectedItems"

// Definition is one card: an identifier, a header title, and an ordered
// sequence of widgets.
type Definition struct {
	ID      string
	Title   string
	Widgets []Widget
}

// Widget is a tagged variant; exactly one field is non-nil.
type Widget struct {
	ButtonList     *ButtonList
	SelectionInput *SelectionInput
	DecoratedText  *DecoratedText
}

// ButtonList holds a row of buttons.
type ButtonList struct {
	Buttons []Button
}

// Button triggers an Action when clicked.
type Button struct {
	Text   string
	Action Action
}

// Action names the function a click invokes, with optional parameters
// echoed back in the click event.
type Action struct {
	Function   string
	Parameters map[string]string
}

// PlatformSource selects a host-platform data source for a selection
// input instead of fixed items.
type PlatformSource string

const (
	PlatformNone  PlatformSource = ""
	PlatformUsers PlatformSource = "USER"
)

// SelectionInput is a single or multi select form field.
type SelectionInput struct {
	Name        string
	Label       string
	MultiSelect bool

	// MaxSelected caps the number of selectable items when
	// MultiSelect is set. Zero means no explicit cap.
	MaxSelected int

	Items        []SelectionItem
	FromPlatform PlatformSource
}

// SelectionItem is one selectable entry.
type SelectionItem struct {
	Text  string
	Value string
}

// DecoratedText is a text widget with an optional accessory button.
type DecoratedText struct {
	Text   string
	Button *Button
}
