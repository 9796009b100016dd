package card

// The card catalog. Every layout the app sends is statically defined
// here; there is no dynamic card assembly beyond these builders.

// Interactive is the basic button card sent by the /cardtest command.
func Interactive() Definition {
	return Definition{
		ID:    "interactive-card-1",
		Title: "Chaddon Interactive Card",
		Widgets: []Widget{
			{ButtonList: &ButtonList{Buttons: []Button{
				{
					Text: "Click Me",
					Action: Action{
						Function:   ActionCardClick,
						Parameters: map[string]string{"action_key": "action_value"},
					},
				},
			}}},
		},
	}
}

// UpdateMessage is the card whose button triggers the update-the-
// original-message workflow.
func UpdateMessage() Definition {
	return Definition{
		ID:    "update-card-1",
		Title: "Chaddon Update Card",
		Widgets: []Widget{
			{ButtonList: &ButtonList{Buttons: []Button{
				{
					Text:   "Update me",
					Action: Action{Function: ActionUpdateMessage},
				},
			}}},
		},
	}
}

// TextSelection is the multi-select card over a fixed item list.
func TextSelection() Definition {
	return Definition{
		ID:    "selection-card-1",
		Title: "Chaddon Selection Card",
		Widgets: []Widget{
			{SelectionInput: &SelectionInput{
				Name:        SelectionInputName,
				Label:       "Select items",
				MultiSelect: true,
				MaxSelected: 3,
				Items: []SelectionItem{
					{Text: "One", Value: "one"},
					{Text: "Two", Value: "two"},
					{Text: "Three", Value: "three"},
				},
			}},
			{ButtonList: &ButtonList{Buttons: []Button{
				{
					Text:   "Submit",
					Action: Action{Function: ActionSelectionSubmit},
				},
			}}},
		},
	}
}

// UserSelection is the selection card whose items come from the host
// platform's user directory instead of a fixed list.
func UserSelection() Definition {
	return Definition{
		ID:    "user-selection-card-1",
		Title: "Chaddon User Selection Card",
		Widgets: []Widget{
			{SelectionInput: &SelectionInput{
				Name:         SelectionInputName,
				Label:        "Select users",
				MultiSelect:  true,
				FromPlatform: PlatformUsers,
			}},
			{ButtonList: &ButtonList{Buttons: []Button{
				{
					Text:   "Submit",
					Action: Action{Function: ActionSelectionSubmit},
				},
			}}},
		},
	}
}

// Accessory is the decorated text card with an accessory button.
func Accessory() Definition {
	return Definition{
		ID:    "accessory-card-1",
		Title: "Chaddon Accessory Card",
		Widgets: []Widget{
			{DecoratedText: &DecoratedText{
				Text: "This message has an accessory button.",
				Button: &Button{
					Text:   "Ping",
					Action: Action{Function: ActionAccessoryClick},
				},
			}},
		},
	}
}
