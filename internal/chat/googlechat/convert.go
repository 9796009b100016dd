package googlechat

import (
	"sort"

	chatv1 "google.golang.org/api/chat/v1"

	"github.com/chaddon/internal/card"
	"github.com/chaddon/internal/chat"
)

// Conversion between the transport-neutral message/card model and the
// Chat API wire types (cards v2).

func toWireMessage(msg *chat.Message) *chatv1.Message {
	wire := &chatv1.Message{Text: msg.Text}
	if msg.ThreadName != "" {
		wire.Thread = &chatv1.Thread{Name: msg.ThreadName}
	}
	if msg.Card != nil {
		wire.CardsV2 = []*chatv1.CardWithId{toWireCard(msg.Card)}
	}
	return wire
}

func fromWireMessage(wire *chatv1.Message) *chat.Message {
	msg := &chat.Message{Name: wire.Name, Text: wire.Text}
	if wire.Thread != nil {
		msg.ThreadName = wire.Thread.Name
	}
	return msg
}

func toWireCard(def *card.Definition) *chatv1.CardWithId {
	section := &chatv1.GoogleAppsCardV1Section{}
	for _, w := range def.Widgets {
		section.Widgets = append(section.Widgets, toWireWidget(w))
	}
	return &chatv1.CardWithId{
		CardId: def.ID,
		Card: &chatv1.GoogleAppsCardV1Card{
			Header:   &chatv1.GoogleAppsCardV1CardHeader{Title: def.Title},
			Sections: []*chatv1.GoogleAppsCardV1Section{section},
		},
	}
}

func toWireWidget(w card.Widget) *chatv1.GoogleAppsCardV1Widget {
	switch {
	case w.ButtonList != nil:
		list := &chatv1.GoogleAppsCardV1ButtonList{}
		for _, b := range w.ButtonList.Buttons {
			list.Buttons = append(list.Buttons, toWireButton(b))
		}
		return &chatv1.GoogleAppsCardV1Widget{ButtonList: list}

	case w.SelectionInput != nil:
		return &chatv1.GoogleAppsCardV1Widget{SelectionInput: toWireSelection(w.SelectionInput)}

	case w.DecoratedText != nil:
		text := &chatv1.GoogleAppsCardV1DecoratedText{Text: w.DecoratedText.Text}
		if w.DecoratedText.Button != nil {
			text.Button = toWireButton(*w.DecoratedText.Button)
		}
		return &chatv1.GoogleAppsCardV1Widget{DecoratedText: text}
	}
	return &chatv1.GoogleAppsCardV1Widget{}
}

func toWireButton(b card.Button) *chatv1.GoogleAppsCardV1Button {
	return &chatv1.GoogleAppsCardV1Button{
		Text: b.Text,
		OnClick: &chatv1.GoogleAppsCardV1OnClick{
			Action: toWireAction(b.Action),
		},
	}
}

func toWireAction(a card.Action) *chatv1.GoogleAppsCardV1Action {
	action := &chatv1.GoogleAppsCardV1Action{Function: a.Function}

	// Parameters are a map in the model; sort the keys so the wire
	// form is deterministic.
	keys := make([]string, 0, len(a.Parameters))
	for k := range a.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		action.Parameters = append(action.Parameters, &chatv1.GoogleAppsCardV1ActionParameter{
			Key:   k,
			Value: a.Parameters[k],
		})
	}
	return action
}

func toWireSelection(in *card.SelectionInput) *chatv1.GoogleAppsCardV1SelectionInput {
	sel := &chatv1.GoogleAppsCardV1SelectionInput{
		Name:  in.Name,
		Label: in.Label,
		Type:  "CHECK_BOX",
	}
	if in.MultiSelect {
		sel.Type = "MULTI_SELECT"
		if in.MaxSelected > 0 {
			sel.MultiSelectMaxSelectedItems = int64(in.MaxSelected)
		}
	}
	if in.FromPlatform == card.PlatformUsers {
		sel.PlatformDataSource = &chatv1.GoogleAppsCardV1PlatformDataSource{
			CommonDataSource: "USER",
		}
	}
	for _, item := range in.Items {
		sel.Items = append(sel.Items, &chatv1.GoogleAppsCardV1SelectionItem{
			Text:  item.Text,
			Value: item.Value,
		})
	}
	return sel
}
