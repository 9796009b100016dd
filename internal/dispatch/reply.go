package dispatch

import (
	"strings"

	"github.com/chaddon/internal/card"
	"github.com/chaddon/internal/event"
)

// Reply is one outbound Chat call. UpdateTarget switches the call from
// message creation to an update of the named message.
type Reply struct {
	Parent       string
	Text         string
	ThreadName   string
	Card         *card.Definition
	UpdateTarget string
	UpdateMask   []string
}

// Slash command IDs as registered in the app manifest.
const (
	cmdPubSubTest    int64 = 1
	cmdCardTest      int64 = 2
	cmdUpdateCard    int64 = 3
	cmdSelection     int64 = 4
	cmdUserSelection int64 = 5
	cmdAccessory     int64 = 6
)

const emptyMessagePlaceholder = "(empty message)"

var commands = map[int64]func(*event.ChatEvent) Reply{
	cmdPubSubTest: func(ev *event.ChatEvent) Reply {
		return textReply(ev, "Chaddon slash command /pubsubtest invoked!")
	},
	cmdCardTest: func(ev *event.ChatEvent) Reply {
		return cardReply(ev, card.Interactive())
	},
	cmdUpdateCard: func(ev *event.ChatEvent) Reply {
		return cardReply(ev, card.UpdateMessage())
	},
	cmdSelection: func(ev *event.ChatEvent) Reply {
		return cardReply(ev, card.TextSelection())
	},
	cmdUserSelection: func(ev *event.ChatEvent) Reply {
		return cardReply(ev, card.UserSelection())
	},
	cmdAccessory: func(ev *event.ChatEvent) Reply {
		return cardReply(ev, card.Accessory())
	},
}

func messageReply(ev *event.ChatEvent) Reply {
	name := ""
	if ev.Sender != nil {
		name = ev.Sender.DisplayName
	}
	text := ev.Text
	if text == "" {
		text = emptyMessagePlaceholder
	}
	return textReply(ev, "Hello "+name+", you said: "+text)
}

func commandReply(ev *event.ChatEvent) Reply {
	if build, ok := commands[ev.CommandID]; ok {
		return build(ev)
	}
	return textReply(ev, "Unknown slash command.")
}

func cardClickReply(ev *event.ChatEvent) Reply {
	switch ev.ActionID {
	case card.ActionCardClick:
		return textReply(ev, "Button clicked! (Action: "+card.ActionCardClick+")")
	case card.ActionUpdateMessage:
		if ev.MessageName == "" {
			return textReply(ev, "Unable to update the original message.")
		}
		return Reply{
			Parent:       ev.SpaceName,
			Text:         "Message updated by button click.",
			UpdateTarget: ev.MessageName,
			UpdateMask:   []string{"text"},
		}
	case card.ActionSelectionSubmit:
		if len(ev.SelectedValues) == 0 {
			return textReply(ev, "You selected: None")
		}
		return textReply(ev, "You selected: "+strings.Join(ev.SelectedValues, ", "))
	case card.ActionAccessoryClick:
		return textReply(ev, "Accessory clicked! (Action: "+card.ActionAccessoryClick+")")
	}
	return textReply(ev, "Unknown card action: "+ev.ActionID)
}

func welcomeReply(ev *event.ChatEvent) Reply {
	// No thread exists yet when the app is first added to a space.
	return Reply{Parent: ev.SpaceName, Text: "Thanks for adding me to this Chaddon!"}
}

func textReply(ev *event.ChatEvent, text string) Reply {
	return Reply{Parent: ev.SpaceName, Text: text, ThreadName: ev.ThreadName}
}

func cardReply(ev *event.ChatEvent, def card.Definition) Reply {
	return Reply{Parent: ev.SpaceName, ThreadName: ev.ThreadName, Card: &def}
}
