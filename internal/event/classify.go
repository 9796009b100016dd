package event

import "github.com/tidwall/gjson"

// selectionInputField is the canonical name of the selection form input
// used by the app's selection cards. Multi-select submissions arrive
// keyed by this name under commonEventObject.formInputs.
const selectionInputField = "selectedItems"

// hostAppSpacePath is the host-application metadata side channel that
// add-on style deliveries use to carry the Chat space.
const hostAppSpacePath = "commonEventObject.hostAppMetadata.chatMetadata.space.name"

// shapeRule binds one shape probe to an event kind. Exactly one of
// present or eventType is set: present checks that a path exists,
// eventType compares against the legacy top-level type discriminator.
type shapeRule struct {
	kind      Kind
	present   string
	eventType string
}

// legacyTypeProbe finds the bare discriminator older event generations
// carried at the top level.
var legacyTypeProbe = Probe{"type", "eventType"}

// shapeRules is the classification table, tried in order with the
// first match winning. Current payload shapes sit on top; the legacy
// shapes below them are kept as fallbacks because older deliveries
// still occur, and events have been observed carrying both generations
// of markers at once.
var shapeRules = []shapeRule{
	{kind: KindCardClick, present: "commonEventObject.invokedFunction"},
	{kind: KindCardClick, present: "chat.buttonClickedPayload"},
	{kind: KindAppCommand, present: "chat.appCommandPayload"},
	{kind: KindMessage, present: "chat.messagePayload"},
	{kind: KindAddedToSpace, present: "chat.addedToSpacePayload"},
	{kind: KindAppCommand, present: "message.slashCommand.commandId"},
	{kind: KindCardClick, eventType: "CARD_CLICKED"},
	{kind: KindMessage, eventType: "MESSAGE"},
	{kind: KindAddedToSpace, eventType: "ADDED_TO_SPACE"},
}

func (r shapeRule) matches(doc gjson.Result) bool {
	if r.present != "" {
		return doc.Get(r.present).Exists()
	}
	return legacyTypeProbe.FirstString(doc) == r.eventType
}

// Field probes per kind. Order is newest location first; the last
// entries cover the oldest observed payload generation.
var (
	spaceProbes = map[Kind]Probe{
		KindMessage: {
			"chat.messagePayload.space.name",
			"space.name",
			hostAppSpacePath,
		},
		KindAppCommand: {
			"chat.appCommandPayload.space.name",
			"space.name",
			hostAppSpacePath,
		},
		KindAddedToSpace: {
			"chat.addedToSpacePayload.space.name",
			"space.name",
			hostAppSpacePath,
		},
		KindCardClick: {
			"chat.space.name",
			"space.name",
			hostAppSpacePath,
			"chat.buttonClickedPayload.space.name",
		},
	}

	threadProbes = map[Kind]Probe{
		KindMessage: {
			"chat.messagePayload.message.thread.name",
			"message.thread.name",
		},
		KindAppCommand: {
			"chat.appCommandPayload.message.thread.name",
			"message.thread.name",
		},
	}

	senderProbe = Probe{
		"chat.messagePayload.message.sender",
		"chat.appCommandPayload.message.sender",
		"chat.buttonClickedPayload.message.sender",
		"message.sender",
		"user",
		"chat.user",
	}

	textProbe = Probe{
		"chat.messagePayload.message.text",
		"message.text",
	}

	commandIDProbe = Probe{
		"chat.appCommandPayload.appCommandMetadata.appCommandId",
		"message.slashCommand.commandId",
	}

	actionIDProbe = Probe{
		"commonEventObject.invokedFunction",
		"action.actionMethodName",
	}

	messageNameProbe = Probe{
		"chat.buttonClickedPayload.message.name",
		"message.name",
	}
)

// Classify inspects a decoded Chat event and produces the normalized
// ChatEvent. It never fails: an event matching no known shape comes
// back with KindUnknown, and an event whose space cannot be resolved
// keeps its kind with an empty SpaceName for the caller to drop.
func Classify(eventJSON []byte) *ChatEvent {
	doc := gjson.ParseBytes(eventJSON)

	ev := &ChatEvent{Kind: KindUnknown, Raw: eventJSON}
	for _, rule := range shapeRules {
		if rule.matches(doc) {
			ev.Kind = rule.kind
			break
		}
	}
	if ev.Kind == KindUnknown {
		return ev
	}

	ev.SpaceName = spaceProbes[ev.Kind].FirstString(doc)
	ev.ThreadName = threadProbes[ev.Kind].FirstString(doc)
	ev.Sender = resolveSender(doc)

	switch ev.Kind {
	case KindMessage:
		ev.Text = textProbe.FirstString(doc)
	case KindAppCommand:
		ev.CommandID = commandIDProbe.First(doc).Int()
	case KindCardClick:
		ev.Parameters = actionParameters(doc)
		ev.ActionID = actionIDProbe.FirstString(doc)
		if ev.ActionID == "" {
			// Oldest click shape delivered the action as a plain
			// parameter instead of a dedicated field.
			ev.ActionID = ev.Parameters["action"]
		}
		ev.MessageName = messageNameProbe.FirstString(doc)
		ev.SelectedValues = formSelections(doc)
	}
	return ev
}

func resolveSender(doc gjson.Result) *Sender {
	node := senderProbe.FirstExisting(doc)
	if !node.Exists() {
		return nil
	}
	return &Sender{
		DisplayName: node.Get("displayName").String(),
		Type:        ParseSenderType(node.Get("type").String()),
	}
}

// actionParameters collects the click parameters. The current shape is
// a plain object under commonEventObject.parameters; the legacy shape
// is an array of {key, value} pairs under action.parameters.
func actionParameters(doc gjson.Result) map[string]string {
	params := make(map[string]string)

	if obj := doc.Get("commonEventObject.parameters"); obj.IsObject() {
		obj.ForEach(func(k, v gjson.Result) bool {
			params[k.String()] = v.String()
			return true
		})
		return params
	}

	if arr := doc.Get("action.parameters"); arr.IsArray() {
		arr.ForEach(func(_, item gjson.Result) bool {
			if key := item.Get("key").String(); key != "" {
				params[key] = item.Get("value").String()
			}
			return true
		})
	}
	return params
}

// formSelections extracts the selection input values. The current form
// input shape wraps values in stringInputs.value; one earlier revision
// delivered a bare string array.
func formSelections(doc gjson.Result) []string {
	var values []string
	collect := func(_, v gjson.Result) bool {
		values = append(values, v.String())
		return true
	}

	if r := doc.Get("commonEventObject.formInputs." + selectionInputField + ".stringInputs.value"); r.IsArray() {
		r.ForEach(collect)
		return values
	}
	if r := doc.Get("commonEventObject.formInputs." + selectionInputField); r.IsArray() {
		r.ForEach(collect)
	}
	return values
}
