package aip

import (
	"fmt"
	"time"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util"
)

// EventIndex looks preservation events up by type URI. When a SIP carries
// multiple events of the same type, the first in source order wins and the
// extras are ignored.
type EventIndex map[string]*sip.Event

func NewEventIndex(s *sip.SIP) EventIndex {
	index := make(EventIndex)
	for _, event := range s.Events {
		if _, seen := index[event.Type]; !seen {
			index[event.Type] = event
		}
	}
	return index
}

// timestamp layouts accepted for event start times. Upstream emits ISO
// datetimes with or without a zone offset.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseEventTime(value string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse event timestamp %q", value)
}

// Date returns the ISO date of the typed event's start, or nil when the SIP
// has no such event.
func (index EventIndex) Date(eventType string) (interface{}, error) {
	event := index[eventType]
	if event == nil {
		return nil, nil
	}
	t, err := parseEventTime(event.StartedAt)
	if err != nil {
		return nil, err
	}
	return t.Format("2006-01-02"), nil
}

// Time returns the ISO time of day of the typed event's start, or nil.
func (index EventIndex) Time(eventType string) (interface{}, error) {
	event := index[eventType]
	if event == nil {
		return nil, nil
	}
	t, err := parseEventTime(event.StartedAt)
	if err != nil {
		return nil, err
	}
	return t.Format("15:04:05"), nil
}

// OutcomeFlag reduces the event outcome to the coarse "y"/"n" the sidecar
// wants: success and warning count as "y", fail and absent as "n". This is
// deliberately coarser than the METS outcome mapping in NormalizeEvent;
// the two feed different output fields and must stay separate.
func (index EventIndex) OutcomeFlag(eventType string) interface{} {
	event := index[eventType]
	if event == nil {
		return nil
	}
	switch event.Outcome {
	case "":
		return "n"
	case constants.EventOutcomeFail:
		return "n"
	case constants.EventOutcomeSuccess, constants.EventOutcomeWarning:
		return "y"
	}
	return nil
}

// Note returns the typed event's free-text note, or nil.
func (index EventIndex) Note(eventType string) interface{} {
	event := index[eventType]
	if event == nil || event.Note == "" {
		return nil
	}
	return event.Note
}

// Implementer returns the localized name of the typed event's implementing
// agent, or nil when the SIP has no such event.
func (index EventIndex) Implementer(eventType string) (interface{}, error) {
	event := index[eventType]
	if event == nil || event.ImplementedBy == nil {
		return nil, nil
	}
	name, err := NLString(event.ImplementedBy.Name)
	if err != nil {
		return nil, err
	}
	return name, nil
}

// PremisAgentRecord is one agent line in a METS premis event.
type PremisAgentRecord struct {
	Type string
	Name string
	Role string
}

// PremisObjectRecord is one linking object in a METS premis event.
type PremisObjectRecord struct {
	Type  string
	Value string
	Role  string
}

// PremisEventRecord is a preservation event normalized for the METS
// document.
type PremisEventRecord struct {
	ID       string
	Type     string
	DateTime string
	Detail   string
	Outcome  string
	Agents   []PremisAgentRecord
	Objects  []PremisObjectRecord
}

// PlaceholderLinkingObject is substituted when an event references no
// source or result objects. The target system requires at least one linking
// object per event; the empty UUID makes the synthetic entry recognizable.
var PlaceholderLinkingObject = PremisObjectRecord{
	Type:  "UUID",
	Value: constants.EmptyUUID,
	Role:  "source",
}

// NormalizeEvent maps a preservation event to its METS record: generated
// identifier, bare type, ISO datetime, fine-grained outcome, ordered agent
// list and linking objects.
func NormalizeEvent(event *sip.Event) (*PremisEventRecord, error) {
	t, err := parseEventTime(event.StartedAt)
	if err != nil {
		return nil, err
	}

	record := &PremisEventRecord{
		ID:       constants.PremisIDPrefix + util.LastPathSegment(event.ID),
		Type:     util.LastPathSegment(event.Type),
		DateTime: t.Format("2006-01-02T15:04:05"),
		Detail:   event.Note,
		Outcome:  documentOutcome(event.Outcome),
	}

	// Agent order is fixed: implementer, executing program, instruments,
	// associated persons.
	if event.ImplementedBy == nil {
		return nil, fmt.Errorf("event %s has no implementing agent", event.ID)
	}
	implementerName, err := NLString(event.ImplementedBy.Name)
	if err != nil {
		return nil, err
	}
	record.Agents = append(record.Agents, PremisAgentRecord{
		Type: event.ImplementedBy.Type,
		Name: implementerName,
		Role: "implementer",
	})
	if event.ExecutedBy != nil {
		name, err := NLString(event.ExecutedBy.Name)
		if err != nil {
			return nil, err
		}
		record.Agents = append(record.Agents, PremisAgentRecord{
			Type: event.ExecutedBy.Type,
			Name: name,
			Role: "executing program",
		})
	}
	for _, instrument := range event.Instruments {
		name, err := NLString(instrument.Name)
		if err != nil {
			return nil, err
		}
		record.Agents = append(record.Agents, PremisAgentRecord{
			Type: instrument.Type,
			Name: name,
			Role: "instrument",
		})
	}
	for _, person := range event.AssociatedWith {
		name, err := NLString(person.Name)
		if err != nil {
			return nil, err
		}
		record.Agents = append(record.Agents, PremisAgentRecord{
			Type: person.Type,
			Name: name,
			Role: "associated",
		})
	}

	for _, result := range event.Result {
		record.Objects = append(record.Objects, PremisObjectRecord{
			Type:  "UUID",
			Value: result.ID,
			Role:  "outcome",
		})
	}
	for _, source := range event.Source {
		record.Objects = append(record.Objects, PremisObjectRecord{
			Type:  "UUID",
			Value: source.ID,
			Role:  "source",
		})
	}
	if len(record.Objects) == 0 {
		record.Objects = append(record.Objects, PlaceholderLinkingObject)
	}

	return record, nil
}

// NormalizeEvents normalizes all of the SIP's events in source order.
func NormalizeEvents(s *sip.SIP) ([]*PremisEventRecord, error) {
	records := make([]*PremisEventRecord, 0, len(s.Events))
	for _, event := range s.Events {
		record, err := NormalizeEvent(event)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// documentOutcome maps the outcome URI to the fine-grained METS value.
// Absent and unrecognized outcomes map to the empty string, which the
// template renders as no outcome at all.
func documentOutcome(outcomeURI string) string {
	switch outcomeURI {
	case constants.EventOutcomeSuccess:
		return constants.OutcomeSuccess
	case constants.EventOutcomeWarning:
		return constants.OutcomeWarning
	case constants.EventOutcomeFail:
		return constants.OutcomeFail
	}
	return ""
}
