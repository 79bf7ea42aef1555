package aip

import (
	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util"
)

// CommonMapping builds the sidecar fragment shared by every profile:
// descriptive fields, rights, identifiers, relations, dimensions and the
// battery of event-derived fields. Profile modules merge their own fragment
// on top of this one; the merge rejects leaf collisions, so anything a
// profile wants to set (like ContentCategory) must not appear here.
func CommonMapping(s *sip.SIP) (Mapping, error) {
	ie := s.Entity

	title, err := NLString(ie.Name)
	if err != nil {
		return nil, err
	}
	description, err := OptionalNLString(ie.Description)
	if err != nil {
		return nil, err
	}
	titles, err := dcTitles(ie)
	if err != nil {
		return nil, err
	}
	rightsOwners, err := rightsOwners(ie)
	if err != nil {
		return nil, err
	}
	creators, err := roleEntries(ie.Creator)
	if err != nil {
		return nil, err
	}
	contributors, err := roleEntries(ie.Contributor)
	if err != nil {
		return nil, err
	}
	publishers, err := roleEntries(ie.Publisher)
	if err != nil {
		return nil, err
	}
	coverages, err := coverages(ie)
	if err != nil {
		return nil, err
	}
	artMedium, err := OptionalNLString(ie.ArtMedium)
	if err != nil {
		return nil, err
	}
	artForm, err := OptionalNLString(ie.ArtForm)
	if err != nil {
		return nil, err
	}
	credit, err := OptionalNLString(ie.CreditText)
	if err != nil {
		return nil, err
	}
	rights, err := OptionalNLString(ie.Rights)
	if err != nil {
		return nil, err
	}
	licenses, err := Licenses(s)
	if err != nil {
		return nil, err
	}

	events := NewEventIndex(s)
	eventFields, err := eventBattery(events)
	if err != nil {
		return nil, err
	}

	dynamic := Mapping{
		"dc_title":                title,
		"dc_description":          description,
		"dc_description_lang":     description,
		"dcterms_created":         ie.DateCreated,
		"dcterms_issued":          optionalString(ie.DatePublished),
		"dc_rights_rightsOwners":  rightsOwners,
		"dc_subjects":             dcSubjects(ie),
		"dc_identifier_localid":   dcIdentifierLocalID(ie),
		"dc_identifier_localids":  dcIdentifierLocalIDs(ie),
		"dc_languages":            languagePairs(ie),
		"dc_titles":               titles,
		"dc_creators":             creators,
		"dc_contributors":         contributors,
		"dc_publishers":           publishers,
		"dc_types":                dcTypes(ie),
		"dc_coverages":            coverages,
		"artmedium":               artMedium,
		"artform":                 artForm,
		"dc_rights_credit":        credit,
		"dc_rights_comment":       rights,
		"dc_rights_licenses":      licenses,
		"dimensions": []Pair{
			{Label: "width_in_mm", Value: QuantityToMillimetres(ie.Width)},
			{Label: "height_in_mm", Value: QuantityToMillimetres(ie.Height)},
			{Label: "depth_in_mm", Value: QuantityToMillimetres(ie.Depth)},
			{Label: "weight_in_kg", Value: QuantityToMillimetres(ie.Weight)},
		},
	}
	for key, value := range eventFields {
		dynamic[key] = value
	}

	return Mapping{
		"Descriptive": Mapping{
			"mh:Title":       title,
			"mh:Description": description,
		},
		"Dynamic": dynamic,
	}, nil
}

// eventBattery derives the fixed set of per-event-type sidecar fields from
// the preservation events.
func eventBattery(events EventIndex) (Mapping, error) {
	fields := Mapping{}
	type eventSpec struct {
		prefix      string
		eventType   string
		withTime    bool
		implementer bool
	}
	specs := []eventSpec{
		{prefix: "inspection", eventType: constants.EventTypeInspection},
		{prefix: "repair", eventType: constants.EventTypeRepair},
		{prefix: "cleaning", eventType: constants.EventTypeCleaning},
		{prefix: "baking", eventType: constants.EventTypeBaking},
		{prefix: "digitization", eventType: constants.EventTypeDigitization, withTime: true},
		{prefix: "qc", eventType: constants.EventTypeQualityControl, implementer: true},
	}
	for _, spec := range specs {
		date, err := events.Date(spec.eventType)
		if err != nil {
			return nil, err
		}
		fields[spec.prefix+"_date"] = date
		fields[spec.prefix+"_outcome"] = events.OutcomeFlag(spec.eventType)
		fields[spec.prefix+"_note"] = events.Note(spec.eventType)
		if spec.withTime {
			t, err := events.Time(spec.eventType)
			if err != nil {
				return nil, err
			}
			fields[spec.prefix+"_time"] = t
		}
		if spec.implementer {
			by, err := events.Implementer(spec.eventType)
			if err != nil {
				return nil, err
			}
			fields[spec.prefix+"_by"] = by
		}
	}
	return fields, nil
}

// dcTitles walks the entity's containing works. Each variant maps to a
// fixed label; archive components additionally contribute one deelarchief
// entry per nested sub-component. Newspapers and generic creative works
// have no dc_titles mapping. Anything else is an unhandled variant and
// fails the message rather than dropping metadata silently.
func dcTitles(ie *sip.IntellectualEntity) ([]Pair, error) {
	titles := make([]Pair, 0)
	appendTitle := func(label string, name []sip.LangString) error {
		value, err := NLString(name)
		if err != nil {
			return err
		}
		titles = append(titles, Pair{Label: label, Value: value})
		return nil
	}
	for _, item := range ie.IsPartOf {
		switch item.Kind {
		case constants.WorkBroadcastEvent:
			if err := appendTitle("programma", item.Name); err != nil {
				return nil, err
			}
		case constants.WorkSeason:
			if err := appendTitle("seizoen", item.Name); err != nil {
				return nil, err
			}
		case constants.WorkSeries:
			if err := appendTitle("serie", item.Name); err != nil {
				return nil, err
			}
		case constants.WorkArchiveComponent:
			if err := appendTitle("archief", item.Name); err != nil {
				return nil, err
			}
			for _, sub := range item.HasPart {
				if sub.Kind == constants.WorkArchiveComponent {
					if err := appendTitle("deelarchief", sub.Name); err != nil {
						return nil, err
					}
				}
			}
		case constants.WorkEpisode:
			if err := appendTitle("aflevering", item.Name); err != nil {
				return nil, err
			}
		case constants.WorkNewspaper, constants.WorkCreativeWork:
			// No dc_titles mapping for these.
		default:
			return nil, &UnhandledVariantError{Axis: "containing work", Variant: item.Kind}
		}
	}
	return titles, nil
}

func rightsOwners(ie *sip.IntellectualEntity) ([]Pair, error) {
	owners := make([]Pair, 0)
	for _, owner := range ie.CopyrightHolder {
		name, err := NLString(owner.Name)
		if err != nil {
			return nil, err
		}
		owners = append(owners, Pair{Label: "Auteursrechthouder", Value: name})
	}
	return owners, nil
}

// roleEntries maps creator/contributor/publisher roles to (role name, agent
// name) pairs. Roles without a referenced agent are skipped. An empty
// result maps to nil so the field is absent from the sidecar.
func roleEntries(roles []sip.Role) (interface{}, error) {
	entries := make([]Pair, 0)
	for _, role := range roles {
		if role.Agent == nil {
			continue
		}
		name, err := NLString(role.Agent.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Pair{Label: role.RoleName, Value: name})
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}

func coverages(ie *sip.IntellectualEntity) (interface{}, error) {
	entries := make([]Pair, 0)
	for _, place := range ie.Spatial {
		name, err := NLString(place.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Pair{Label: "ruimte", Value: name})
	}
	for _, period := range NLStrings(ie.Temporal) {
		entries = append(entries, Pair{Label: "tijd", Value: period})
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}

func dcSubjects(ie *sip.IntellectualEntity) interface{} {
	if ie.Keywords == nil {
		return nil
	}
	subjects := make([]Pair, 0)
	for _, keyword := range NLStrings(ie.Keywords) {
		subjects = append(subjects, Pair{Label: "Trefwoord", Value: keyword})
	}
	return subjects
}

func dcTypes(ie *sip.IntellectualEntity) interface{} {
	if ie.Genre == nil {
		return nil
	}
	types := make([]Pair, 0)
	for _, genre := range NLStrings(ie.Genre) {
		types = append(types, Pair{Label: constants.LabelMultiselect, Value: genre})
	}
	return types
}

func dcIdentifierLocalID(ie *sip.IntellectualEntity) interface{} {
	for _, primary := range ie.PrimaryIdentifier {
		return primary.Value
	}
	return nil
}

func dcIdentifierLocalIDs(ie *sip.IntellectualEntity) []Pair {
	ids := make([]Pair, 0)
	for _, localID := range ie.LocalIdentifier {
		ids = append(ids, Pair{Label: localIDType(localID), Value: localID.Value})
	}
	return ids
}

// localIDType returns the identifier scheme encoded in the last path
// segment of the local identifier's type URI.
func localIDType(localID sip.LocalIdentifier) string {
	if localID.Type == "" {
		return "local_id"
	}
	return util.LastPathSegment(localID.Type)
}

func languagePairs(ie *sip.IntellectualEntity) []Pair {
	languages := make([]Pair, 0)
	for _, lang := range ie.InLanguage {
		languages = append(languages, Pair{Label: constants.LabelMultiselect, Value: lang})
	}
	return languages
}

func optionalString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
