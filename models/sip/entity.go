package sip

// LangString is a single language-tagged value. Collections of LangStrings
// are ordered and a language tag is not guaranteed unique within one.
type LangString struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// LocalIdentifier is a typed local or primary identifier. Type is a URI
// whose last path segment names the identifier scheme.
type LocalIdentifier struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// ContentPartner identifies the organization maintaining the entity.
type ContentPartner struct {
	Identifier string       `json:"identifier"`
	PrefLabel  []LangString `json:"pref_label"`
}

// Thing is a named agent without further structure: a person, organization
// or rights holder referenced only by name.
type Thing struct {
	Name []LangString `json:"name"`
}

// Role attaches a role name to an optionally referenced agent. Entries
// without an agent are carried in the SIP but contribute nothing to the
// sidecar.
type Role struct {
	RoleName string `json:"role_name"`
	Agent    *Thing `json:"agent,omitempty"`
}

// Place is a spatial coverage entry.
type Place struct {
	Name []LangString `json:"name"`
}

// Concept is a controlled-vocabulary reference with a localized label.
type Concept struct {
	ID        string       `json:"id"`
	PrefLabel []LangString `json:"pref_label,omitempty"`
}

// License is either a controlled-vocabulary concept or a free URI reference.
// Exactly one of the two fields is populated.
type License struct {
	Concept *Concept `json:"concept,omitempty"`
	URI     string   `json:"uri,omitempty"`
}

// RelatedWork is a containing work referenced from the entity's is-part-of
// list. Kind is one of the constants.Work* variants; archive components may
// nest sub-components under HasPart.
type RelatedWork struct {
	Kind    string        `json:"kind"`
	Name    []LangString  `json:"name,omitempty"`
	HasPart []RelatedWork `json:"has_part,omitempty"`
}

// QuantitativeValue is a physical dimension: a numeric value with a UN/ECE
// unit code (MMT, CMT, MTR or KGM).
type QuantitativeValue struct {
	Value    float64 `json:"value"`
	UnitCode string  `json:"unit_code"`
}

// IntellectualEntity is the top-level described archival work.
type IntellectualEntity struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	PrimaryIdentifier []LocalIdentifier  `json:"primary_identifier"`
	LocalIdentifier   []LocalIdentifier  `json:"local_identifier"`
	Maintainer        *ContentPartner    `json:"maintainer"`
	Name              []LangString       `json:"name"`
	Description       []LangString       `json:"description,omitempty"`
	DateCreated       string             `json:"date_created"`
	DatePublished     string             `json:"date_published,omitempty"`
	CopyrightHolder   []Thing            `json:"copyright_holder"`
	Creator           []Role             `json:"creator"`
	Contributor       []Role             `json:"contributor"`
	Publisher         []Role             `json:"publisher"`
	Keywords          []LangString       `json:"keywords,omitempty"`
	Genre             []LangString       `json:"genre,omitempty"`
	Spatial           []Place            `json:"spatial"`
	Temporal          []LangString       `json:"temporal,omitempty"`
	InLanguage        []string           `json:"in_language"`
	IsPartOf          []RelatedWork      `json:"is_part_of"`
	License           []License          `json:"license"`
	CreditText        []LangString       `json:"credit_text,omitempty"`
	Rights            []LangString       `json:"rights,omitempty"`
	ArtMedium         []LangString       `json:"art_medium,omitempty"`
	ArtForm           []LangString       `json:"artform,omitempty"`
	Width             *QuantitativeValue `json:"width,omitempty"`
	Height            *QuantitativeValue `json:"height,omitempty"`
	Depth             *QuantitativeValue `json:"depth,omitempty"`
	Weight            *QuantitativeValue `json:"weight,omitempty"`
	Format            string             `json:"format,omitempty"`
	Representations   []Representation   `json:"is_represented_by"`
}
