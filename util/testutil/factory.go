package testutil

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
)

const (
	FilmProfileURI  = "https://data.hetarchief.be/id/sip/2.1/film"
	BasicProfileURI = "https://data.hetarchief.be/id/sip/2.1/basic"
	MaintainerID    = "OR-jw86m54"
	MaintainerLabel = "archival creator"
)

func NLStr(value string) []sip.LangString {
	return []sip.LangString{{Lang: "nl", Value: value}}
}

// FilmSIP returns a fully populated film SIP: one carrier representation
// holding an image reel and an audio reel, one digital representation whose
// file is written under sourceDir with a real MD5, and a digitization plus
// quality-control event.
func FilmSIP(sourceDir string) *sip.SIP {
	return &sip.SIP{
		Profile: FilmProfileURI,
		Entity: &sip.IntellectualEntity{
			ID:   "uuid-f9ef158c-f03c-4840-836e-8ffb8e8ebe04",
			Type: constants.EntityClassSoundFilm,
			PrimaryIdentifier: []sip.LocalIdentifier{
				{Value: "2891#422"},
			},
			LocalIdentifier: []sip.LocalIdentifier{
				{Type: "https://data.hetarchief.be/id/identifier-type/Bestandsnaam", Value: "katten.mkv"},
			},
			Maintainer: &sip.ContentPartner{
				Identifier: MaintainerID,
				PrefLabel:  NLStr(MaintainerLabel),
			},
			Name:        NLStr("Katten in de tuin"),
			Description: NLStr("Katten ravotten in de tuin"),
			DateCreated: "1964-08",
			CopyrightHolder: []sip.Thing{
				{Name: NLStr("© dummyorganisatie")},
			},
			Creator: []sip.Role{
				{RoleName: "archiefvormer", Agent: &sip.Thing{Name: NLStr("Dummy privéarchief")}},
			},
			Keywords:   NLStr("amateur recording"),
			InLanguage: []string{"nl"},
			IsPartOf: []sip.RelatedWork{
				{Kind: constants.WorkSeries, Name: NLStr("Huisdierenreeks")},
			},
			Representations: []sip.Representation{
				CarrierRepresentation(),
				DigitalRepresentation(sourceDir, "master_dummy.mkv", "mkv master content"),
			},
		},
		Events: []*sip.Event{
			DigitizationEvent(),
			QualityControlEvent(),
		},
	}
}

func CarrierRepresentation() sip.Representation {
	return sip.Representation{
		Kind: constants.RepresentationCarrier,
		Carrier: &sip.CarrierRepresentation{
			ID: "uuid-eb2175c9-56f9-4e7e-9192-0a11a297c1e2",
			StoredAt: []*sip.PhysicalCarrier{
				ImageReel(),
				AudioReel(),
			},
		},
	}
}

func ImageReel() *sip.PhysicalCarrier {
	return &sip.PhysicalCarrier{
		Kind:       constants.CarrierImageReel,
		Identifier: "AFLM_FEL_001392",
		Medium:     "https://data.hetarchief.be/id/carrier-type/super8mmfilm",
		Material:   "acetate",
		StockType:  "reversal",
		Brand:      "Kodak",
		ColoringType: []string{
			"https://data.hetarchief.be/id/color-type/BandW",
		},
		Captioning: []sip.Captioning{
			{Kind: "open", InLanguage: []string{"nl"}},
		},
		AspectRatio: "4:3",
	}
}

func AudioReel() *sip.PhysicalCarrier {
	return &sip.PhysicalCarrier{
		Kind:       constants.CarrierAudioReel,
		Identifier: "AFLM_FEL_001393",
	}
}

// DigitalRepresentation writes content under sourceDir and returns a
// representation whose single file points at it with a real MD5.
func DigitalRepresentation(sourceDir, name, content string) sip.Representation {
	path := WriteSourceFile(sourceDir, name, content)
	digest := md5.Sum([]byte(content))
	return sip.Representation{
		Kind: constants.RepresentationDigital,
		Digital: &sip.DigitalRepresentation{
			ID: "uuid-5defe23d-23b9-4819-a189-bc4793e7e60b",
			Includes: []*sip.File{
				{
					ID:   "uuid-7df1ed59-40dd-4323-83c9-e730615eea34",
					Size: int64(len(content)),
					Fixity: &sip.Fixity{
						Type:  "http://id.loc.gov/vocabulary/preservation/cryptographicHashFunctions/md5",
						Value: hex.EncodeToString(digest[:]),
					},
					StoredAt:     &sip.StorageLocation{FilePath: path},
					OriginalName: name,
					Format:       "https://www.nationalarchives.gov.uk/pronom/fmt/569",
				},
			},
		},
	}
}

// WriteSourceFile creates a file under dir and returns its full path.
// Panics on failure; this is test setup, not production code.
func WriteSourceFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		panic(err)
	}
	return path
}

func DigitizationEvent() *sip.Event {
	return &sip.Event{
		ID:        "https://data.hetarchief.be/id/event/digitization-1",
		Type:      constants.EventTypeDigitization,
		StartedAt: "2022-01-24T14:30:12+01:00",
		Outcome:   constants.EventOutcomeSuccess,
		Note:      "scanned at 4K",
		ImplementedBy: &sip.Agent{
			Type: "ORG",
			Name: NLStr("Digitale Dienst"),
		},
		ExecutedBy: &sip.Agent{
			Type: "SOFTWARE",
			Name: NLStr("ScanStation"),
		},
		Result: []sip.Reference{
			{ID: "uuid-7df1ed59-40dd-4323-83c9-e730615eea34"},
		},
	}
}

func QualityControlEvent() *sip.Event {
	return &sip.Event{
		ID:        "https://data.hetarchief.be/id/event/qc-1",
		Type:      constants.EventTypeQualityControl,
		StartedAt: "2022-01-25T09:00:00+01:00",
		Outcome:   constants.EventOutcomeWarning,
		Note:      "minor flicker in reel 2",
		ImplementedBy: &sip.Agent{
			Type: "ORG",
			Name: NLStr("Kwaliteitsdienst"),
		},
	}
}

// BasicSIP returns a minimal basic-profile SIP with a single digital
// representation rooted under sourceDir.
func BasicSIP(sourceDir string) *sip.SIP {
	return &sip.SIP{
		Profile: BasicProfileURI,
		Entity: &sip.IntellectualEntity{
			ID:   "uuid-0f1f1d2e-3a59-44dd-b402-2f5e5a6a9a01",
			Type: "dossier",
			Maintainer: &sip.ContentPartner{
				Identifier: MaintainerID,
				PrefLabel:  NLStr(MaintainerLabel),
			},
			Name:        NLStr("Verslag gemeenteraad"),
			DateCreated: "2001-05-14",
			Representations: []sip.Representation{
				DigitalRepresentation(sourceDir, "dummy.pdf", "pdf scan content"),
			},
		},
	}
}
