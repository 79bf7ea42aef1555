package constants

const (
	AlgMd5                 = "md5"
	AlgSha256              = "sha256"
	AlgSha512              = "sha512"
	ArchiveLocationDisk    = "Disk"
	ArchiveLocationTape    = "Tape"
	ContentCategoryImage   = "image"
	ContentCategoryVideo   = "video"
	EmptyUUID              = "00000000-0000-0000-0000-000000000000"
	LabelMultiselect       = "multiselect"
	MetsFileName           = "mets.xml"
	OperationAIPCreation   = "aip-creation"
	OutcomeFail            = "fail"
	OutcomeSuccess         = "success"
	OutcomeWarning         = "warning"
	PackageType            = "complex"
	PremisIDPrefix         = "PREMIS-ID-"
	ProfileBasic           = "basic"
	ProfileFilm            = "film"
	ProfileMaterialArtwork = "material-artwork"
	ResolutionLanguage     = "nl"
	ServiceProviderName    = "sipin"
	VersionTwoDotOne       = "2.1"
)

// Entity classes as declared on the intellectual entity.
const (
	EntityClassFilm       = "film"
	EntityClassSilentFilm = "silent_film"
	EntityClassSoundFilm  = "sound_film"
)

// Representation and carrier variants. These are closed sets: decoding
// rejects anything else.
const (
	RepresentationCarrier = "carrier"
	RepresentationDigital = "digital"

	CarrierAudioReel = "audio_reel"
	CarrierGeneric   = "carrier"
	CarrierImageReel = "image_reel"
)

// Containing-work variants used in the dc_titles walk.
const (
	WorkArchiveComponent = "archive_component"
	WorkBroadcastEvent   = "broadcast_event"
	WorkCreativeWork     = "creative_work"
	WorkEpisode          = "episode"
	WorkNewspaper        = "newspaper"
	WorkSeason           = "season"
	WorkSeries           = "series"
)

// Preservation event types from the hetarchief event vocabulary.
const (
	EventTypeBaking         = "https://data.hetarchief.be/id/event-type/baking"
	EventTypeCheckOut       = "https://data.hetarchief.be/id/event-type/check-out"
	EventTypeCleaning       = "https://data.hetarchief.be/id/event-type/cleaning"
	EventTypeCompression    = "https://data.hetarchief.be/id/event-type/compression"
	EventTypeDigitization   = "https://data.hetarchief.be/id/event-type/digitization"
	EventTypeEditing        = "https://data.hetarchief.be/id/event-type/editing"
	EventTypeInspection     = "https://data.hetarchief.be/id/event-type/inspection"
	EventTypeQualityControl = "https://data.hetarchief.be/id/event-type/quality-control"
	EventTypeRegistration   = "https://data.hetarchief.be/id/event-type/registration"
	EventTypeRepair         = "https://data.hetarchief.be/id/event-type/repair"
	EventTypeTransfer       = "https://data.hetarchief.be/id/event-type/transfer"
)

// Event outcome URIs from the Library of Congress preservation vocabulary.
const (
	EventOutcomeFail    = "http://id.loc.gov/vocabulary/preservation/eventOutcome/fai"
	EventOutcomeSuccess = "http://id.loc.gov/vocabulary/preservation/eventOutcome/suc"
	EventOutcomeWarning = "http://id.loc.gov/vocabulary/preservation/eventOutcome/war"
)

// Coloring-type tags (lowercased last path segment of the color-type URI).
const (
	ColoringBandW   = "bandw"
	ColoringColor   = "color"
	ColoringUnknown = "unknowncolortype"
)

// DefaultLicenses is the institutional license set applied when the entity
// declares no licenses of its own. Order is significant.
var DefaultLicenses = []string{
	"VIAA-ONDERWIJS",
	"VIAA-ONDERZOEK",
	"VIAA-INTRA_CP-CONTENT",
	"VIAA-INTRA_CP-METADATA-ALL",
	"VIAA-PUBLIEK-METADATA-LTD",
	"BEZOEKERTOOL-CONTENT",
	"BEZOEKERTOOL-METADATA-ALL",
}

var DigestAlgorithms = []string{
	AlgMd5,
	AlgSha256,
	AlgSha512,
}
