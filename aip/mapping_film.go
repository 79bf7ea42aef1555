package aip

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util"
)

// FilmMapping builds the sidecar for the film profile: the common fields
// plus the carrier-derived film fields. A film SIP must carry exactly one
// carrier representation with at least one physical carrier; the check runs
// before any file I/O so a malformed SIP fails without touching disk.
func FilmMapping(s *sip.SIP) (Mapping, error) {
	carriers := s.CarrierRepresentations()
	if len(carriers) != 1 {
		return nil, fmt.Errorf("film profile requires exactly one carrier representation, got %d", len(carriers))
	}
	carrierRep := carriers[0]
	if len(carrierRep.StoredAt) == 0 {
		return nil, fmt.Errorf("film profile requires at least one physical carrier")
	}

	common, err := CommonMapping(s)
	if err != nil {
		return nil, err
	}

	imageSound, err := imageSoundClassification(s.Entity.Type, carrierRep)
	if err != nil {
		return nil, err
	}

	imageReels := carrierRep.ImageReels()
	audioReels := carrierRep.AudioReels()

	filmFragment := Mapping{
		"Dynamic": Mapping{
			"ContentCategory":       contentCategory(s),
			"number_of_reels":       strconv.Itoa(len(carrierRep.StoredAt)),
			"number_of_image_reels": strconv.Itoa(len(imageReels)),
			"number_of_audio_reels": strconv.Itoa(len(audioReels)),
			"image_sound":           imageSound,
			"color_or_bw":           colorOrBW(coloringTags(imageReels)),
			"film_base":             firstCarrierValue(carrierRep.StoredAt, func(c *sip.PhysicalCarrier) string { return c.Material }),
			"gauge":                 filmGauge(carrierRep.StoredAt),
			"aspect_ratio":          firstCarrierValue(carrierRep.StoredAt, func(c *sip.PhysicalCarrier) string { return c.AspectRatio }),
			"brand":                 firstCarrierValue(carrierRep.StoredAt, func(c *sip.PhysicalCarrier) string { return c.Brand }),
			"stock_type":            firstCarrierValue(carrierRep.StoredAt, func(c *sip.PhysicalCarrier) string { return c.StockType }),
			"preservation_problems": preservationProblems(carrierRep.StoredAt),
			"subtitles":             subtitlesFlag(imageReels),
			"subtitles_language":    subtitleLanguages(imageReels),
			"carrier_barcodes":      carrierBarcodes(carrierRep.StoredAt),
		},
	}
	return DeepMerge(common, filmFragment)
}

// contentCategory prefers the category declared on the incoming package and
// falls back to video, the normal case for digitized film.
func contentCategory(s *sip.SIP) string {
	if s.METSType != "" {
		return s.METSType
	}
	return constants.ContentCategoryVideo
}

// imageSoundClassification crosses the entity class with the two
// missing-reel flags. Any combination outside the table is an unhandled
// variant and fails the message.
func imageSoundClassification(entityClass string, rep *sip.CarrierRepresentation) (string, error) {
	switch entityClass {
	case constants.EntityClassSoundFilm:
		if rep.HasMissingAudioReels {
			return "image without sound", nil
		}
		if rep.HasMissingImageReels {
			return "sound without image", nil
		}
		return "image with sound", nil
	case constants.EntityClassSilentFilm:
		return "image", nil
	}
	return "", &UnhandledVariantError{Axis: "entity class", Variant: entityClass}
}

// coloringTags collects the distinct coloring tags of the image reels:
// lowercased last path segment of each coloring-type URI, sorted.
func coloringTags(imageReels []*sip.PhysicalCarrier) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, reel := range imageReels {
		for _, coloringType := range reel.ColoringType {
			tag := strings.ToLower(util.LastPathSegment(coloringType))
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// colorOrBW pattern-matches the sorted tag set against the four known
// combinations. Anything else maps to nil so the field stays out of the
// sidecar rather than guessing.
func colorOrBW(tags []string) interface{} {
	switch strings.Join(tags, ",") {
	case constants.ColoringBandW:
		return "Zwart/wit"
	case constants.ColoringColor:
		return "Kleur"
	case constants.ColoringBandW + "," + constants.ColoringColor:
		return "Zwart/wit En Kleur"
	case constants.ColoringUnknown:
		return "Andere"
	}
	return nil
}

func firstCarrierValue(carriers []*sip.PhysicalCarrier, get func(*sip.PhysicalCarrier) string) interface{} {
	for _, carrier := range carriers {
		if value := get(carrier); value != "" {
			return value
		}
	}
	return nil
}

// filmGauge reads the gauge from the first carrier with a storage medium.
// The medium is a vocabulary URI whose last segment names the gauge.
func filmGauge(carriers []*sip.PhysicalCarrier) interface{} {
	for _, carrier := range carriers {
		if carrier.Medium != "" {
			return util.LastPathSegment(carrier.Medium)
		}
	}
	return nil
}

func preservationProblems(carriers []*sip.PhysicalCarrier) interface{} {
	problems := make([]Pair, 0)
	for _, carrier := range carriers {
		for _, problem := range carrier.PreservationProblems {
			problems = append(problems, Pair{
				Label: constants.LabelMultiselect,
				Value: util.LastPathSegment(problem),
			})
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

func subtitlesFlag(imageReels []*sip.PhysicalCarrier) string {
	for _, reel := range imageReels {
		if len(reel.Captioning) > 0 {
			return "y"
		}
	}
	return "n"
}

func subtitleLanguages(imageReels []*sip.PhysicalCarrier) interface{} {
	languages := make([]Pair, 0)
	seen := make(map[string]bool)
	for _, reel := range imageReels {
		for _, captioning := range reel.Captioning {
			for _, language := range captioning.InLanguage {
				if !seen[language] {
					seen[language] = true
					languages = append(languages, Pair{Label: constants.LabelMultiselect, Value: language})
				}
			}
		}
	}
	if len(languages) == 0 {
		return nil
	}
	return languages
}

func carrierBarcodes(carriers []*sip.PhysicalCarrier) interface{} {
	barcodes := make([]Pair, 0)
	for _, carrier := range carriers {
		if carrier.Identifier != "" {
			barcodes = append(barcodes, Pair{Label: constants.LabelMultiselect, Value: carrier.Identifier})
		}
	}
	if len(barcodes) == 0 {
		return nil
	}
	return barcodes
}
