package aip

import (
	"math"
	"strconv"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util"
)

// NLString returns the first value tagged with the resolution language.
// The sidecar is single-language; "nl" is fixed for now.
func NLString(strings []sip.LangString) (string, error) {
	for _, langString := range strings {
		if langString.Lang == constants.ResolutionLanguage {
			return langString.Value, nil
		}
	}
	return "", &MissingTranslationError{Lang: constants.ResolutionLanguage}
}

// NLStrings returns all values tagged with the resolution language,
// preserving source order.
func NLStrings(strings []sip.LangString) []string {
	values := make([]string, 0)
	for _, langString := range strings {
		if langString.Lang == constants.ResolutionLanguage {
			values = append(values, langString.Value)
		}
	}
	return values
}

// OptionalNLString resolves an optional multilingual field: nil input maps
// to a nil sidecar value, non-nil input must carry a translation.
func OptionalNLString(strings []sip.LangString) (interface{}, error) {
	if strings == nil {
		return nil, nil
	}
	value, err := NLString(strings)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// QuantityToMillimetres converts a physical dimension to a millimetre
// string. Weights (KGM) pass through unscaled; unknown units and missing
// dimensions yield "0". Rounding is round-half-to-even on the scaled value.
func QuantityToMillimetres(dimension *sip.QuantitativeValue) string {
	if dimension == nil {
		return "0"
	}
	value := dimension.Value
	switch dimension.UnitCode {
	case "MMT":
		return strconv.Itoa(int(math.RoundToEven(value)))
	case "CMT":
		return strconv.Itoa(int(math.RoundToEven(value * 10)))
	case "MTR":
		return strconv.Itoa(int(math.RoundToEven(value * 1000)))
	case "KGM":
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return "0"
}

// Licenses maps the entity's license list to multiselect pairs. An entity
// without licenses gets the fixed institutional default set. Otherwise
// controlled-vocabulary entries come first (localized label), then free URI
// references (last path segment), each group in source order.
func Licenses(s *sip.SIP) ([]Pair, error) {
	if len(s.Entity.License) == 0 {
		defaults := make([]Pair, len(constants.DefaultLicenses))
		for i, license := range constants.DefaultLicenses {
			defaults[i] = Pair{Label: constants.LabelMultiselect, Value: license}
		}
		return defaults, nil
	}

	concepts := make([]Pair, 0)
	uris := make([]Pair, 0)
	for _, license := range s.Entity.License {
		if license.Concept != nil {
			label, err := NLString(license.Concept.PrefLabel)
			if err != nil {
				return nil, err
			}
			concepts = append(concepts, Pair{Label: constants.LabelMultiselect, Value: label})
		} else if license.URI != "" {
			uris = append(uris, Pair{Label: constants.LabelMultiselect, Value: util.LastPathSegment(license.URI)})
		}
	}
	return append(concepts, uris...), nil
}
