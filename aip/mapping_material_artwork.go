package aip

import (
	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
)

// MaterialArtworkMapping builds the sidecar for the material-artwork
// profile. The artwork-specific descriptive fields (artform, artmedium,
// dimensions) already live in the common fragment because the upstream
// metadata carries them regardless of profile; all this profile adds is the
// content category.
func MaterialArtworkMapping(s *sip.SIP) (Mapping, error) {
	common, err := CommonMapping(s)
	if err != nil {
		return nil, err
	}
	return DeepMerge(common, Mapping{
		"Dynamic": Mapping{
			"ContentCategory": constants.ContentCategoryImage,
		},
	})
}
