package aip

import (
	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
)

// BasicMapping builds the sidecar for the basic profile: the common fields
// plus a fixed image content category.
func BasicMapping(s *sip.SIP) (Mapping, error) {
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
