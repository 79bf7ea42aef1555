package aip

import (
	"strings"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
)

// ProfileHandler bundles what the worker needs for one supported
// (version, profile) pair: the resolved names and the mapping function.
type ProfileHandler struct {
	Version    string
	Profile    string
	GetMapping func(*sip.SIP) (Mapping, error)
}

type profileKey struct {
	version string
	profile string
}

// profileRegistry is the closed dispatch table. Adding a profile means
// adding a literal entry here; there is no dynamic lookup.
var profileRegistry = map[profileKey]func(*sip.SIP) (Mapping, error){
	{constants.VersionTwoDotOne, constants.ProfileBasic}:           BasicMapping,
	{constants.VersionTwoDotOne, constants.ProfileFilm}:            FilmMapping,
	{constants.VersionTwoDotOne, constants.ProfileMaterialArtwork}: MaterialArtworkMapping,
}

// Dispatch resolves the mapping module for a SIP's profile URI. The URI's
// last two path segments encode version and profile. Unknown versions and
// unknown profiles yield distinct typed errors; both are fatal for the
// message.
func Dispatch(profileURI string) (*ProfileHandler, error) {
	segments := strings.Split(strings.TrimRight(profileURI, "/"), "/")
	if len(segments) < 2 {
		return nil, &UnsupportedVersionError{Version: profileURI, Profile: profileURI}
	}
	profile := segments[len(segments)-1]
	version := segments[len(segments)-2]

	if mapping, ok := profileRegistry[profileKey{version, profile}]; ok {
		return &ProfileHandler{
			Version:    version,
			Profile:    profile,
			GetMapping: mapping,
		}, nil
	}
	for key := range profileRegistry {
		if key.version == version {
			return nil, &UnsupportedProfileError{Version: version, Profile: profile}
		}
	}
	return nil, &UnsupportedVersionError{Version: version, Profile: profile}
}
