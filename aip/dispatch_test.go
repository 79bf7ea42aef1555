package aip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/aip"
)

func TestDispatchSupportedProfiles(t *testing.T) {
	for _, profile := range []string{"basic", "film", "material-artwork"} {
		handler, err := aip.Dispatch("https://data.hetarchief.be/id/sip/2.1/" + profile)
		require.Nil(t, err, profile)
		assert.Equal(t, "2.1", handler.Version)
		assert.Equal(t, profile, handler.Profile)
		assert.NotNil(t, handler.GetMapping)
	}
}

func TestDispatchTrailingSlash(t *testing.T) {
	handler, err := aip.Dispatch("https://data.hetarchief.be/id/sip/2.1/film/")
	require.Nil(t, err)
	assert.Equal(t, "film", handler.Profile)
}

func TestDispatchUnknownProfile(t *testing.T) {
	_, err := aip.Dispatch("https://data.hetarchief.be/id/sip/2.1/newspaper")
	require.NotNil(t, err)
	profileErr, ok := err.(*aip.UnsupportedProfileError)
	require.True(t, ok)
	assert.Equal(t, "2.1", profileErr.Version)
	assert.Equal(t, "newspaper", profileErr.Profile)
}

func TestDispatchUnknownVersion(t *testing.T) {
	_, err := aip.Dispatch("https://data.hetarchief.be/id/sip/2.0/film")
	require.NotNil(t, err)
	versionErr, ok := err.(*aip.UnsupportedVersionError)
	require.True(t, ok)
	assert.Equal(t, "2.0", versionErr.Version)
}

func TestDispatchMalformedURI(t *testing.T) {
	_, err := aip.Dispatch("film")
	require.NotNil(t, err)
	assert.IsType(t, &aip.UnsupportedVersionError{}, err)
}
