package aip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hetarchief/aip-services/aip"
	"github.com/hetarchief/aip-services/constants"
)

func TestClassifyArchiveLocationDefault(t *testing.T) {
	location := aip.ClassifyArchiveLocation("OR-xxxxxxx",
		[]string{"OR-tape001"}, []string{"OR-disk001"}, constants.ArchiveLocationTape)
	assert.Equal(t, constants.ArchiveLocationTape, location)

	location = aip.ClassifyArchiveLocation("OR-xxxxxxx",
		nil, nil, constants.ArchiveLocationDisk)
	assert.Equal(t, constants.ArchiveLocationDisk, location)
}

func TestClassifyArchiveLocationTapePartner(t *testing.T) {
	location := aip.ClassifyArchiveLocation("OR-tape001",
		[]string{"OR-tape001"}, []string{"OR-disk001"}, constants.ArchiveLocationDisk)
	assert.Equal(t, constants.ArchiveLocationTape, location)
}

func TestClassifyArchiveLocationDiskPartner(t *testing.T) {
	location := aip.ClassifyArchiveLocation("OR-disk001",
		[]string{"OR-tape001"}, []string{"OR-disk001"}, constants.ArchiveLocationTape)
	assert.Equal(t, constants.ArchiveLocationDisk, location)
}

func TestClassifyArchiveLocationPartnerInBothLists(t *testing.T) {
	location := aip.ClassifyArchiveLocation("OR-both001",
		[]string{"OR-both001"}, []string{"OR-both001"}, constants.ArchiveLocationTape)
	assert.Equal(t, constants.ArchiveLocationDisk, location)
}

func TestClassifyArchiveLocationIgnoresCaseAndSpace(t *testing.T) {
	location := aip.ClassifyArchiveLocation("or-tape001",
		[]string{" OR-TAPE001 "}, nil, constants.ArchiveLocationDisk)
	assert.Equal(t, constants.ArchiveLocationTape, location)
}
