package aip

import (
	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/util"
)

// ClassifyArchiveLocation decides where the target system should keep the
// package: Tape, Disk, or the configured default when the maintainer
// appears in neither partner list. Matching trims whitespace and ignores
// case. The tape list is checked first and the disk check runs second,
// overwriting the tape result, so a partner in both lists lands on Disk.
// That order-dependent tie-break is load-bearing; don't reorder.
func ClassifyArchiveLocation(contentPartnerID string, tapePartners, diskPartners []string, defaultLocation string) string {
	location := defaultLocation
	if util.ListContainsFold(tapePartners, contentPartnerID) {
		location = constants.ArchiveLocationTape
	}
	if util.ListContainsFold(diskPartners, contentPartnerID) {
		location = constants.ArchiveLocationDisk
	}
	return location
}
