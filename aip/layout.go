package aip

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util"
)

// FileEntry describes one stored file's place in the package: the METS
// identifiers derived from its (representation, file) position, its source
// path in the unpacked bag and its destination path relative to the package
// folder.
type FileEntry struct {
	ID                  string
	DMDID               string
	ExternalID          string
	RepresentationIndex int
	FileIndex           int
	OriginalName        string
	Checksum            string
	FixityAlgorithm     string
	SourcePath          string
	DestPath            string
	ArchiveLocation     string
}

// EnumerateFiles walks the digital representations in source order and
// derives the deterministic package layout. A file without a source path or
// without a fixity value fails the whole package before any I/O happens.
func EnumerateFiles(s *sip.SIP, pid string, archiveLocation string) ([]*FileEntry, error) {
	profile := strings.ToUpper(s.ProfileName())
	entries := make([]*FileEntry, 0)

	for repIndex, rep := range s.DigitalRepresentations() {
		for fileIndex, file := range rep.Includes {
			if file.StoredAt == nil || file.StoredAt.FilePath == "" {
				return nil, fmt.Errorf("file %s has no source path", file.ID)
			}
			if file.Fixity == nil || file.Fixity.Value == "" {
				return nil, fmt.Errorf("file %s has no fixity value", file.ID)
			}
			name := filepath.Base(file.StoredAt.FilePath)
			suffix := fmt.Sprintf("%s-REPRESENTATION-%d-%d", profile, repIndex, fileIndex)
			entries = append(entries, &FileEntry{
				ID:                  "FILEID-" + suffix,
				DMDID:               "DMDID-" + suffix,
				ExternalID:          fmt.Sprintf("%s_%d_%d", pid, repIndex, fileIndex),
				RepresentationIndex: repIndex,
				FileIndex:           fileIndex,
				OriginalName:        name,
				Checksum:            file.Fixity.Value,
				FixityAlgorithm:     util.LastPathSegment(file.Fixity.Type),
				SourcePath:          file.StoredAt.FilePath,
				DestPath:            filepath.Join(fmt.Sprintf("representation_%d", repIndex), name),
				ArchiveLocation:     archiveLocation,
			})
		}
	}
	return entries, nil
}

// DMDSection is the per-file descriptive section of the METS document.
type DMDSection struct {
	ID           string
	OriginalName string
	ExternalID   string
	PID          string
	CPID         string
	SPName       string
}

// DMDSections derives one descriptive section per file entry.
func DMDSections(files []*FileEntry, pid string, cpID string) []*DMDSection {
	sections := make([]*DMDSection, 0, len(files))
	for _, file := range files {
		sections = append(sections, &DMDSection{
			ID:           file.DMDID,
			OriginalName: file.OriginalName,
			ExternalID:   file.ExternalID,
			PID:          pid,
			CPID:         cpID,
			SPName:       constants.ServiceProviderName,
		})
	}
	return sections
}
