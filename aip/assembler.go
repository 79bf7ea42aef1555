package aip

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/op/go-logging"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/common"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util"
)

// AIPPackage describes a fully assembled package on disk.
type AIPPackage struct {
	PID             string
	Profile         string
	CPID            string
	ArchiveLocation string
	Path            string
	ZipPath         string
	METS            string
	FileCount       int
}

// Assembler turns a parsed SIP plus an issued pid into a zipped package
// under the configured output folder. All validation that can fail runs
// before the first write, so a rejected SIP leaves no partial folder behind.
type Assembler struct {
	Config   *common.Config
	Logger   *logging.Logger
	Renderer Renderer
}

func NewAssembler(config *common.Config, logger *logging.Logger, renderer Renderer) *Assembler {
	return &Assembler{
		Config:   config,
		Logger:   logger,
		Renderer: renderer,
	}
}

// Assemble runs the full pipeline: classify, enumerate, map, normalize,
// render, copy, zip, clean up. Work is strictly sequential and blocking;
// a failure after the folder exists leaves the partial output in place for
// inspection.
func (a *Assembler) Assemble(s *sip.SIP, handler *ProfileHandler, pid string) (*AIPPackage, error) {
	archiveLocation := ClassifyArchiveLocation(
		s.Entity.Maintainer.Identifier,
		a.Config.TapeContentPartners,
		a.Config.DiskContentPartners,
		a.Config.DefaultArchiveLocation,
	)

	files, err := EnumerateFiles(s, pid, archiveLocation)
	if err != nil {
		return nil, err
	}
	sidecar, err := handler.GetMapping(s)
	if err != nil {
		return nil, err
	}
	events, err := NormalizeEvents(s)
	if err != nil {
		return nil, err
	}

	context := &METSContext{
		SidecarVersion:  a.Config.SidecarVersion,
		CreateDate:      time.Now().Format(time.RFC3339),
		Profile:         handler.Profile,
		PID:             pid,
		Files:           files,
		DMDSections:     DMDSections(files, pid, s.Entity.Maintainer.Identifier),
		Entity:          s.Entity,
		Events:          events,
		ArchiveLocation: archiveLocation,
		Sidecar:         sidecar,
	}
	document, err := a.Renderer.Render("mets.xml.tmpl", context)
	if err != nil {
		return nil, fmt.Errorf("cannot render package document: %v", err)
	}

	packageDir := filepath.Join(a.Config.AIPFolder, pid)
	if err := os.MkdirAll(packageDir, 0755); err != nil {
		return nil, err
	}
	metsPath := filepath.Join(packageDir, constants.MetsFileName)
	if err := os.WriteFile(metsPath, []byte(document), 0644); err != nil {
		return nil, err
	}
	a.Logger.Infof("Wrote %s for pid %s", constants.MetsFileName, pid)

	for _, file := range files {
		destPath := filepath.Join(packageDir, file.DestPath)
		if _, err := util.CopyFile(file.SourcePath, destPath); err != nil {
			return nil, fmt.Errorf("cannot copy %s: %v", file.SourcePath, err)
		}
		if a.Config.VerifyFixity {
			if err := verifyFixity(destPath, file.FixityAlgorithm, file.Checksum); err != nil {
				return nil, err
			}
		}
	}

	zipPath := filepath.Join(a.Config.AIPFolder, pid+".zip")
	if err := util.ZipDirectory(packageDir, zipPath); err != nil {
		return nil, fmt.Errorf("cannot zip package %s: %v", pid, err)
	}
	a.Logger.Infof("Zipped package %s (%d files) for %s storage", zipPath, len(files), archiveLocation)

	if a.Config.CleanupSIP {
		if util.LooksSafeToDelete(packageDir, 12, 2) {
			if err := os.RemoveAll(packageDir); err != nil {
				a.Logger.Warningf("Cannot remove package folder %s: %v", packageDir, err)
			}
		} else {
			a.Logger.Warningf("Refusing to remove %s, path looks too shallow", packageDir)
		}
	}

	return &AIPPackage{
		PID:             pid,
		Profile:         handler.Profile,
		CPID:            s.Entity.Maintainer.Identifier,
		ArchiveLocation: archiveLocation,
		Path:            packageDir,
		ZipPath:         zipPath,
		METS:            document,
		FileCount:       len(files),
	}, nil
}

// verifyFixity re-hashes the copied file and compares against the checksum
// the SIP declared. Only the digest algorithms the SIP format allows are
// supported; anything else is rejected rather than skipped.
func verifyFixity(path, algorithm, expected string) error {
	var digest hash.Hash
	switch algorithm {
	case constants.AlgMd5:
		digest = md5.New()
	case constants.AlgSha256:
		digest = sha256.New()
	case constants.AlgSha512:
		digest = sha512.New()
	default:
		return fmt.Errorf("unsupported fixity algorithm %q for %s", algorithm, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(digest, f); err != nil {
		return err
	}
	actual := hex.EncodeToString(digest.Sum(nil))
	if actual != expected {
		return fmt.Errorf("fixity mismatch for %s: got %s, want %s", path, actual, expected)
	}
	return nil
}
