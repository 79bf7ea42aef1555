package aip_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/aip"
	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/models/common"
	"github.com/hetarchief/aip-services/models/sip"
	"github.com/hetarchief/aip-services/util/testutil"
)

func testAssembler(t *testing.T, cleanup bool) (*aip.Assembler, *common.Config) {
	t.Helper()
	config := &common.Config{
		AIPFolder:              t.TempDir(),
		CleanupSIP:             cleanup,
		DefaultArchiveLocation: constants.ArchiveLocationTape,
		SidecarVersion:         "22.1",
		VerifyFixity:           true,
	}
	renderer, err := aip.NewTemplateRenderer()
	require.Nil(t, err)
	return aip.NewAssembler(config, logging.MustGetLogger("test"), renderer), config
}

func profileHandler(t *testing.T, s *sip.SIP) *aip.ProfileHandler {
	t.Helper()
	handler, err := aip.Dispatch(s.Profile)
	require.Nil(t, err)
	return handler
}

func zipEntryNames(t *testing.T, zipPath string) []string {
	t.Helper()
	reader, err := zip.OpenReader(zipPath)
	require.Nil(t, err)
	defer reader.Close()
	names := make([]string, 0)
	for _, entry := range reader.File {
		names = append(names, entry.Name)
	}
	return names
}

func TestAssembleFilmPackage(t *testing.T) {
	assembler, config := testAssembler(t, false)
	s := testutil.FilmSIP(t.TempDir())

	pkg, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.Nil(t, err)

	assert.Equal(t, "qs123abc456", pkg.PID)
	assert.Equal(t, "film", pkg.Profile)
	assert.Equal(t, testutil.MaintainerID, pkg.CPID)
	assert.Equal(t, constants.ArchiveLocationTape, pkg.ArchiveLocation)
	assert.Equal(t, 1, pkg.FileCount)
	assert.Contains(t, pkg.METS, `OBJID="qs123abc456"`)

	assert.Equal(t, filepath.Join(config.AIPFolder, "qs123abc456"), pkg.Path)
	assert.True(t, fileExists(filepath.Join(pkg.Path, "mets.xml")))
	assert.True(t, fileExists(filepath.Join(pkg.Path, "representation_0", "master_dummy.mkv")))
	assert.True(t, fileExists(pkg.ZipPath))
}

func TestAssembleZipEntriesAreRelative(t *testing.T) {
	assembler, _ := testAssembler(t, true)
	s := testutil.FilmSIP(t.TempDir())

	pkg, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.Nil(t, err)

	names := zipEntryNames(t, pkg.ZipPath)
	assert.Contains(t, names, "mets.xml")
	assert.Contains(t, names, "representation_0/master_dummy.mkv")
	for _, name := range names {
		assert.False(t, strings.HasPrefix(name, "qs123abc456/"),
			"entry %s carries the package folder name", name)
	}
}

func TestAssembleCleansUpPackageFolder(t *testing.T) {
	assembler, _ := testAssembler(t, true)
	s := testutil.FilmSIP(t.TempDir())

	pkg, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.Nil(t, err)
	assert.False(t, fileExists(pkg.Path))
	assert.True(t, fileExists(pkg.ZipPath))
}

func TestAssembleKeepsSourceFiles(t *testing.T) {
	assembler, _ := testAssembler(t, true)
	sourceDir := t.TempDir()
	s := testutil.FilmSIP(sourceDir)

	_, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.Nil(t, err)

	// Files are copied, never moved; the source bag stays intact.
	assert.True(t, fileExists(filepath.Join(sourceDir, "master_dummy.mkv")))
}

func TestAssembleFailsBeforeIOOnBadCardinality(t *testing.T) {
	assembler, config := testAssembler(t, false)
	s := testutil.FilmSIP(t.TempDir())
	s.Entity.Representations = append(s.Entity.Representations, testutil.CarrierRepresentation())

	_, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "exactly one carrier representation")
	assert.False(t, fileExists(filepath.Join(config.AIPFolder, "qs123abc456")))
}

func TestAssembleFailsBeforeIOOnMissingFixity(t *testing.T) {
	assembler, config := testAssembler(t, false)
	s := testutil.FilmSIP(t.TempDir())
	s.DigitalRepresentations()[0].Includes[0].Fixity = nil

	_, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.NotNil(t, err)
	assert.False(t, fileExists(filepath.Join(config.AIPFolder, "qs123abc456")))
}

func TestAssembleDetectsFixityMismatch(t *testing.T) {
	assembler, _ := testAssembler(t, false)
	s := testutil.FilmSIP(t.TempDir())
	s.DigitalRepresentations()[0].Includes[0].Fixity.Value = strings.Repeat("0", 32)

	_, err := assembler.Assemble(s, profileHandler(t, s), "qs123abc456")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "fixity mismatch")
}

func TestAssembleBasicPackage(t *testing.T) {
	assembler, _ := testAssembler(t, true)
	s := testutil.BasicSIP(t.TempDir())

	pkg, err := assembler.Assemble(s, profileHandler(t, s), "qs789xyz012")
	require.Nil(t, err)
	assert.Equal(t, "basic", pkg.Profile)
	assert.Contains(t, pkg.METS, "<ContentCategory>image</ContentCategory>")

	names := zipEntryNames(t, pkg.ZipPath)
	assert.Contains(t, names, "representation_0/dummy.pdf")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
