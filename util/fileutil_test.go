package util_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/util"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.Nil(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, util.FileExists(path))
	assert.False(t, util.FileExists(filepath.Join(dir, "absent.txt")))
}

func TestLooksSafeToDelete(t *testing.T) {
	assert.True(t, util.LooksSafeToDelete("/var/data/aips/qs123abc456", 12, 2))
	assert.False(t, util.LooksSafeToDelete("/var", 12, 2))
	assert.False(t, util.LooksSafeToDelete("/a/very/deep", 30, 2))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.Nil(t, os.WriteFile(src, []byte("some content"), 0644))

	// Destination in a directory that does not exist yet.
	dst := filepath.Join(dir, "nested", "deeper", "dst.txt")
	written, err := util.CopyFile(src, dst)
	require.Nil(t, err)
	assert.Equal(t, int64(len("some content")), written)

	copied, err := os.ReadFile(dst)
	require.Nil(t, err)
	assert.Equal(t, "some content", string(copied))

	// Source stays in place.
	assert.True(t, util.FileExists(src))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := util.CopyFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dst.txt"))
	assert.NotNil(t, err)
}

func TestZipDirectory(t *testing.T) {
	srcDir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(srcDir, "mets.xml"), []byte("<mets/>"), 0644))
	sub := filepath.Join(srcDir, "representation_0")
	require.Nil(t, os.MkdirAll(sub, 0755))
	require.Nil(t, os.WriteFile(filepath.Join(sub, "file.mkv"), []byte("payload"), 0644))

	zipPath := filepath.Join(t.TempDir(), "package.zip")
	require.Nil(t, util.ZipDirectory(srcDir, zipPath))

	reader, err := zip.OpenReader(zipPath)
	require.Nil(t, err)
	defer reader.Close()

	names := make(map[string]bool)
	for _, entry := range reader.File {
		names[entry.Name] = true
	}
	assert.True(t, names["mets.xml"])
	assert.True(t, names["representation_0/file.mkv"])
	assert.Equal(t, 2, len(names))
}
