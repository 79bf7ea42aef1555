package util

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// FileExists returns true if the file at path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExpandTilde expands the tilde in a file path to the current user's
// home directory.
func ExpandTilde(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	separatorIndex := strings.Index(filePath, string(os.PathSeparator))
	if separatorIndex < 0 {
		return usr.HomeDir, nil
	}
	return filepath.Join(usr.HomeDir, filePath[separatorIndex+1:]), nil
}

// LooksSafeToDelete returns true if the path looks safe to delete: long
// enough and deep enough that it cannot be a system directory.
func LooksSafeToDelete(dir string, minLength, minSeparators int) bool {
	separators := strings.Count(dir, string(os.PathSeparator))
	return len(dir) >= minLength && separators >= minSeparators
}

// CopyFile copies src to dst, creating intermediate directories as needed.
// It returns the number of bytes copied.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	if err = os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, err
	}
	return written, out.Close()
}

// ZipDirectory zips the contents of srcDir into zipPath. Entry names are
// relative to srcDir, so the archive contains no leading folder name.
func ZipDirectory(srcDir, zipPath string) error {
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()
	writer := zip.NewWriter(zipFile)
	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(relPath)
		header.Method = zip.Deflate
		entry, err := writer.CreateHeader(header)
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(entry, in)
		return err
	})
	if err != nil {
		writer.Close()
		return fmt.Errorf("error zipping %s: %v", srcDir, err)
	}
	return writer.Close()
}
