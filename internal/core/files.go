package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// excludedFiles are files/dirs never copied into an agent directory.
var excludedFiles = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// FileInfo is the subset of stat results the install flow needs.
type FileInfo struct {
	IsFile bool
	IsDir  bool
}

// Files is the filesystem collaborator used by the installer and remover.
type Files struct {
	fs afero.Fs
}

// NewFiles wraps fsys.
func NewFiles(fsys afero.Fs) *Files {
	return &Files{fs: fsys}
}

// Fs returns the underlying filesystem.
func (f *Files) Fs() afero.Fs { return f.fs }

// Exists reports whether path exists. Errors other than not-exist count as
// absent.
func (f *Files) Exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	return err == nil && ok
}

// EnsureDir creates path and any missing parents.
func (f *Files) EnsureDir(path string) error {
	if err := f.fs.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// Stat describes path.
func (f *Files) Stat(path string) (FileInfo, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{IsFile: info.Mode().IsRegular(), IsDir: info.IsDir()}, nil
}

// Remove deletes path recursively. A missing path is not an error.
func (f *Files) Remove(path string) error {
	return f.fs.RemoveAll(path)
}

// Copy copies src to dst. A directory is copied recursively into dst. When
// overwrite is false, files already present at the destination are kept.
func (f *Files) Copy(src, dst string, overwrite bool) error {
	info, err := f.fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		if err := f.EnsureDir(filepath.Dir(dst)); err != nil {
			return err
		}
		return f.copyFile(src, dst, info.Mode(), overwrite)
	}
	return f.copyDirectory(src, dst, overwrite)
}

// copyDirectory copies the contents of src to dst, excluding certain files.
func (f *Files) copyDirectory(src, dst string, overwrite bool) error {
	return afero.Walk(f.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if rel != "." && excludedFiles[info.Name()] {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		dstPath := filepath.Join(dst, rel)
		if info.IsDir() {
			return f.fs.MkdirAll(dstPath, 0o755)
		}
		return f.copyFile(path, dstPath, info.Mode(), overwrite)
	})
}

// copyFile copies a single file from src to dst.
func (f *Files) copyFile(src, dst string, mode os.FileMode, overwrite bool) error {
	if !overwrite && f.Exists(dst) {
		return nil
	}

	srcFile, err := f.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	return dstFile.Close()
}
