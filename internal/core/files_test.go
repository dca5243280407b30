package core

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFiles_CopyDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	f := NewFiles(fsys)
	_ = afero.WriteFile(fsys, "/src/lint/SKILL.md", []byte("# Lint"), 0o644)
	_ = afero.WriteFile(fsys, "/src/lint/scripts/run.sh", []byte("echo"), 0o755)
	_ = afero.WriteFile(fsys, "/src/lint/.git/HEAD", []byte("ref"), 0o644)

	if err := f.Copy("/src/lint", "/dst/lint", false); err != nil {
		t.Fatalf("Copy() error: %v", err)
	}

	if !f.Exists("/dst/lint/SKILL.md") || !f.Exists("/dst/lint/scripts/run.sh") {
		t.Error("expected files copied recursively")
	}
	if f.Exists("/dst/lint/.git") {
		t.Error(".git should not be copied")
	}
}

func TestFiles_CopyOverwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	f := NewFiles(fsys)
	_ = afero.WriteFile(fsys, "/src/a.md", []byte("new"), 0o644)
	_ = afero.WriteFile(fsys, "/dst/a.md", []byte("old"), 0o644)

	if err := f.Copy("/src/a.md", "/dst/a.md", false); err != nil {
		t.Fatal(err)
	}
	if got, _ := afero.ReadFile(fsys, "/dst/a.md"); string(got) != "old" {
		t.Errorf("without overwrite content = %q, want old", got)
	}

	if err := f.Copy("/src/a.md", "/dst/a.md", true); err != nil {
		t.Fatal(err)
	}
	if got, _ := afero.ReadFile(fsys, "/dst/a.md"); string(got) != "new" {
		t.Errorf("with overwrite content = %q, want new", got)
	}
}

func TestFiles_CopyFileCreatesParents(t *testing.T) {
	fsys := afero.NewMemMapFs()
	f := NewFiles(fsys)
	_ = afero.WriteFile(fsys, "/src/a.md", []byte("x"), 0o644)

	if err := f.Copy("/src/a.md", "/deep/nested/b.md", false); err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	if !f.Exists("/deep/nested/b.md") {
		t.Error("expected file at /deep/nested/b.md")
	}
}

func TestFiles_StatAndRemove(t *testing.T) {
	fsys := afero.NewMemMapFs()
	f := NewFiles(fsys)
	_ = afero.WriteFile(fsys, "/d/a.md", []byte("x"), 0o644)

	fi, err := f.Stat("/d/a.md")
	if err != nil || !fi.IsFile || fi.IsDir {
		t.Errorf("Stat(file) = %+v, %v", fi, err)
	}
	di, err := f.Stat("/d")
	if err != nil || di.IsFile || !di.IsDir {
		t.Errorf("Stat(dir) = %+v, %v", di, err)
	}
	if _, err := f.Stat("/missing"); err == nil {
		t.Error("Stat(missing) should fail")
	}

	if err := f.Remove("/d"); err != nil {
		t.Fatal(err)
	}
	if f.Exists("/d/a.md") {
		t.Error("Remove did not delete recursively")
	}
	if err := f.Remove("/d"); err != nil {
		t.Errorf("Remove(missing) error: %v", err)
	}
}
