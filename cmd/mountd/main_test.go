package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/rogpeppe/go-internal/testscript"

	"github.com/mountd-cli/mountd/cmd/mountd/cmd"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"mountd": func() {
			if err := cmd.Execute(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	})
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		RequireExplicitExec: true,
		Setup: func(e *testscript.Env) error {
			// Keep user settings inside the temp dir.
			e.Vars = append(e.Vars,
				"HOME="+e.WorkDir,
				"XDG_CONFIG_HOME="+filepath.Join(e.WorkDir, ".config"),
			)

			// Files under $WORK/www are served at $SERVER.
			srv := httptest.NewServer(http.FileServer(http.Dir(filepath.Join(e.WorkDir, "www"))))
			e.Defer(srv.Close)
			e.Vars = append(e.Vars, "SERVER="+srv.URL)
			return nil
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			// file-contains asserts that a file contains (or doesn't contain) a substring.
			// Usage: [!] file-contains <path> <substring>
			"file-contains": cmdFileContains,

			// dir-not-exists asserts that a path does not exist.
			// Usage: [!] dir-not-exists <path>
			"dir-not-exists": cmdDirNotExists,

			// mkzip packs a directory into a zip archive, keeping the
			// directory itself as the archive's top-level entry.
			// Usage: mkzip <archive.zip> <dir>
			"mkzip": cmdMkzip,

			// installed asserts the recorded fields of an entry in .mountdrc.json.
			// Usage: [!] installed <name> [field=value...]
			"installed": cmdInstalled,
		},
	})
}

// cmdFileContains checks if a file contains a substring.
func cmdFileContains(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) < 2 {
		ts.Fatalf("usage: file-contains <path> <substring>")
	}
	data, err := os.ReadFile(ts.MkAbs(args[0]))
	if err != nil {
		ts.Fatalf("reading %s: %v", args[0], err)
	}

	contains := strings.Contains(string(data), args[1])
	if neg && contains {
		ts.Fatalf("file %s contains %q (expected not to)", args[0], args[1])
	}
	if !neg && !contains {
		ts.Fatalf("file %s does not contain %q\nContent:\n%s", args[0], args[1], data)
	}
}

// cmdDirNotExists checks that a path does not exist.
func cmdDirNotExists(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 1 {
		ts.Fatalf("usage: dir-not-exists <path>")
	}
	_, err := os.Stat(ts.MkAbs(args[0]))
	exists := err == nil
	if neg && !exists {
		ts.Fatalf("%s does not exist (expected it to)", args[0])
	}
	if !neg && exists {
		ts.Fatalf("%s exists (expected not to)", args[0])
	}
}

func cmdMkzip(ts *testscript.TestScript, neg bool, args []string) {
	if neg || len(args) != 2 {
		ts.Fatalf("usage: mkzip <archive.zip> <dir>")
	}
	dst, src := ts.MkAbs(args[0]), ts.MkAbs(args[1])
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		ts.Fatalf("creating %s: %v", filepath.Dir(dst), err)
	}

	f, err := os.Create(dst)
	if err != nil {
		ts.Fatalf("creating %s: %v", dst, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	base := filepath.Dir(src)
	err = filepath.Walk(src, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		in, err := os.Open(p)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		ts.Fatalf("zipping %s: %v", src, err)
	}
	if err := zw.Close(); err != nil {
		ts.Fatalf("closing %s: %v", dst, err)
	}
}

func cmdInstalled(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) < 1 {
		ts.Fatalf("usage: installed <name> [field=value...]")
	}
	data, err := os.ReadFile(ts.MkAbs(".mountdrc.json"))
	if err != nil {
		ts.Fatalf("reading .mountdrc.json: %v", err)
	}
	var cfg struct {
		Installed []map[string]any `json:"installed"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		ts.Fatalf("parsing .mountdrc.json: %v", err)
	}

	var rec map[string]any
	for _, r := range cfg.Installed {
		if r["name"] == args[0] {
			rec = r
			break
		}
	}
	if neg {
		if rec != nil {
			ts.Fatalf("%s is recorded (expected not to be)", args[0])
		}
		return
	}
	if rec == nil {
		ts.Fatalf("%s is not recorded in .mountdrc.json:\n%s", args[0], data)
	}
	for _, kv := range args[1:] {
		field, want, ok := strings.Cut(kv, "=")
		if !ok {
			ts.Fatalf("bad field assertion %q", kv)
		}
		if got := fmt.Sprint(rec[field]); got != want {
			ts.Fatalf("%s.%s = %q, want %q", args[0], field, got, want)
		}
	}
}
