package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

const (
	defaultFetchTimeout = 60 * time.Second
	maxFetchBytes       = 256 << 20
)

// Fetcher retrieves the raw bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches over HTTP(S). It performs no retries.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPFetcher creates a fetcher with the given overall request timeout.
// A zero timeout uses the default.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPFetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: "mountd",
	}
}

// Fetch performs a GET and returns the body. Non-2xx responses are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if len(data) > maxFetchBytes {
		return nil, fmt.Errorf("fetching %s: response exceeds %d bytes", url, maxFetchBytes)
	}
	return data, nil
}

// ExtractZip unpacks a zip archive into dest. Entries that would land
// outside dest are rejected.
func ExtractZip(fsys afero.Fs, data []byte, dest string) error {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}

	root := filepath.Clean(dest)
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", root, err)
	}

	for _, zf := range r.File {
		target := filepath.Join(root, filepath.FromSlash(zf.Name))
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes destination", zf.Name)
		}

		if zf.FileInfo().IsDir() {
			if err := fsys.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			continue
		}

		if err := extractZipFile(fsys, zf, target); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(fsys afero.Fs, zf *zip.File, target string) error {
	if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}

	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("reading archive entry %s: %w", zf.Name, err)
	}
	defer func() { _ = rc.Close() }()

	mode := zf.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	out, err := fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return out.Close()
}

// FindRootDir returns the first directory directly under dir. Archives from
// GitHub hold exactly one, named <repo>-<ref>. ok is false when dir has no
// subdirectory.
func FindRootDir(fsys afero.Fs, dir string) (string, bool) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}
