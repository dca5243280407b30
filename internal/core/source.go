package core

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrShorthandUnsupported is returned for "@scope/name" registry shorthand.
var ErrShorthandUnsupported = errors.New("registry shorthand is not supported yet; use a full URL")

// SourceKind classifies an install source.
type SourceKind string

const (
	SourceReinstall  SourceKind = "reinstall"   // no source: reinstall recorded items
	SourceLocal      SourceKind = "local"       // local file or directory
	SourceGitHubFile SourceKind = "github-blob" // single file in a GitHub repo
	SourceGitHubTree SourceKind = "github-tree" // subdirectory of a GitHub repo
	SourceGitHubRepo SourceKind = "github-repo" // repository root holding a registry
	SourceZip        SourceKind = "zip"         // arbitrary zip archive
	SourceRawFile    SourceKind = "raw"         // arbitrary single file over HTTP
)

const defaultRecordRef = "main"

// GitHubInfo identifies a location on github.com.
type GitHubInfo struct {
	Owner string
	Repo  string
	Type  string // "tree", "blob" or empty for the repository root
	Ref   string // branch, tag or commit; empty means the default branch
	Path  string // path inside the repository
}

// RepoURL returns the repository's web URL.
func (g GitHubInfo) RepoURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", g.Owner, g.Repo)
}

// RawURL returns the raw.githubusercontent.com URL of the file at Path.
func (g GitHubInfo) RawURL() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", g.Owner, g.Repo, g.refOr("HEAD"), g.Path)
}

// ArchiveURL returns the zip archive URL of the whole repository at Ref.
func (g GitHubInfo) ArchiveURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/archive/%s.zip", g.Owner, g.Repo, g.refOr("HEAD"))
}

// ItemURL returns the tree URL recorded as the source of an item at p.
func (g GitHubInfo) ItemURL(p string) string {
	return fmt.Sprintf("%s/tree/%s/%s", g.RepoURL(), g.refOr(defaultRecordRef), strings.TrimPrefix(p, "/"))
}

func (g GitHubInfo) refOr(def string) string {
	if g.Ref == "" {
		return def
	}
	return g.Ref
}

// Source is a parsed install source.
type Source struct {
	Kind   SourceKind
	Input  string      // as given by the user
	URL    string      // normalized URL for remote kinds
	GitHub *GitHubInfo // set for the GitHub kinds
	Path   string      // local path for SourceLocal
}

// String returns the source as it is recorded in the install state.
func (s *Source) String() string {
	if s.Kind == SourceLocal {
		return s.Path
	}
	return s.Input
}

// ParseSource classifies a user-supplied source string.
//
// Supported formats:
//   - ""                                         → reinstall from .mountdrc.json
//   - "owner/repo"                               → GitHub repo root (registry)
//   - "owner/repo/path/to/item"                  → GitHub repo subdirectory
//   - "https://github.com/o/r/blob/<ref>/<file>" → single file
//   - "https://github.com/o/r/tree/<ref>/<dir>"  → repo subdirectory
//   - "https://github.com/o/r"                   → GitHub repo root (registry)
//   - "https://host/any.zip"                     → zip archive
//   - "https://host/any/file"                    → single raw file
//   - anything else                              → local path
func ParseSource(input string) (*Source, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return &Source{Kind: SourceReinstall}, nil
	}

	if strings.HasPrefix(input, "@") {
		return nil, fmt.Errorf("%q: %w", input, ErrShorthandUnsupported)
	}

	if isURL(input) {
		return parseURLSource(input, input, false)
	}

	if isShorthand(input) {
		return parseURLSource("https://github.com/"+strings.Trim(input, "/"), input, true)
	}

	return &Source{Kind: SourceLocal, Input: input, Path: input}, nil
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "https://") || strings.HasPrefix(input, "http://")
}

// isShorthand reports whether input looks like "owner/repo[/path]".
func isShorthand(input string) bool {
	if strings.HasPrefix(input, ".") || strings.HasPrefix(input, "/") || strings.HasPrefix(input, "~") {
		return false
	}
	return strings.Contains(input, "/")
}

func parseURLSource(raw, input string, shorthand bool) (*Source, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	if gh := parseGitHubURL(u, shorthand); gh != nil {
		src := &Source{Input: input, URL: raw, GitHub: gh}
		switch {
		case gh.Type == "blob" && gh.Path != "":
			src.Kind = SourceGitHubFile
		case gh.Path != "":
			src.Kind = SourceGitHubTree
		case strings.HasSuffix(u.Path, ".zip"):
			src.Kind = SourceZip
			src.GitHub = nil
		default:
			src.Kind = SourceGitHubRepo
		}
		return src, nil
	}

	if strings.HasSuffix(u.Path, ".zip") {
		return &Source{Kind: SourceZip, Input: input, URL: raw}, nil
	}
	return &Source{Kind: SourceRawFile, Input: input, URL: raw}, nil
}

// parseGitHubURL extracts owner, repo and an optional tree/blob location
// from a github.com URL. Returns nil for other hosts. Extra path segments
// after owner/repo name a subdirectory only in shorthand form.
func parseGitHubURL(u *url.URL, shorthand bool) *GitHubInfo {
	host := strings.ToLower(u.Host)
	if host != "github.com" && host != "www.github.com" {
		return nil
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}

	gh := &GitHubInfo{
		Owner: parts[0],
		Repo:  strings.TrimSuffix(parts[1], ".git"),
	}

	rest := parts[2:]
	switch {
	case len(rest) >= 2 && (rest[0] == "tree" || rest[0] == "blob"):
		gh.Type = rest[0]
		gh.Ref = rest[1]
		gh.Path = strings.Join(rest[2:], "/")
	case shorthand && len(rest) > 0:
		gh.Type = "tree"
		gh.Path = path.Join(rest...)
	}
	return gh
}
