package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/registry.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

var (
	// ErrNoManifest is returned when a directory holds no registry manifest.
	ErrNoManifest = errors.New("no registry manifest found")
	// ErrInvalidManifest is returned when a manifest cannot be parsed or
	// fails validation. The concrete error is a *ValidationError.
	ErrInvalidManifest = errors.New("invalid registry manifest")
)

// Issue is a single problem found in a manifest.
type Issue struct {
	Path    string // instance location, e.g. "/items/2/type"
	Message string
	Keyword string // failing schema keyword, empty for non-schema checks
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError reports every issue found in one manifest file.
type ValidationError struct {
	File   string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("%s: %s", e.File, strings.Join(parts, "; "))
}

// Unwrap makes errors.Is(err, ErrInvalidManifest) hold.
func (e *ValidationError) Unwrap() error { return ErrInvalidManifest }

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("registry.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("registry.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks standard JSON manifest bytes against the registry schema.
// The error return is for schema compilation or decoding failures; problems
// with the document itself are returned as issues.
func Validate(data []byte) ([]Issue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return extractIssues(ve), nil
}

// validateVersions checks that every non-empty version parses as semver.
func validateVersions(items []Item) []Issue {
	var issues []Issue
	for i, it := range items {
		if it.Version == "" {
			continue
		}
		if _, err := semver.NewVersion(it.Version); err != nil {
			issues = append(issues, Issue{
				Path:    "/items/" + strconv.Itoa(i) + "/version",
				Message: fmt.Sprintf("%q is not a semantic version", it.Version),
			})
		}
	}
	return issues
}

func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// collectIssues walks the error tree and keeps leaf errors.
func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	switch keyword {
	case "", "allOf", "$ref", "then":
		return
	}

	*issues = append(*issues, Issue{Path: path, Message: msg, Keyword: keyword})
}

func deduplicateIssues(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, is := range issues {
		key := is.Path + "|" + is.Keyword + "|" + is.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, is)
		}
	}
	return result
}
