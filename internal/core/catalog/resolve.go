package catalog

import "fmt"

// Visited is the set of bundle names already expanded during one resolution.
// The same set must be threaded through every recursive call so that a
// bundle reached from two branches is expanded only once.
type Visited map[string]struct{}

// WarningKind classifies a resolution anomaly.
type WarningKind string

const (
	WarnCycle       WarningKind = "cycle"
	WarnEmptyBundle WarningKind = "empty-bundle"
)

// Warning is an advisory event raised while expanding bundles. Warnings never
// stop resolution.
type Warning struct {
	Kind   WarningKind
	Bundle string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnCycle:
		return fmt.Sprintf("circular dependency detected in bundle %q; skipping", w.Bundle)
	case WarnEmptyBundle:
		return fmt.Sprintf("bundle %q has no includes", w.Bundle)
	default:
		return fmt.Sprintf("bundle %q: %s", w.Bundle, w.Kind)
	}
}

// Resolution is the outcome of expanding one or more selected items.
type Resolution struct {
	Valid    []Item   // concrete items, unique by name, first occurrence kept
	Missing  []string // referenced names absent from the catalog, unique
	Warnings []Warning
}

// Resolve expands selected into the concrete items it denotes. Non-bundle
// items resolve to themselves. Missing references and cycles are reported in
// the result; Resolve never fails and always terminates.
//
// A nil visited set starts a fresh resolution.
func Resolve(c *Catalog, selected Item, visited Visited) Resolution {
	if visited == nil {
		visited = Visited{}
	}
	var warnings []Warning
	res := resolve(c, selected, visited, &warnings)
	res.Warnings = warnings
	return res
}

func resolve(c *Catalog, selected Item, visited Visited, warnings *[]Warning) Resolution {
	if !selected.IsBundle() {
		return Resolution{Valid: []Item{selected}}
	}

	if _, ok := visited[selected.Name]; ok {
		*warnings = append(*warnings, Warning{Kind: WarnCycle, Bundle: selected.Name})
		return Resolution{}
	}
	visited[selected.Name] = struct{}{}

	if len(selected.Includes) == 0 {
		*warnings = append(*warnings, Warning{Kind: WarnEmptyBundle, Bundle: selected.Name})
		return Resolution{}
	}

	var valid []Item
	var missing []string
	for _, name := range selected.Includes {
		found, ok := c.Find(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		sub := resolve(c, found, visited, warnings)
		valid = append(valid, sub.Valid...)
		missing = append(missing, sub.Missing...)
	}

	return Resolution{
		Valid:   uniqueItems(valid),
		Missing: uniqueNames(missing),
	}
}

// ResolveSelection resolves each selected item with its own visited set and
// merges the results. Bundles never appear in Valid.
func ResolveSelection(c *Catalog, selected []Item) Resolution {
	var merged Resolution
	for _, it := range selected {
		r := Resolve(c, it, nil)
		merged.Valid = append(merged.Valid, r.Valid...)
		merged.Missing = append(merged.Missing, r.Missing...)
		merged.Warnings = append(merged.Warnings, r.Warnings...)
	}
	merged.Valid = uniqueItems(merged.Valid)
	merged.Missing = uniqueNames(merged.Missing)
	return merged
}

func uniqueItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if seen[it.Name] {
			continue
		}
		seen[it.Name] = true
		out = append(out, it)
	}
	return out
}

func uniqueNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
