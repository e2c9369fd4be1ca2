// Package detect maps the current working directory to a save directory by
// matching path segments against a table of known project folders.
package detect

import (
	"path/filepath"
	"strings"
)

// Rule maps a project directory to a destination subdirectory. Project must
// appear as a path segment; Segment, when set, must also appear. Rules are
// evaluated in order and the first match wins.
type Rule struct {
	Project string
	Segment string
	Dest    string
}

func DefaultRules() []Rule {
	return []Rule{
		{Project: "Turri.cr", Segment: "Mercadeo", Dest: "generated-images"},
		{Project: "Turri.cr", Segment: "Productos", Dest: "Fotos"},
		{Project: "Turri.cr", Segment: "Productores", Dest: "Fotos"},
		{Project: "Turri.cr", Dest: "generated-images"},
	}
}

type Detector struct {
	rules []Rule
}

func New(rules []Rule) *Detector {
	return &Detector{rules: rules}
}

// Resolve returns the suggested save directory for the given working
// directory. With no matching rule the directory is returned unchanged;
// absence of a match is not an error.
func (d *Detector) Resolve(cwd string) string {
	segments := splitSegments(cwd)

	for _, rule := range d.rules {
		if !containsSegment(segments, rule.Project) {
			continue
		}
		if rule.Segment != "" && !containsSegment(segments, rule.Segment) {
			continue
		}
		return filepath.Join(cwd, rule.Dest)
	}

	return cwd
}

func splitSegments(path string) []string {
	return strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool {
		return r == '/'
	})
}

func containsSegment(segments []string, want string) bool {
	for _, seg := range segments {
		if seg == want {
			return true
		}
	}
	return false
}
