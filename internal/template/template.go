// Package template holds the static setup templates: the mapping from a
// setup kind to the ordered list of packages its dependency manifest
// contains. The mapping is embedded into the binary and read-only.
package template

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind selects which dependency template a manifest is generated from.
type Kind string

// The four recognized setup kinds. The string values double as the
// accepted --setup flag values.
const (
	Basic       Kind = "basic"
	Advanced    Kind = "advanced"
	DataScience Kind = "data-science"
	Blank       Kind = "blank"
)

//go:embed templates.yaml
var templatesYAML []byte

// packages maps each setup kind to its fixed package list. Populated once
// from the embedded YAML; Blank has no entry and always resolves empty.
var packages map[Kind][]string

// init parses the embedded templates.yaml into the kind -> packages map.
// A malformed embedded file is a build defect, so failures panic.
func init() {
	var wrapper struct {
		Templates struct {
			Basic       []string `yaml:"basic"`
			Advanced    []string `yaml:"advanced"`
			DataScience []string `yaml:"data-science"`
		} `yaml:"templates"`
	}
	if err := yaml.Unmarshal(templatesYAML, &wrapper); err != nil {
		panic("Failed to unmarshal templates.yaml: " + err.Error())
	}
	packages = map[Kind][]string{
		Basic:       wrapper.Templates.Basic,
		Advanced:    wrapper.Templates.Advanced,
		DataScience: wrapper.Templates.DataScience,
		Blank:       nil,
	}
}

// ParseKind validates a raw setup kind string (typically a CLI flag value)
// and returns the corresponding Kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case Basic, Advanced, DataScience, Blank:
		return Kind(raw), nil
	default:
		return "", fmt.Errorf("invalid setup type %q: use 'basic', 'advanced', 'data-science', or 'blank'", raw)
	}
}

// Packages returns the ordered package list for the given kind. Blank
// returns an empty list. The returned slice is a copy, keeping the
// templates read-only.
func Packages(kind Kind) []string {
	pkgs := packages[kind]
	out := make([]string, len(pkgs))
	copy(out, pkgs)
	return out
}
