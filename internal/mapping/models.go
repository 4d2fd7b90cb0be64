package mapping

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor identifies a physical input device by the display name and
// device class reported by the external configuration utility.
type Descriptor struct {
	// Name is the device's display name, e.g. "Wacom Intuos Pro M Pad pad".
	// Names may contain internal whitespace.
	Name string

	// Type is the device class token, e.g. "PAD" or "STYLUS".
	Type string
}

// String returns a human-readable form of the descriptor.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s (type: %s)", d.Name, d.Type)
}

// Rule is one desired property assignment on a device. Property and
// Parameter together address a single configurable setting; Value is the
// desired state for it. Label is an optional human-readable annotation and
// is never used in comparison.
type Rule struct {
	Property  string
	Parameter string
	Value     string
	Label     string
}

// fromTuple populates the rule from its serialized tuple form.
func (r *Rule) fromTuple(tuple []string) error {
	if len(tuple) < 3 || len(tuple) > 4 {
		return fmt.Errorf("rule must have 3 or 4 elements (property, parameter, value, optional label), got %d", len(tuple))
	}
	r.Property = tuple[0]
	r.Parameter = tuple[1]
	r.Value = tuple[2]
	if len(tuple) == 4 {
		r.Label = tuple[3]
	}
	return nil
}

// UnmarshalJSON decodes a rule from its JSON tuple form,
// e.g. ["Button", "1", "key a", "copy"].
func (r *Rule) UnmarshalJSON(data []byte) error {
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("rule must be an array of strings: %w", err)
	}
	return r.fromTuple(tuple)
}

// UnmarshalYAML decodes a rule from its YAML sequence form,
// e.g. [Button, "1", key a, copy].
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	var tuple []string
	if err := node.Decode(&tuple); err != nil {
		return fmt.Errorf("rule must be a sequence of strings: %w", err)
	}
	return r.fromTuple(tuple)
}

// Setting returns the property/parameter pair as a display string.
func (r Rule) Setting() string {
	return strings.TrimSpace(r.Property + " " + r.Parameter)
}

// Document is the full desired-state specification for one device: a device
// descriptor plus an ordered list of mapping rules. A document is loaded
// once per run and immutable thereafter.
type Document struct {
	Descriptor Descriptor
	Rules      []Rule
}

// documentFile is the on-disk shape of a mapping document. Name and Type are
// pointers so a missing field can be told apart from an empty one.
type documentFile struct {
	Name  *string `json:"name" yaml:"name"`
	Type  *string `json:"type" yaml:"type"`
	Rules []Rule  `json:"map" yaml:"map"`
}

// validate checks that all three required top-level fields are present.
func (f *documentFile) validate() error {
	if f.Name == nil || *f.Name == "" {
		return fmt.Errorf("document is missing required field %q", "name")
	}
	if f.Type == nil || *f.Type == "" {
		return fmt.Errorf("document is missing required field %q", "type")
	}
	if f.Rules == nil {
		return fmt.Errorf("document is missing required field %q", "map")
	}
	return nil
}

// document converts the validated file form into a Document.
func (f *documentFile) document() *Document {
	return &Document{
		Descriptor: Descriptor{Name: *f.Name, Type: *f.Type},
		Rules:      f.Rules,
	}
}
