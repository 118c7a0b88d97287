package resolve

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/qualifier"
)

// TypeLookup returns the type named name. It returns an error wrapping
// ErrUnknownType if there is none.
type TypeLookup func(name string) (domain.Type, error)

// CandidateFile is the root of a candidate file.
type CandidateFile struct {
	Candidates []CandidateSpec `yaml:"candidates"`
}

// CandidateSpec names a candidate type and its qualifiers.
type CandidateSpec struct {
	// Type is a type name understood by the TypeLookup.
	Type string `yaml:"type"`

	// Qualifiers are the candidate's qualifiers. Leave empty for Default.
	Qualifiers []QualifierSpec `yaml:"qualifiers,omitempty"`
}

// QualifierSpec is a qualifier in a candidate file.
// YAML formats supported:
//   - Simple string: "Default"
//   - With values: {name: Named, values: {value: primary}}
type QualifierSpec struct {
	Name   string         `yaml:"name"`
	Values map[string]any `yaml:"values,omitempty"`
}

// qualifierSpec has no methods, so decoding into it does not recurse.
type qualifierSpec QualifierSpec

// UnmarshalYAML implements custom YAML unmarshaling for QualifierSpec.
func (q *QualifierSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*q = QualifierSpec{Name: name}
		return nil

	case yaml.MappingNode:
		var spec qualifierSpec
		if err := node.Decode(&spec); err != nil {
			return err
		}
		*q = QualifierSpec(spec)
		return nil

	default:
		return fmt.Errorf("line %d: expected qualifier name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for QualifierSpec.
// A qualifier without values is written as its name.
func (q QualifierSpec) MarshalYAML() (any, error) {
	if len(q.Values) == 0 {
		return q.Name, nil
	}
	return qualifierSpec(q), nil
}

// Attributes returns the qualifier q describes. The names Any, Default and
// Primordial without values yield the built-in qualifiers.
func (q QualifierSpec) Attributes() *attributes.Attributes {
	return qualifier.Normalize(qualifier.New(q.Name, q.Values))
}

// ParseCandidates parses and validates a candidate file.
func ParseCandidates(data []byte) (*CandidateFile, error) {
	var cf CandidateFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse candidate YAML: %w", err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return &cf, nil
}

// LoadCandidates reads and parses the candidate file at path.
func LoadCandidates(path string) (*CandidateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	return ParseCandidates(data)
}

// Validate reports every candidate without a type and every qualifier
// without a name.
func (cf *CandidateFile) Validate() error {
	var errs []error
	for i, c := range cf.Candidates {
		if c.Type == "" {
			errs = append(errs, fmt.Errorf("candidate %d: missing type", i))
		}
		for j, q := range c.Qualifiers {
			if q.Name == "" {
				errs = append(errs, fmt.Errorf("candidate %d: qualifier %d: missing name", i, j))
			}
		}
	}
	return errors.Join(errs...)
}

// Bind looks up every candidate's type and returns the candidates as
// attributed types, in file order.
func (cf *CandidateFile) Bind(lookup TypeLookup) ([]assign.AttributedType, error) {
	out := make([]assign.AttributedType, 0, len(cf.Candidates))
	for i, c := range cf.Candidates {
		at, err := c.Bind(lookup)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		out = append(out, at)
	}
	return out, nil
}

// Bind looks up the type of c and pairs it with c's qualifiers.
func (c CandidateSpec) Bind(lookup TypeLookup) (assign.AttributedType, error) {
	t, err := lookup(c.Type)
	if err != nil {
		return assign.AttributedType{}, fmt.Errorf("failed to look up %s: %w", c.Type, err)
	}
	attrs := make([]*attributes.Attributes, len(c.Qualifiers))
	for i, q := range c.Qualifiers {
		attrs[i] = q.Attributes()
	}
	return assign.NewAttributedType(t, attrs...)
}
