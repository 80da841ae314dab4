package hev

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// TraitLimited is the trait whose numeric value is rendered as usage circles
const TraitLimited = "Limited"

// MaxLimitedCircles is the most usage circles drawn for a Limited trait;
// larger counts are printed as a number
const MaxLimitedCircles = 12

// TraitValueKind tags which arm of a TraitValue is populated
type TraitValueKind int

// TraitValue kinds
const (
	TraitValueNumber TraitValueKind = iota + 1
	TraitValueText
	TraitValuePerClass
)

// TraitValue is the optional parameter of a trait: a number ("AP 1"), free
// text, or a per-class mapping. It is display data only.
type TraitValue struct {
	Kind     TraitValueKind
	Number   int
	Text     string
	PerClass map[string]string
}

// TraitUse attaches a named trait to a weapon or upgrade
type TraitUse struct {
	Name  string      `yaml:"name" json:"name"`
	Value *TraitValue `yaml:"value,omitempty" json:"value,omitempty"`
}

// NumberTrait is shorthand for a trait with a numeric value
func NumberTrait(name string, n int) TraitUse {
	return TraitUse{Name: name, Value: &TraitValue{Kind: TraitValueNumber, Number: n}}
}

// PerClassTrait is shorthand for a trait whose value varies by class
func PerClassTrait(name string, values map[string]string) TraitUse {
	return TraitUse{Name: name, Value: &TraitValue{Kind: TraitValuePerClass, PerClass: values}}
}

// Clone returns a deep copy
func (t TraitUse) Clone() TraitUse {
	if t.Value == nil {
		return t
	}
	v := *t.Value
	if v.PerClass != nil {
		v.PerClass = make(map[string]string, len(t.Value.PerClass))
		for k, val := range t.Value.PerClass {
			v.PerClass[k] = val
		}
	}
	return TraitUse{Name: t.Name, Value: &v}
}

// FormatTrait renders a trait for a roster sheet. className selects the
// entry of a per-class value; when it has none every class is listed by its
// initial, e.g. "Blast (H:3/L:1)".
func FormatTrait(t TraitUse, className string) string {
	if t.Name == "" {
		return "Unknown Trait"
	}
	if t.Value == nil {
		return t.Name
	}

	switch t.Value.Kind {
	case TraitValueNumber:
		n := t.Value.Number
		if t.Name == TraitLimited && n > 0 && n <= MaxLimitedCircles {
			return fmt.Sprintf("%s(%s)", TraitLimited, strings.Repeat("○", n))
		}
		return fmt.Sprintf("%s %d", t.Name, n)
	case TraitValueText:
		return fmt.Sprintf("%s %s", t.Name, t.Value.Text)
	case TraitValuePerClass:
		if v, ok := t.Value.PerClass[className]; ok && className != "" {
			return fmt.Sprintf("%s %s", t.Name, v)
		}
		keys := make([]string, 0, len(t.Value.PerClass))
		for k := range t.Value.PerClass {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			initial := k
			if r, size := utf8.DecodeRuneInString(k); size > 0 && r != utf8.RuneError {
				initial = string(r)
			}
			parts = append(parts, fmt.Sprintf("%s:%s", initial, t.Value.PerClass[k]))
		}
		return fmt.Sprintf("%s (%s)", t.Name, strings.Join(parts, "/"))
	default:
		return t.Name
	}
}

// FormatTraits renders a trait list joined by ", "
func FormatTraits(traits []TraitUse, className string) string {
	parts := make([]string, 0, len(traits))
	for _, t := range traits {
		parts = append(parts, FormatTrait(t, className))
	}
	return strings.Join(parts, ", ")
}

// TraitNames returns the distinct trait names used by the given weapons and
// upgrades, sorted, for building a trait glossary.
func TraitNames(weapons []WeaponDefinition, upgrades []UpgradeDefinition) []string {
	seen := make(map[string]struct{})
	for _, w := range weapons {
		for _, t := range w.Traits {
			seen[t.Name] = struct{}{}
		}
	}
	for _, u := range upgrades {
		for _, t := range u.Traits {
			seen[t.Name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// UnmarshalYAML accepts a bare trait name ("Indirect") or a {name, value} mapping
func (t *TraitUse) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = TraitUse{Name: node.Value}
		return nil
	}

	type plain TraitUse
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*t = TraitUse(p)
	return nil
}

// UnmarshalYAML decodes a number, text or per-class mapping
func (v *TraitValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" {
			n, err := strconv.Atoi(node.Value)
			if err != nil {
				return fmt.Errorf("line %d: trait value: %w", node.Line, err)
			}
			*v = TraitValue{Kind: TraitValueNumber, Number: n}
			return nil
		}
		*v = TraitValue{Kind: TraitValueText, Text: node.Value}
		return nil
	case yaml.MappingNode:
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("line %d: trait value: %w", node.Line, err)
		}
		*v = TraitValue{Kind: TraitValuePerClass, PerClass: stringify(m)}
		return nil
	default:
		return fmt.Errorf("line %d: trait value must be a scalar or a mapping", node.Line)
	}
}

// MarshalYAML mirrors UnmarshalYAML
func (v TraitValue) MarshalYAML() (any, error) {
	return v.raw(), nil
}

// UnmarshalJSON decodes a number, string or per-class object
func (v *TraitValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = TraitValue{Kind: TraitValueNumber, Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TraitValue{Kind: TraitValueText, Text: s}
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("trait value must be a number, string or object: %w", err)
	}
	*v = TraitValue{Kind: TraitValuePerClass, PerClass: stringify(m)}
	return nil
}

// MarshalJSON mirrors UnmarshalJSON
func (v TraitValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw())
}

// UnmarshalJSON accepts a bare trait name or a {name, value} object, matching
// rosters exported before traits carried values
func (t *TraitUse) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*t = TraitUse{Name: name}
		return nil
	}

	type plain TraitUse
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = TraitUse(p)
	return nil
}

func (v TraitValue) raw() any {
	switch v.Kind {
	case TraitValueNumber:
		return v.Number
	case TraitValueText:
		return v.Text
	case TraitValuePerClass:
		return v.PerClass
	default:
		return nil
	}
}

func stringify(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[k] = fmt.Sprint(val)
	}
	return out
}
