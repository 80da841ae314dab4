package hev

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ValueKind tags which arm of a ClassValue is populated
type ValueKind int

// ClassValue kinds
const (
	ValueNone ValueKind = iota
	ValueFlat
	ValuePerClass
)

// ClassValue is a number that is either the same for every chassis class or
// listed per class name. Catalog tonnage and damage ratings use it.
//
// In YAML and JSON a flat value is a bare number and a per-class value is a
// mapping of class name to number.
type ClassValue struct {
	Kind     ValueKind
	Flat     int
	PerClass map[string]int
}

// Flat returns a ClassValue applying n to every class
func Flat(n int) ClassValue {
	return ClassValue{Kind: ValueFlat, Flat: n}
}

// PerClass returns a ClassValue keyed by class name
func PerClass(values map[string]int) ClassValue {
	copied := make(map[string]int, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return ClassValue{Kind: ValuePerClass, PerClass: copied}
}

// For returns the value for className. ok is false when the value is
// per-class and has no entry for className, or when the value is unset.
func (v ClassValue) For(className string) (int, bool) {
	switch v.Kind {
	case ValueFlat:
		return v.Flat, true
	case ValuePerClass:
		n, ok := v.PerClass[className]
		return n, ok
	default:
		return 0, false
	}
}

// Covers reports whether the value applies to className
func (v ClassValue) Covers(className string) bool {
	_, ok := v.For(className)
	return ok
}

// Classes returns the class names of a per-class value in sorted order.
// Flat and unset values return nil.
func (v ClassValue) Classes() []string {
	if v.Kind != ValuePerClass {
		return nil
	}
	names := make([]string, 0, len(v.PerClass))
	for name := range v.PerClass {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy that shares no map with v
func (v ClassValue) Clone() ClassValue {
	if v.Kind == ValuePerClass {
		return PerClass(v.PerClass)
	}
	return v
}

// String renders the value for display, e.g. "3" or "Heavy:5/Light:3"
func (v ClassValue) String() string {
	switch v.Kind {
	case ValueFlat:
		return fmt.Sprintf("%d", v.Flat)
	case ValuePerClass:
		out := ""
		for i, name := range v.Classes() {
			if i > 0 {
				out += "/"
			}
			out += fmt.Sprintf("%s:%d", name, v.PerClass[name])
		}
		return out
	default:
		return "-"
	}
}

// UnmarshalYAML accepts either a scalar number or a mapping of class to number
func (v *ClassValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = ClassValue{}
			return nil
		}
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: class value must be a number: %w", node.Line, err)
		}
		*v = Flat(n)
		return nil
	case yaml.MappingNode:
		var m map[string]int
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("line %d: class value mapping must be class: number: %w", node.Line, err)
		}
		*v = PerClass(m)
		return nil
	default:
		return fmt.Errorf("line %d: class value must be a number or a mapping", node.Line)
	}
}

// MarshalYAML writes a flat value as a number and a per-class value as a mapping
func (v ClassValue) MarshalYAML() (any, error) {
	switch v.Kind {
	case ValueFlat:
		return v.Flat, nil
	case ValuePerClass:
		return v.PerClass, nil
	default:
		return nil, nil
	}
}

// UnmarshalJSON accepts either a number or an object of class to number
func (v *ClassValue) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*v = ClassValue{}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Flat(n)
		return nil
	}

	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("class value must be a number or an object: %w", err)
	}
	*v = PerClass(m)
	return nil
}

// MarshalJSON writes a flat value as a number and a per-class value as an object
func (v ClassValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueFlat:
		return json.Marshal(v.Flat)
	case ValuePerClass:
		return json.Marshal(v.PerClass)
	default:
		return []byte("null"), nil
	}
}
