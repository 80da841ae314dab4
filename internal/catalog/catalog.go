// Package catalog provides the static reference tables a unit is built from:
// chassis classes, mobility systems, weapons, upgrades and trait rules text.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog holds the five reference tables. It is treated as immutable once
// loaded; callers must not modify the slices.
type Catalog struct {
	Classes  []hev.ChassisClass      `yaml:"classes"`
	Mobility []hev.MobilitySystem    `yaml:"mobility"`
	Weapons  []hev.WeaponDefinition  `yaml:"weapons"`
	Upgrades []hev.UpgradeDefinition `yaml:"upgrades"`
	Traits   map[string]string       `yaml:"traits"`
}

// Default returns the catalog shipped with the binary
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load default catalog")
	}
	return c, nil
}

// MustDefault is Default for program start and tests
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads and validates a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to open catalog %s: %v", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	c, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Load reads and validates a YAML catalog
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.InvalidArgumentf("failed to parse catalog: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog's keys are present and unique and that every
// class referenced by a mobility system or an upgrade restriction exists.
// Per-class tonnage tables may omit classes; that is how availability works.
func (c *Catalog) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Classes) == 0 {
		vb.RequiredField("classes")
	}

	classes := make(map[string]bool, len(c.Classes))
	for i, class := range c.Classes {
		field := fmt.Sprintf("classes[%d]", i)
		switch {
		case class.Name == "":
			vb.Field(field, "name is required")
		case classes[class.Name]:
			vb.Fieldf(field, "duplicate class name %q", class.Name)
		}
		if class.BaseTonnage <= 0 {
			vb.Fieldf(field, "baseTonnage must be positive, got %d", class.BaseTonnage)
		}
		if class.BaseSlots < 0 {
			vb.Fieldf(field, "baseSlots cannot be negative, got %d", class.BaseSlots)
		}
		classes[class.Name] = true
	}

	seen := make(map[string]bool, len(c.Mobility))
	for i, m := range c.Mobility {
		field := fmt.Sprintf("mobility[%d]", i)
		checkID(vb, field, m.ID, seen)
		for _, name := range m.ClassApplicability {
			if !classes[name] {
				vb.Fieldf(field, "unknown class %q in classApplicability", name)
			}
		}
	}

	seen = make(map[string]bool, len(c.Weapons))
	for i, w := range c.Weapons {
		field := fmt.Sprintf("weapons[%d]", i)
		checkID(vb, field, w.ID, seen)
		if w.Tonnage.Kind == hev.ValueNone {
			vb.Fieldf(field, "weapon %s has no tonnage", w.ID)
		}
		checkTraits(vb, field, w.Traits)
	}

	seen = make(map[string]bool, len(c.Upgrades))
	for i, u := range c.Upgrades {
		field := fmt.Sprintf("upgrades[%d]", i)
		checkID(vb, field, u.ID, seen)
		if u.Tonnage.Kind == hev.ValueNone {
			vb.Fieldf(field, "upgrade %s has no tonnage", u.ID)
		}
		if u.AllowedClasses != nil && len(u.AllowedClasses) == 0 {
			vb.Fieldf(field, "upgrade %s has an empty allowedClasses list; omit it to allow every class", u.ID)
		}
		checkTraits(vb, field, u.Traits)
		for _, name := range u.AllowedClasses {
			if !classes[name] {
				vb.Fieldf(field, "unknown class %q in allowedClasses", name)
			}
		}
	}

	return vb.Build()
}

func checkID(vb *errors.ValidationBuilder, field, id string, seen map[string]bool) {
	switch {
	case id == "":
		vb.Field(field, "id is required")
	case seen[id]:
		vb.Fieldf(field, "duplicate id %q", id)
	}
	seen[id] = true
}

func checkTraits(vb *errors.ValidationBuilder, field string, traits []hev.TraitUse) {
	for _, t := range traits {
		if t.Value != nil && t.Value.Kind == hev.TraitValueNumber && t.Value.Number < 0 {
			vb.Fieldf(field, "trait %s cannot have a negative value, got %d", t.Name, t.Value.Number)
		}
	}
}

// ClassNames returns the class names in catalog order
func (c *Catalog) ClassNames() []string {
	names := make([]string, 0, len(c.Classes))
	for _, class := range c.Classes {
		names = append(names, class.Name)
	}
	return names
}
