// Package lookup indexes a catalog for exact-key access and answers which
// catalog entries a chassis class may use.
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/KirkDiggler/hev-builder/internal/lookup Service

import (
	"github.com/KirkDiggler/hev-builder/internal/catalog"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
)

// Service resolves catalog references. A missing key is reported with
// ok=false and never as an error, since callers routinely probe ids that
// have been retired from the catalog.
type Service interface {
	FindClassByName(name string) (hev.ChassisClass, bool)
	FindMobilityByID(id string) (hev.MobilitySystem, bool)
	FindWeaponByID(id string) (hev.WeaponDefinition, bool)
	FindUpgradeByID(id string) (hev.UpgradeDefinition, bool)
	TraitDefinition(name string) (string, bool)

	// Listings in catalog order, filtered to what className may use
	Classes() []hev.ChassisClass
	MobilityForClass(className string) []hev.MobilitySystem
	WeaponsForClass(className string) []hev.WeaponDefinition
	UpgradesForClass(className string) []hev.UpgradeDefinition
}

// Config holds the dependencies for the lookup service
type Config struct {
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// service keeps one index per table, built once at construction. The catalog
// never changes afterwards so the indexes are safe for concurrent readers.
type service struct {
	catalog  *catalog.Catalog
	classes  map[string]int
	mobility map[string]int
	weapons  map[string]int
	upgrades map[string]int
}

// NewService creates a lookup service over the given catalog
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Catalog
	s := &service{
		catalog:  c,
		classes:  make(map[string]int, len(c.Classes)),
		mobility: make(map[string]int, len(c.Mobility)),
		weapons:  make(map[string]int, len(c.Weapons)),
		upgrades: make(map[string]int, len(c.Upgrades)),
	}
	// First entry wins on duplicate keys; catalog.Validate rejects them anyway.
	for i, class := range c.Classes {
		if _, ok := s.classes[class.Name]; !ok {
			s.classes[class.Name] = i
		}
	}
	for i, m := range c.Mobility {
		if _, ok := s.mobility[m.ID]; !ok {
			s.mobility[m.ID] = i
		}
	}
	for i, w := range c.Weapons {
		if _, ok := s.weapons[w.ID]; !ok {
			s.weapons[w.ID] = i
		}
	}
	for i, u := range c.Upgrades {
		if _, ok := s.upgrades[u.ID]; !ok {
			s.upgrades[u.ID] = i
		}
	}

	return s, nil
}

func (s *service) FindClassByName(name string) (hev.ChassisClass, bool) {
	i, ok := s.classes[name]
	if !ok {
		return hev.ChassisClass{}, false
	}
	return s.catalog.Classes[i], true
}

func (s *service) FindMobilityByID(id string) (hev.MobilitySystem, bool) {
	i, ok := s.mobility[id]
	if !ok {
		return hev.MobilitySystem{}, false
	}
	return *s.catalog.Mobility[i].Clone(), true
}

func (s *service) FindWeaponByID(id string) (hev.WeaponDefinition, bool) {
	i, ok := s.weapons[id]
	if !ok {
		return hev.WeaponDefinition{}, false
	}
	return s.catalog.Weapons[i].Clone(), true
}

func (s *service) FindUpgradeByID(id string) (hev.UpgradeDefinition, bool) {
	i, ok := s.upgrades[id]
	if !ok {
		return hev.UpgradeDefinition{}, false
	}
	return s.catalog.Upgrades[i].Clone(), true
}

func (s *service) TraitDefinition(name string) (string, bool) {
	text, ok := s.catalog.Traits[name]
	return text, ok
}

func (s *service) Classes() []hev.ChassisClass {
	return append([]hev.ChassisClass(nil), s.catalog.Classes...)
}

func (s *service) MobilityForClass(className string) []hev.MobilitySystem {
	return FilterMobilityForClass(s.catalog.Mobility, className)
}

func (s *service) WeaponsForClass(className string) []hev.WeaponDefinition {
	return FilterWeaponsForClass(s.catalog.Weapons, className)
}

func (s *service) UpgradesForClass(className string) []hev.UpgradeDefinition {
	return FilterUpgradesForClass(s.catalog.Upgrades, className)
}
