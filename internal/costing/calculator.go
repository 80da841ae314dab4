package costing

import (
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/lookup"
)

// LineItem is one priced weapon or upgrade instance
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Instance int    `json:"instance"`
	Cost     int    `json:"cost"`
}

// Breakdown is the itemised cost of a weapon or upgrade selection. Items keep
// the selection order; Instance counts copies of the same id so far.
type Breakdown struct {
	Items []LineItem
	Total int
	Stale []hev.StaleReference
}

// Config holds the dependencies for the calculator
type Config struct {
	Lookup lookup.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}

	return vb.Build()
}

// Calculator prices selections against the catalog. A selected item is
// re-resolved by id so the catalog definition sets the price; ids that no
// longer resolve cost nothing and are reported as stale.
type Calculator struct {
	lookup lookup.Service
}

// NewCalculator creates a calculator backed by the given lookup service
func NewCalculator(cfg *Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Calculator{lookup: cfg.Lookup}, nil
}

// WeaponCosts prices each weapon instance with progressive pricing
func (c *Calculator) WeaponCosts(weapons []hev.WeaponDefinition, className string) *Breakdown {
	b := &Breakdown{Items: make([]LineItem, 0, len(weapons))}
	seen := make(map[string]int, len(weapons))
	stale := make(map[string]bool)

	for _, selected := range weapons {
		seen[selected.ID]++
		item := LineItem{ID: selected.ID, Name: selected.Name, Instance: seen[selected.ID]}

		def, ok := c.lookup.FindWeaponByID(selected.ID)
		if !ok {
			if !stale[selected.ID] {
				stale[selected.ID] = true
				b.Stale = append(b.Stale, hev.StaleReference{Kind: hev.StaleWeapon, ID: selected.ID, Name: selected.Name})
			}
		} else {
			item.Name = def.Name
			item.Cost = WeaponInstanceCost(def, item.Instance, className)
		}

		b.Items = append(b.Items, item)
		b.Total += item.Cost
	}

	return b
}

// UpgradeCosts prices each upgrade instance at its base cost
func (c *Calculator) UpgradeCosts(upgrades []hev.UpgradeDefinition, className string) *Breakdown {
	b := &Breakdown{Items: make([]LineItem, 0, len(upgrades))}
	seen := make(map[string]int, len(upgrades))
	stale := make(map[string]bool)

	for _, selected := range upgrades {
		seen[selected.ID]++
		item := LineItem{ID: selected.ID, Name: selected.Name, Instance: seen[selected.ID]}

		def, ok := c.lookup.FindUpgradeByID(selected.ID)
		if !ok {
			if !stale[selected.ID] {
				stale[selected.ID] = true
				b.Stale = append(b.Stale, hev.StaleReference{Kind: hev.StaleUpgrade, ID: selected.ID, Name: selected.Name})
			}
		} else {
			item.Name = def.Name
			item.Cost = UpgradeInstanceCost(def, className)
		}

		b.Items = append(b.Items, item)
		b.Total += item.Cost
	}

	return b
}
