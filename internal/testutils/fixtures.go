package testutils

import (
	"time"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// Fixture defaults
const (
	TestRosterName = "Iron Lance"
	TestUnitName   = "Warden"
)

// TestTime is a fixed timestamp for fixtures
var TestTime = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// CreateTestUnit returns a legal Light unit with one auto-cannon on standard
// biped legs, derived fields filled in as the builder would.
func CreateTestUnit(id string) *hev.UnitConfiguration {
	return &hev.UnitConfiguration{
		ID:       id,
		UnitName: TestUnitName,
		SelectedClass: &hev.ChassisClass{
			Name:          "Light",
			BaseTonnage:   20,
			BaseSlots:     4,
			BaseArmor:     6,
			BaseStructure: 4,
			BaseMovement:  12,
			DefenseRoll:   "d6",
		},
		SelectedMobility: &hev.MobilitySystem{
			ID:                 "m1",
			Name:               "Standard Biped",
			ClassApplicability: []string{"Light", "Medium", "Heavy", "Ultra-Heavy"},
		},
		ArmorModification:     hev.ModificationStandard,
		StructureModification: hev.ModificationStandard,
		SelectedWeapons: []hev.WeaponDefinition{
			{
				ID:            "w_autocannon",
				Name:          "Auto-Cannon",
				Tonnage:       hev.PerClass(map[string]int{"Light": 3, "Medium": 4, "Heavy": 5, "Ultra-Heavy": 6}),
				DamageRating:  hev.PerClass(map[string]int{"Light": 3, "Medium": 4, "Heavy": 5, "Ultra-Heavy": 6}),
				RangeCategory: "Medium",
				Traits:        []hev.TraitUse{hev.NumberTrait("AP", 1)},
			},
		},
		SelectedUpgrades:   []hev.UpgradeDefinition{},
		EffectiveArmor:     6,
		EffectiveStructure: 4,
		TotalTonnage:       13,
		UsedSlots:          1,
		MaxSlots:           4,
	}
}

// CreateTestRoster returns a roster holding the given units
func CreateTestRoster(id string, units ...*hev.UnitConfiguration) *hev.Roster {
	if units == nil {
		units = []*hev.UnitConfiguration{}
	}
	return &hev.Roster{
		ID:        id,
		Name:      TestRosterName,
		Units:     units,
		CreatedAt: TestTime,
		UpdatedAt: TestTime,
	}
}
