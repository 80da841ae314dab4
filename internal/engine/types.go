package engine

import (
	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

// BuildUnitInput is the player's selection
type BuildUnitInput struct {
	Selection *unit.BuildInput
}

// BuildUnitOutput is the built unit with its validation result
type BuildUnitOutput struct {
	Unit         *hev.UnitConfiguration
	Validation   *validator.Result
	WeaponCosts  *costing.Breakdown
	UpgradeCosts *costing.Breakdown
	Stale        []hev.StaleReference
}

// ValidateUnitInput holds a built unit
type ValidateUnitInput struct {
	Unit *hev.UnitConfiguration
}

// ValidateUnitOutput is the validation result
type ValidateUnitOutput struct {
	Validation *validator.Result
}

// ListOptionsInput names the class to list options for
type ListOptionsInput struct {
	ClassName string
}

// ListOptionsOutput holds the catalog entries available to the class
type ListOptionsOutput struct {
	Class    hev.ChassisClass
	Mobility []hev.MobilitySystem
	Weapons  []hev.WeaponDefinition
	Upgrades []hev.UpgradeDefinition
}
