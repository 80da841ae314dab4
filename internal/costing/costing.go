// Package costing prices a unit's equipment in tonnage.
//
// Weapons use progressive pricing: the nth instance of the same weapon id
// on one unit costs its base cost plus n-1. Upgrades always cost their base
// cost. Armor and structure cost their effective point value.
package costing

import (
	"math"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// Structure damage thresholds drawn on the record sheet
const (
	DamageThresholdLight    = 0.25
	DamageThresholdModerate = 0.50
	DamageThresholdHeavy    = 0.75
)

// BaseCost returns the item's tonnage for className, or 0 when the item has
// no entry for the class. Stale data must price, not fail.
func BaseCost(item hev.Item, className string) int {
	n, _ := item.ItemTonnage().For(className)
	return n
}

// WeaponInstanceCost prices the instanceIndex-th (1-based) copy of a weapon.
// Indexes below 1 cost nothing.
func WeaponInstanceCost(weapon hev.Item, instanceIndex int, className string) int {
	if instanceIndex < 1 {
		return 0
	}
	return BaseCost(weapon, className) + instanceIndex - 1
}

// TotalWeaponCost groups weapons by id and sums the progressive cost of each
// group. The first definition seen for an id prices the whole group, so the
// result does not depend on order.
func TotalWeaponCost(weapons []hev.WeaponDefinition, className string) int {
	counts := make(map[string]int, len(weapons))
	defs := make(map[string]hev.WeaponDefinition, len(weapons))
	for _, w := range weapons {
		if _, ok := defs[w.ID]; !ok {
			defs[w.ID] = w
		}
		counts[w.ID]++
	}

	total := 0
	for id, quantity := range counts {
		for i := 1; i <= quantity; i++ {
			total += WeaponInstanceCost(defs[id], i, className)
		}
	}
	return total
}

// UpgradeInstanceCost prices one copy of an upgrade
func UpgradeInstanceCost(upgrade hev.Item, className string) int {
	return BaseCost(upgrade, className)
}

// TotalUpgradeCost sums every upgrade instance at full base cost
func TotalUpgradeCost(upgrades []hev.UpgradeDefinition, className string) int {
	total := 0
	for _, u := range upgrades {
		total += UpgradeInstanceCost(u, className)
	}
	return total
}

// EffectiveValue applies a modification to a base armor or structure value,
// floored at zero
func EffectiveValue(base int, mod hev.Modification) int {
	return max(0, base+mod.Delta())
}

// StructureMarker returns the structure box at which a damage threshold is
// reached: structure - floor(structure*fraction) + 1. Zero structure has no
// markers.
func StructureMarker(structure int, fraction float64) int {
	if structure <= 0 {
		return 0
	}
	return structure - int(math.Floor(float64(structure)*fraction)) + 1
}

// StructureMarkers returns the markers for the light, moderate and heavy
// damage thresholds in that order
func StructureMarkers(structure int) []int {
	return []int{
		StructureMarker(structure, DamageThresholdLight),
		StructureMarker(structure, DamageThresholdModerate),
		StructureMarker(structure, DamageThresholdHeavy),
	}
}
