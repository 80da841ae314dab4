package unit

import (
	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// BuildInput is the player's raw selection. Weapons and upgrades are
// references: only ID is required, Name is kept for reporting stale entries.
type BuildInput struct {
	UnitName              string
	ClassName             string
	MobilityID            string
	ArmorModification     hev.Modification
	StructureModification hev.Modification
	Weapons               []hev.WeaponDefinition
	Upgrades              []hev.UpgradeDefinition

	// ExistingID is reused on the edit path; empty means a new unit
	ExistingID string
}

// BuildOutput is a fully derived unit plus its cost breakdown
type BuildOutput struct {
	Unit         *hev.UnitConfiguration
	WeaponCosts  *costing.Breakdown
	UpgradeCosts *costing.Breakdown
	// Stale lists weapon and upgrade ids that no longer resolve. They stay on
	// the unit, cost nothing, and never fail the build.
	Stale []hev.StaleReference
}

// WeaponRefs turns weapon ids into selection references
func WeaponRefs(ids ...string) []hev.WeaponDefinition {
	out := make([]hev.WeaponDefinition, 0, len(ids))
	for _, id := range ids {
		out = append(out, hev.WeaponDefinition{ID: id})
	}
	return out
}

// UpgradeRefs turns upgrade ids into selection references
func UpgradeRefs(ids ...string) []hev.UpgradeDefinition {
	out := make([]hev.UpgradeDefinition, 0, len(ids))
	for _, id := range ids {
		out = append(out, hev.UpgradeDefinition{ID: id})
	}
	return out
}

// InputFromUnit returns the selection that rebuilds u, keeping its id. The
// slices are deep copies, so editing the input leaves u untouched.
func InputFromUnit(u *hev.UnitConfiguration) *BuildInput {
	c := u.Clone()
	in := &BuildInput{
		UnitName:              c.UnitName,
		ClassName:             c.ClassName(),
		ArmorModification:     c.ArmorModification,
		StructureModification: c.StructureModification,
		Weapons:               c.SelectedWeapons,
		Upgrades:              c.SelectedUpgrades,
		ExistingID:            c.ID,
	}
	if c.SelectedMobility != nil {
		in.MobilityID = c.SelectedMobility.ID
	}
	return in
}
