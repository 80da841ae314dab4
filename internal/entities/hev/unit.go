package hev

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypeUnit   = "hev_unit"
	EntityTypeRoster = "hev_roster"
)

// SupportAssetTonnage is what a support asset counts toward roster tonnage
// when it lists none of its own
const SupportAssetTonnage = 10

// UnitConfiguration is a unit under edit or stored in a roster. The derived
// fields (EffectiveArmor through MaxSlots) are written only by the
// configuration builder.
//
// A roster entry may instead be a support asset: IsSupportAsset is set, the
// asset is described by AssetType and Details, and TotalTonnage holds what it
// counts toward the roster. Support assets have no class or loadout.
//
// JSON names follow the roster export format, which predates the mobility
// rename and still calls it selectedMotiveType.
type UnitConfiguration struct {
	ID                    string              `json:"id"`
	IsSupportAsset        bool                `json:"isSupportAsset,omitempty"`
	AssetType             string              `json:"type,omitempty"`
	Details               []string            `json:"details,omitempty"`
	UnitName              string              `json:"unitName"`
	SelectedClass         *ChassisClass       `json:"selectedClass"`
	SelectedMobility      *MobilitySystem     `json:"selectedMotiveType"`
	ArmorModification     Modification        `json:"armorModification"`
	StructureModification Modification        `json:"structureModification"`
	SelectedWeapons       []WeaponDefinition  `json:"selectedWeapons"`
	SelectedUpgrades      []UpgradeDefinition `json:"selectedUpgrades"`

	EffectiveArmor     int `json:"effectiveArmor"`
	EffectiveStructure int `json:"effectiveStructure"`
	TotalTonnage       int `json:"totalUnitTonnage"`
	UsedSlots          int `json:"usedSlots"`
	MaxSlots           int `json:"maxSlots"`
}

// GetID returns the unit's ID
func (u *UnitConfiguration) GetID() string {
	return u.ID
}

// GetType returns the entity type for rpg-toolkit
func (u *UnitConfiguration) GetType() string {
	return EntityTypeUnit
}

// ClassName returns the selected class name, or "" when none is selected
func (u *UnitConfiguration) ClassName() string {
	if u.SelectedClass == nil {
		return ""
	}
	return u.SelectedClass.Name
}

// NewSupportAsset creates a support asset roster entry. A tonnage of zero
// or less counts as SupportAssetTonnage.
func NewSupportAsset(id, name, assetType string, details []string, tonnage int) *UnitConfiguration {
	if tonnage <= 0 {
		tonnage = SupportAssetTonnage
	}
	return &UnitConfiguration{
		ID:             id,
		IsSupportAsset: true,
		UnitName:       name,
		AssetType:      assetType,
		Details:        append([]string(nil), details...),
		TotalTonnage:   tonnage,
	}
}

// BaseTonnage is what the entry counts toward its roster: the chassis base
// tonnage of an HE-V, or the listed tonnage of a support asset
func (u *UnitConfiguration) BaseTonnage() int {
	if u.IsSupportAsset {
		if u.TotalTonnage > 0 {
			return u.TotalTonnage
		}
		return SupportAssetTonnage
	}
	if u.SelectedClass == nil {
		return 0
	}
	return u.SelectedClass.BaseTonnage
}

// Clone returns a deep copy so an edit session cannot mutate a stored unit
func (u *UnitConfiguration) Clone() *UnitConfiguration {
	if u == nil {
		return nil
	}

	c := *u
	if u.Details != nil {
		c.Details = append([]string(nil), u.Details...)
	}
	if u.SelectedClass != nil {
		class := *u.SelectedClass
		c.SelectedClass = &class
	}
	c.SelectedMobility = u.SelectedMobility.Clone()

	if u.SelectedWeapons != nil {
		c.SelectedWeapons = make([]WeaponDefinition, len(u.SelectedWeapons))
		for i, w := range u.SelectedWeapons {
			c.SelectedWeapons[i] = w.Clone()
		}
	}
	if u.SelectedUpgrades != nil {
		c.SelectedUpgrades = make([]UpgradeDefinition, len(u.SelectedUpgrades))
		for i, up := range u.SelectedUpgrades {
			c.SelectedUpgrades[i] = up.Clone()
		}
	}
	return &c
}

// RosterVersion is written into exported roster documents
const RosterVersion = "1.0"

// Roster is a named, ordered collection of finished units
type Roster struct {
	ID        string               `json:"id"`
	Name      string               `json:"rosterName"`
	Units     []*UnitConfiguration `json:"roster"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// GetID returns the roster's ID
func (r *Roster) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Roster) GetType() string {
	return EntityTypeRoster
}

// FindUnit returns the index of the unit with the given id, or -1
func (r *Roster) FindUnit(unitID string) int {
	for i, u := range r.Units {
		if u != nil && u.ID == unitID {
			return i
		}
	}
	return -1
}

// TotalBaseTonnage sums the base tonnage of every entry: each HE-V's chassis
// class and each support asset's listed tonnage. This is the figure printed
// on a roster header, not the tonnage spent.
func (r *Roster) TotalBaseTonnage() int {
	total := 0
	for _, u := range r.Units {
		if u != nil {
			total += u.BaseTonnage()
		}
	}
	return total
}

// HEVCount counts the entries that are not support assets
func (r *Roster) HEVCount() int {
	n := 0
	for _, u := range r.Units {
		if u != nil && !u.IsSupportAsset {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (r *Roster) Clone() *Roster {
	if r == nil {
		return nil
	}
	c := *r
	if r.Units != nil {
		c.Units = make([]*UnitConfiguration, len(r.Units))
		for i, u := range r.Units {
			c.Units[i] = u.Clone()
		}
	}
	return &c
}

// Compile-time check that units and rosters implement core.Entity
var (
	_ core.Entity = (*UnitConfiguration)(nil)
	_ core.Entity = (*Roster)(nil)
)
