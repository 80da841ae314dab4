// Package hev holds the HE-V unit domain types: catalog definitions, the unit
// configuration under edit, and rosters of finished units.
package hev

// Modification is the armor or structure adjustment a player picks
type Modification string

// Modifications
const (
	ModificationStripped   Modification = "stripped"
	ModificationStandard   Modification = "standard"
	ModificationReinforced Modification = "reinforced"
)

// ModificationStep is the point change applied by stripped/reinforced
const ModificationStep = 2

// Modifications lists the allowed modifications in display order
func Modifications() []Modification {
	return []Modification{ModificationStripped, ModificationStandard, ModificationReinforced}
}

// Delta returns the armor/structure point change. Unknown values count as standard.
func (m Modification) Delta() int {
	switch m {
	case ModificationStripped:
		return -ModificationStep
	case ModificationReinforced:
		return ModificationStep
	default:
		return 0
	}
}

// Valid reports whether m is one of the three known modifications
func (m Modification) Valid() bool {
	switch m {
	case ModificationStripped, ModificationStandard, ModificationReinforced:
		return true
	default:
		return false
	}
}

// ChassisClass is a size category fixing a unit's baseline budget and stats
type ChassisClass struct {
	Name          string `yaml:"name" json:"name"`
	BaseTonnage   int    `yaml:"baseTonnage" json:"baseTonnage"`
	BaseSlots     int    `yaml:"baseSlots" json:"baseSlots"`
	BaseArmor     int    `yaml:"baseArmor" json:"baseArmor"`
	BaseStructure int    `yaml:"baseStructure" json:"baseStructure"`
	BaseMovement  int    `yaml:"baseMovement" json:"baseMovement"`
	DefenseRoll   string `yaml:"defenseRoll" json:"defenseRoll"`
	Special       string `yaml:"special,omitempty" json:"special,omitempty"`
}

// MobilitySystem is a locomotion option; it changes the slot budget
type MobilitySystem struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	ClassApplicability []string `yaml:"classApplicability" json:"classApplicability"`
	SlotModifier       int      `yaml:"slotModifier" json:"slotModifier"`
	Description        string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// AppliesTo reports whether the mobility system may be fitted to className
func (m *MobilitySystem) AppliesTo(className string) bool {
	for _, name := range m.ClassApplicability {
		if name == className {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (m *MobilitySystem) Clone() *MobilitySystem {
	if m == nil {
		return nil
	}
	c := *m
	c.ClassApplicability = append([]string(nil), m.ClassApplicability...)
	return &c
}

// WeaponDefinition is a catalog weapon
type WeaponDefinition struct {
	ID            string     `yaml:"id" json:"id"`
	Name          string     `yaml:"name" json:"name"`
	Tonnage       ClassValue `yaml:"tonnage" json:"tonnage"`
	DamageRating  ClassValue `yaml:"damageRating" json:"damageRating"`
	RangeCategory string     `yaml:"rangeCategory" json:"rangeCategory"`
	Traits        []TraitUse `yaml:"traits,omitempty" json:"traits,omitempty"`
}

// Clone returns a deep copy
func (w WeaponDefinition) Clone() WeaponDefinition {
	w.Tonnage = w.Tonnage.Clone()
	w.DamageRating = w.DamageRating.Clone()
	w.Traits = cloneTraits(w.Traits)
	return w
}

// UpgradeDefinition is a catalog upgrade
type UpgradeDefinition struct {
	ID             string     `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	Tonnage        ClassValue `yaml:"tonnage" json:"tonnage"`
	Description    string     `yaml:"description,omitempty" json:"description,omitempty"`
	Type           string     `yaml:"type,omitempty" json:"type,omitempty"`
	AllowedClasses []string   `yaml:"allowedClasses,omitempty" json:"allowedClasses,omitempty"`
	Traits         []TraitUse `yaml:"traits,omitempty" json:"traits,omitempty"`
}

// Clone returns a deep copy
func (u UpgradeDefinition) Clone() UpgradeDefinition {
	u.Tonnage = u.Tonnage.Clone()
	if u.AllowedClasses != nil {
		u.AllowedClasses = append([]string(nil), u.AllowedClasses...)
	}
	u.Traits = cloneTraits(u.Traits)
	return u
}

// Item is the part of a weapon or upgrade that pricing and availability read
type Item interface {
	ItemID() string
	ItemName() string
	ItemTonnage() ClassValue
	// ClassRestriction lists the only classes allowed to fit the item; nil
	// means no restriction beyond the tonnage entries.
	ClassRestriction() []string
}

// ItemID returns the weapon id
func (w WeaponDefinition) ItemID() string { return w.ID }

// ItemName returns the weapon name
func (w WeaponDefinition) ItemName() string { return w.Name }

// ItemTonnage returns the weapon tonnage
func (w WeaponDefinition) ItemTonnage() ClassValue { return w.Tonnage }

// ClassRestriction is always nil for weapons
func (w WeaponDefinition) ClassRestriction() []string { return nil }

// ItemID returns the upgrade id
func (u UpgradeDefinition) ItemID() string { return u.ID }

// ItemName returns the upgrade name
func (u UpgradeDefinition) ItemName() string { return u.Name }

// ItemTonnage returns the upgrade tonnage
func (u UpgradeDefinition) ItemTonnage() ClassValue { return u.Tonnage }

// ClassRestriction returns the upgrade's allowed classes, nil when unrestricted
func (u UpgradeDefinition) ClassRestriction() []string { return u.AllowedClasses }

// StaleKind names the kind of reference that no longer resolves
type StaleKind string

// Stale reference kinds
const (
	StaleWeapon  StaleKind = "weapon"
	StaleUpgrade StaleKind = "upgrade"
)

// StaleReference is a selected weapon or upgrade whose id is no longer in
// the catalog. It is priced at zero and reported, never fatal.
type StaleReference struct {
	Kind StaleKind `json:"kind"`
	ID   string    `json:"id"`
	Name string    `json:"name,omitempty"`
}

func cloneTraits(traits []TraitUse) []TraitUse {
	if traits == nil {
		return nil
	}
	out := make([]TraitUse, len(traits))
	for i, t := range traits {
		out[i] = t.Clone()
	}
	return out
}
