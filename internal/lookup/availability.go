package lookup

import "github.com/KirkDiggler/hev-builder/internal/entities/hev"

// IsAvailableForClass reports whether className may fit item. The item's
// tonnage must be flat or carry an entry for the class, and when the item
// restricts classes the class must be listed.
func IsAvailableForClass(item hev.Item, className string) bool {
	if !item.ItemTonnage().Covers(className) {
		return false
	}

	allowed := item.ClassRestriction()
	if allowed == nil {
		return true
	}
	for _, name := range allowed {
		if name == className {
			return true
		}
	}
	return false
}

// FilterWeaponsForClass returns the weapons available to className, in order
func FilterWeaponsForClass(weapons []hev.WeaponDefinition, className string) []hev.WeaponDefinition {
	out := make([]hev.WeaponDefinition, 0, len(weapons))
	for _, w := range weapons {
		if IsAvailableForClass(w, className) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// FilterUpgradesForClass returns the upgrades available to className, in order
func FilterUpgradesForClass(upgrades []hev.UpgradeDefinition, className string) []hev.UpgradeDefinition {
	out := make([]hev.UpgradeDefinition, 0, len(upgrades))
	for _, u := range upgrades {
		if IsAvailableForClass(u, className) {
			out = append(out, u.Clone())
		}
	}
	return out
}

// FilterMobilityForClass returns the mobility systems applicable to className
func FilterMobilityForClass(mobility []hev.MobilitySystem, className string) []hev.MobilitySystem {
	out := make([]hev.MobilitySystem, 0, len(mobility))
	for i := range mobility {
		if mobility[i].AppliesTo(className) {
			out = append(out, *mobility[i].Clone())
		}
	}
	return out
}
