package validator

import (
	"fmt"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// MsgRosterEmpty is reported for a roster with no units
const MsgRosterEmpty = "roster is empty"

// RosterRules are the composition limits of a game
type RosterRules struct {
	// MinTonnage is the base tonnage a force should reach; falling short
	// is a warning
	MinTonnage int
	// MinUnits is the number of HE-Vs a force must field; support assets
	// do not count
	MinUnits int
}

// RosterResult is the outcome of validating a roster
type RosterResult struct {
	IsValid          bool     `json:"isValid"`
	Errors           []string `json:"errors"`
	Warnings         []string `json:"warnings"`
	TotalBaseTonnage int      `json:"totalBaseTonnage"`
}

// ValidateRoster checks roster composition. Tonnage is the sum of each HE-V's
// chassis base tonnage and each support asset's listed tonnage. Every entry
// is also validated on its own, so a roster holding an illegal unit is
// invalid.
func ValidateRoster(units []*hev.UnitConfiguration, rules RosterRules) *RosterResult {
	res := &RosterResult{Errors: []string{}, Warnings: []string{}}

	if len(units) == 0 {
		res.Errors = append(res.Errors, MsgRosterEmpty)
		return res
	}

	roster := &hev.Roster{Units: units}
	res.TotalBaseTonnage = roster.TotalBaseTonnage()

	if res.TotalBaseTonnage < rules.MinTonnage {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("roster is below minimum tonnage (%d/%d)", res.TotalBaseTonnage, rules.MinTonnage))
	}
	if hevs := roster.HEVCount(); hevs < rules.MinUnits {
		res.Errors = append(res.Errors, fmt.Sprintf("not enough HE-V units (%d/%d)", hevs, rules.MinUnits))
	}

	for i, u := range units {
		var unitRes *Result
		if u != nil && u.IsSupportAsset {
			unitRes = ValidateSupportAsset(u)
		} else {
			unitRes = Validate(u)
		}
		if unitRes.IsValid {
			continue
		}
		label := fmt.Sprintf("unit %d", i+1)
		switch {
		case u != nil && u.UnitName != "":
			label = u.UnitName
		case u != nil && u.AssetType != "":
			label = u.AssetType
		}
		for _, msg := range unitRes.Errors {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", label, msg))
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}
