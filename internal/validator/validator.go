// Package validator decides whether a built unit, and a roster of units, may
// be fielded. A failed validation is a normal result, never an error.
package validator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// Unit validation messages
const (
	MsgClassRequired     = "chassis class is required"
	MsgMobilityRequired  = "mobility system is required"
	MsgArmorNotPositive  = "armor cannot be zero or negative"
	MsgStructNotPositive = "structure cannot be zero or negative"
)

// Support asset validation messages
const (
	MsgAssetTypeRequired       = "asset type is required"
	MsgAssetTonnageNotPositive = "asset tonnage must be positive"
)

// Result is the outcome of validating one unit. Errors keep check order.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks a built unit against its budgets and required selections.
// Every check runs; the tonnage check is skipped only when there is no class
// to read the budget from. The unit is not modified.
func Validate(u *hev.UnitConfiguration) *Result {
	if u == nil {
		u = &hev.UnitConfiguration{}
	}

	errs := []string{}

	if u.SelectedClass == nil {
		errs = append(errs, MsgClassRequired)
	}
	if u.SelectedMobility == nil {
		errs = append(errs, MsgMobilityRequired)
	}
	if u.EffectiveArmor <= 0 {
		errs = append(errs, MsgArmorNotPositive)
	}
	if u.EffectiveStructure <= 0 {
		errs = append(errs, MsgStructNotPositive)
	}
	if u.SelectedClass != nil && u.TotalTonnage > u.SelectedClass.BaseTonnage {
		errs = append(errs, fmt.Sprintf("tonnage limit exceeded (%d/%d)", u.TotalTonnage, u.SelectedClass.BaseTonnage))
	}
	if u.UsedSlots > u.MaxSlots {
		errs = append(errs, fmt.Sprintf("slot limit exceeded (%d/%d)", u.UsedSlots, u.MaxSlots))
	}
	if u.SelectedClass != nil && u.SelectedMobility != nil && !u.SelectedMobility.AppliesTo(u.SelectedClass.Name) {
		errs = append(errs, fmt.Sprintf("mobility system %s is not available for %s",
			u.SelectedMobility.Name, u.SelectedClass.Name))
	}

	return &Result{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ValidateSupportAsset checks a support asset entry. Assets have no class
// or loadout, so only their type and listed tonnage are checked.
func ValidateSupportAsset(u *hev.UnitConfiguration) *Result {
	if u == nil {
		u = &hev.UnitConfiguration{IsSupportAsset: true}
	}

	errs := []string{}
	if strings.TrimSpace(u.AssetType) == "" {
		errs = append(errs, MsgAssetTypeRequired)
	}
	if u.TotalTonnage <= 0 {
		errs = append(errs, MsgAssetTonnageNotPositive)
	}

	return &Result{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
