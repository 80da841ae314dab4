package roster

import (
	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

// CreateRosterInput names a new roster
type CreateRosterInput struct {
	Name string
}

// CreateRosterOutput holds the created roster
type CreateRosterOutput struct {
	Roster *hev.Roster
}

// GetRosterInput identifies a roster
type GetRosterInput struct {
	RosterID string
}

// GetRosterOutput holds the roster
type GetRosterOutput struct {
	Roster *hev.Roster
}

// RenameRosterInput renames a roster
type RenameRosterInput struct {
	RosterID string
	Name     string
}

// RenameRosterOutput holds the renamed roster
type RenameRosterOutput struct {
	Roster *hev.Roster
}

// DeleteRosterInput identifies a roster to delete
type DeleteRosterInput struct {
	RosterID string
}

// DeleteRosterOutput is empty
type DeleteRosterOutput struct{}

// ListRostersInput is empty
type ListRostersInput struct{}

// ListRostersOutput holds every roster, oldest first
type ListRostersOutput struct {
	Rosters []*hev.Roster
}

// AddUnitInput is a selection to build and append to a roster
type AddUnitInput struct {
	RosterID  string
	Selection *unit.BuildInput
}

// AddUnitOutput holds the stored unit and its roster
type AddUnitOutput struct {
	Roster       *hev.Roster
	Unit         *hev.UnitConfiguration
	WeaponCosts  *costing.Breakdown
	UpgradeCosts *costing.Breakdown
	Stale        []hev.StaleReference
}

// UpdateUnitInput replaces a unit in place with a rebuilt selection
type UpdateUnitInput struct {
	RosterID  string
	UnitID    string
	Selection *unit.BuildInput
}

// UpdateUnitOutput holds the stored unit and its roster
type UpdateUnitOutput struct {
	Roster *hev.Roster
	Unit   *hev.UnitConfiguration
	Stale  []hev.StaleReference
}

// EditUnitInput identifies a unit to open for editing
type EditUnitInput struct {
	RosterID string
	UnitID   string
}

// EditUnitOutput is a detached copy of a stored unit and the selection that
// rebuilds it. Changing either leaves the roster untouched until UpdateUnit.
type EditUnitOutput struct {
	Unit      *hev.UnitConfiguration
	Selection *unit.BuildInput
}

// AddSupportAssetInput describes a support asset. Tonnage of zero counts as
// hev.SupportAssetTonnage.
type AddSupportAssetInput struct {
	RosterID  string
	Name      string
	AssetType string
	Details   []string
	Tonnage   int
}

// AddSupportAssetOutput holds the stored asset and its roster
type AddSupportAssetOutput struct {
	Roster *hev.Roster
	Asset  *hev.UnitConfiguration
}

// RemoveUnitInput identifies a unit to remove
type RemoveUnitInput struct {
	RosterID string
	UnitID   string
}

// RemoveUnitOutput holds the roster after removal
type RemoveUnitOutput struct {
	Roster *hev.Roster
}

// ReorderUnitsInput gives the new unit order; it must list every unit once
type ReorderUnitsInput struct {
	RosterID string
	UnitIDs  []string
}

// ReorderUnitsOutput holds the reordered roster
type ReorderUnitsOutput struct {
	Roster *hev.Roster
}

// ValidateRosterInput names a roster and the limits to check it against
type ValidateRosterInput struct {
	RosterID string
	Rules    validator.RosterRules
}

// ValidateRosterOutput holds the result
type ValidateRosterOutput struct {
	Result *validator.RosterResult
}

// ExportRosterInput identifies a roster to export
type ExportRosterInput struct {
	RosterID string
}

// ExportRosterOutput holds the encoded export document
type ExportRosterOutput struct {
	Document []byte
}

// ImportRosterInput holds an export document. Name overrides the document's
// roster name when set.
type ImportRosterInput struct {
	Document []byte
	Name     string
}

// ImportRosterOutput holds the new roster and what was dropped on the way
type ImportRosterOutput struct {
	Roster *hev.Roster
	// SupportAssets counts the imported entries that are support assets
	SupportAssets int
	// Skipped counts entries that were malformed, duplicated, named a
	// chassis class the catalog no longer has, or were support assets
	// without a type
	Skipped int
	Stale   []hev.StaleReference
}
