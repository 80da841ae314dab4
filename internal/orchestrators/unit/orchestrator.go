// Package unit builds unit configurations from a player's selections,
// deriving armor, structure, tonnage and slot figures.
package unit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/lookup"
	"github.com/KirkDiggler/hev-builder/internal/pkg/idgen"
)

// Selection fields reported in MissingSelection errors
const (
	FieldSelectedClass    = "selected_class"
	FieldSelectedMobility = "selected_mobility"
)

// Service builds unit configurations
type Service interface {
	// Build returns a complete unit or a MissingSelection error; it never
	// returns a partial unit.
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)
}

// Config holds the dependencies for the unit orchestrator
type Config struct {
	Lookup      lookup.Service
	Calculator  *costing.Calculator
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	lookup     lookup.Service
	calculator *costing.Calculator
	idGen      idgen.Generator
	logger     *slog.Logger
}

// NewOrchestrator creates a new unit orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		lookup:     cfg.Lookup,
		calculator: cfg.Calculator,
		idGen:      cfg.IDGenerator,
		logger:     logger,
	}, nil
}

func (o *orchestrator) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ClassName == "" {
		return nil, errors.MissingSelection(FieldSelectedClass, "chassis class is required")
	}
	class, ok := o.lookup.FindClassByName(input.ClassName)
	if !ok {
		return nil, errors.MissingSelection(FieldSelectedClass,
			fmt.Sprintf("chassis class %s does not exist", input.ClassName))
	}

	// An absent mobility system still builds; validation reports it.
	var mobility *hev.MobilitySystem
	if input.MobilityID != "" {
		m, ok := o.lookup.FindMobilityByID(input.MobilityID)
		if !ok {
			return nil, errors.MissingSelection(FieldSelectedMobility,
				fmt.Sprintf("mobility system %s does not exist", input.MobilityID))
		}
		mobility = &m
	}

	id := input.ExistingID
	if id == "" {
		id = o.idGen.Generate()
	}

	unit := &hev.UnitConfiguration{
		ID:                    id,
		UnitName:              input.UnitName,
		SelectedClass:         &class,
		SelectedMobility:      mobility,
		ArmorModification:     o.normalize(ctx, id, "armor", input.ArmorModification),
		StructureModification: o.normalize(ctx, id, "structure", input.StructureModification),
		SelectedWeapons:       o.resolveWeapons(input.Weapons),
		SelectedUpgrades:      o.resolveUpgrades(input.Upgrades),
	}

	weaponCosts := o.calculator.WeaponCosts(unit.SelectedWeapons, class.Name)
	upgradeCosts := o.calculator.UpgradeCosts(unit.SelectedUpgrades, class.Name)

	unit.EffectiveArmor = costing.EffectiveValue(class.BaseArmor, unit.ArmorModification)
	unit.EffectiveStructure = costing.EffectiveValue(class.BaseStructure, unit.StructureModification)
	unit.TotalTonnage = unit.EffectiveArmor + unit.EffectiveStructure + weaponCosts.Total + upgradeCosts.Total
	unit.UsedSlots = len(unit.SelectedWeapons) + len(unit.SelectedUpgrades)
	unit.MaxSlots = class.BaseSlots
	if mobility != nil {
		unit.MaxSlots += mobility.SlotModifier
	}

	stale := make([]hev.StaleReference, 0, len(weaponCosts.Stale)+len(upgradeCosts.Stale))
	stale = append(stale, weaponCosts.Stale...)
	stale = append(stale, upgradeCosts.Stale...)
	for _, ref := range stale {
		o.logger.WarnContext(ctx, "stale catalog reference",
			"unit_id", id,
			"kind", ref.Kind,
			"item_id", ref.ID)
	}

	o.logger.DebugContext(ctx, "built unit",
		"unit_id", id,
		"class", class.Name,
		"total_tonnage", unit.TotalTonnage,
		"used_slots", unit.UsedSlots,
		"max_slots", unit.MaxSlots)

	return &BuildOutput{
		Unit:         unit,
		WeaponCosts:  weaponCosts,
		UpgradeCosts: upgradeCosts,
		Stale:        stale,
	}, nil
}

// normalize maps an unknown or empty modification to standard
func (o *orchestrator) normalize(ctx context.Context, unitID, field string, mod hev.Modification) hev.Modification {
	if mod.Valid() {
		return mod
	}
	if mod != "" {
		o.logger.WarnContext(ctx, "unknown modification, using standard",
			"unit_id", unitID,
			"field", field,
			"modification", string(mod))
	}
	return hev.ModificationStandard
}

// resolveWeapons replaces each reference with its catalog definition. Stale
// references are kept as given so they can still be shown and removed.
func (o *orchestrator) resolveWeapons(refs []hev.WeaponDefinition) []hev.WeaponDefinition {
	out := make([]hev.WeaponDefinition, 0, len(refs))
	for _, ref := range refs {
		if def, ok := o.lookup.FindWeaponByID(ref.ID); ok {
			out = append(out, def)
			continue
		}
		out = append(out, ref.Clone())
	}
	return out
}

func (o *orchestrator) resolveUpgrades(refs []hev.UpgradeDefinition) []hev.UpgradeDefinition {
	out := make([]hev.UpgradeDefinition, 0, len(refs))
	for _, ref := range refs {
		if def, ok := o.lookup.FindUpgradeByID(ref.ID); ok {
			out = append(out, def)
			continue
		}
		out = append(out, ref.Clone())
	}
	return out
}
