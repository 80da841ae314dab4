// Package generator builds random legal units for quick play. Every pick is
// a dice roll, so a seeded or scripted roller reproduces a loadout.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

// DefaultMaxRolls bounds the item rolls of one generation
const DefaultMaxRolls = 24

// Service generates units
type Service interface {
	// Generate returns a unit that builds and validates. Class and mobility
	// are rolled when the input leaves them empty.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput optionally fixes the class, mobility and name
type GenerateInput struct {
	UnitName   string
	ClassName  string
	MobilityID string
}

// GenerateOutput is the generated unit
type GenerateOutput struct {
	Unit       *hev.UnitConfiguration
	Validation *validator.Result
	// Rolls counts the item rolls spent, including rejected picks
	Rolls int
}

// Config holds the generator's dependencies. Roller defaults to
// dice.DefaultRoller and MaxRolls to DefaultMaxRolls.
type Config struct {
	Engine   engine.Engine
	Roller   dice.Roller
	MaxRolls int
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.MaxRolls < 0 {
		vb.Field("MaxRolls", "must not be negative")
	}

	return vb.Build()
}

type generator struct {
	engine   engine.Engine
	roller   dice.Roller
	maxRolls int
	logger   *slog.Logger
}

// New creates a generator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	g := &generator{
		engine:   cfg.Engine,
		roller:   cfg.Roller,
		maxRolls: cfg.MaxRolls,
		logger:   cfg.Logger,
	}
	if g.roller == nil {
		g.roller = dice.DefaultRoller
	}
	if g.maxRolls == 0 {
		g.maxRolls = DefaultMaxRolls
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g, nil
}

func (g *generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		input = &GenerateInput{}
	}

	className, err := g.pickClass(input.ClassName)
	if err != nil {
		return nil, err
	}

	options, err := g.engine.ListOptions(ctx, &engine.ListOptionsInput{ClassName: className})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list options for %s", className)
	}

	mobility, err := g.pickMobility(options, input.MobilityID)
	if err != nil {
		return nil, err
	}

	sel := newSelection(options.Class, mobility)
	rolls := 0
	pool := len(options.Weapons) + len(options.Upgrades)
	for rolls < g.maxRolls && pool > 0 && sel.slotsLeft() > 0 {
		n, err := g.roll(pool)
		if err != nil {
			return nil, err
		}
		rolls++

		if n <= len(options.Weapons) {
			sel.tryWeapon(options.Weapons[n-1])
		} else {
			sel.tryUpgrade(options.Upgrades[n-1-len(options.Weapons)])
		}
	}

	name := input.UnitName
	if name == "" {
		name = fmt.Sprintf("%s Quick Build", className)
	}

	built, err := g.engine.BuildUnit(ctx, &engine.BuildUnitInput{Selection: &unit.BuildInput{
		UnitName:              name,
		ClassName:             className,
		MobilityID:            mobility.ID,
		ArmorModification:     hev.ModificationStandard,
		StructureModification: hev.ModificationStandard,
		Weapons:               sel.weapons,
		Upgrades:              sel.upgrades,
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build generated unit")
	}
	if !built.Validation.IsValid {
		return nil, errors.Internalf("generated unit is not valid: %v", built.Validation.Errors)
	}

	g.logger.DebugContext(ctx, "generated unit",
		"unit_id", built.Unit.ID,
		"class", className,
		"mobility", mobility.ID,
		"rolls", rolls,
		"total_tonnage", built.Unit.TotalTonnage,
		"used_slots", built.Unit.UsedSlots)

	return &GenerateOutput{
		Unit:       built.Unit,
		Validation: built.Validation,
		Rolls:      rolls,
	}, nil
}

func (g *generator) pickClass(className string) (string, error) {
	if className != "" {
		return className, nil
	}

	classes := g.engine.Lookup().Classes()
	if len(classes) == 0 {
		return "", errors.FailedPrecondition("catalog has no chassis classes")
	}
	n, err := g.roll(len(classes))
	if err != nil {
		return "", err
	}
	return classes[n-1].Name, nil
}

func (g *generator) pickMobility(options *engine.ListOptionsOutput, mobilityID string) (hev.MobilitySystem, error) {
	if mobilityID != "" {
		for _, m := range options.Mobility {
			if m.ID == mobilityID {
				return m, nil
			}
		}
		return hev.MobilitySystem{}, errors.InvalidArgumentf("mobility system %s is not available for %s",
			mobilityID, options.Class.Name)
	}

	if len(options.Mobility) == 0 {
		return hev.MobilitySystem{}, errors.FailedPreconditionf("no mobility system is available for %s",
			options.Class.Name)
	}
	n, err := g.roll(len(options.Mobility))
	if err != nil {
		return hev.MobilitySystem{}, err
	}
	return options.Mobility[n-1], nil
}

// roll returns a value in [1, size]
func (g *generator) roll(size int) (int, error) {
	n, err := g.roller.Roll(size)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll")
	}
	if n < 1 || n > size {
		return 0, errors.Internalf("roller returned %d for a d%d", n, size)
	}
	return n, nil
}

// selection tracks the budget as items are picked, pricing them the way the
// builder will
type selection struct {
	className  string
	tonnageCap int
	tonnage    int
	maxSlots   int
	weapons    []hev.WeaponDefinition
	upgrades   []hev.UpgradeDefinition
	instances  map[string]int
	upgradeIDs map[string]bool
}

func newSelection(class hev.ChassisClass, mobility hev.MobilitySystem) *selection {
	return &selection{
		className:  class.Name,
		tonnageCap: class.BaseTonnage,
		tonnage: costing.EffectiveValue(class.BaseArmor, hev.ModificationStandard) +
			costing.EffectiveValue(class.BaseStructure, hev.ModificationStandard),
		maxSlots:   class.BaseSlots + mobility.SlotModifier,
		weapons:    []hev.WeaponDefinition{},
		upgrades:   []hev.UpgradeDefinition{},
		instances:  make(map[string]int),
		upgradeIDs: make(map[string]bool),
	}
}

func (s *selection) slotsLeft() int {
	return s.maxSlots - len(s.weapons) - len(s.upgrades)
}

func (s *selection) tryWeapon(w hev.WeaponDefinition) bool {
	cost := costing.WeaponInstanceCost(w, s.instances[w.ID]+1, s.className)
	if s.tonnage+cost > s.tonnageCap {
		return false
	}

	s.tonnage += cost
	s.instances[w.ID]++
	s.weapons = append(s.weapons, hev.WeaponDefinition{ID: w.ID, Name: w.Name})
	return true
}

// tryUpgrade adds an upgrade at most once
func (s *selection) tryUpgrade(u hev.UpgradeDefinition) bool {
	if s.upgradeIDs[u.ID] {
		return false
	}
	cost := costing.UpgradeInstanceCost(u, s.className)
	if s.tonnage+cost > s.tonnageCap {
		return false
	}

	s.tonnage += cost
	s.upgradeIDs[u.ID] = true
	s.upgrades = append(s.upgrades, hev.UpgradeDefinition{ID: u.ID, Name: u.Name})
	return true
}
