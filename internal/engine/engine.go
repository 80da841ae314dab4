package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hev-builder/internal/catalog"
	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/lookup"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
	"github.com/KirkDiggler/hev-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

// DefaultUnitIDPrefix prefixes generated unit ids
const DefaultUnitIDPrefix = "hev"

type engine struct {
	lookup  lookup.Service
	builder unit.Service
}

// Config holds the engine's inputs. IDGenerator defaults to prefixed
// timestamp ids and Logger to slog.Default().
type Config struct {
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// New creates an engine over the given catalog
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewPrefixed(DefaultUnitIDPrefix)
	}

	lookupSvc, err := lookup.NewService(&lookup.Config{Catalog: cfg.Catalog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lookup service")
	}

	calc, err := costing.NewCalculator(&costing.Config{Lookup: lookupSvc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calculator")
	}

	builder, err := unit.NewOrchestrator(&unit.Config{
		Lookup:      lookupSvc,
		Calculator:  calc,
		IDGenerator: idGen,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create unit orchestrator")
	}

	return &engine{
		lookup:  lookupSvc,
		builder: builder,
	}, nil
}

func (e *engine) BuildUnit(ctx context.Context, input *BuildUnitInput) (*BuildUnitOutput, error) {
	if input == nil || input.Selection == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	out, err := e.builder.Build(ctx, input.Selection)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build unit")
	}

	return &BuildUnitOutput{
		Unit:         out.Unit,
		Validation:   validator.Validate(out.Unit),
		WeaponCosts:  out.WeaponCosts,
		UpgradeCosts: out.UpgradeCosts,
		Stale:        out.Stale,
	}, nil
}

func (e *engine) ValidateUnit(_ context.Context, input *ValidateUnitInput) (*ValidateUnitOutput, error) {
	if input == nil || input.Unit == nil {
		return nil, errors.InvalidArgument("unit is required")
	}

	return &ValidateUnitOutput{Validation: validator.Validate(input.Unit)}, nil
}

func (e *engine) ListOptions(_ context.Context, input *ListOptionsInput) (*ListOptionsOutput, error) {
	if input == nil || input.ClassName == "" {
		return nil, errors.InvalidArgument("class name is required")
	}

	class, ok := e.lookup.FindClassByName(input.ClassName)
	if !ok {
		return nil, errors.NotFoundf("chassis class %s not found", input.ClassName)
	}

	return &ListOptionsOutput{
		Class:    class,
		Mobility: e.lookup.MobilityForClass(class.Name),
		Weapons:  e.lookup.WeaponsForClass(class.Name),
		Upgrades: e.lookup.UpgradesForClass(class.Name),
	}, nil
}

func (e *engine) IsAvailableForClass(item hev.Item, className string) bool {
	return lookup.IsAvailableForClass(item, className)
}

func (e *engine) Lookup() lookup.Service {
	return e.lookup
}
