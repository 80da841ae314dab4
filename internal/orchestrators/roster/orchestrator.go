// Package roster manages named rosters of finished units: adding, editing,
// ordering and validating units, and moving rosters in and out of the export
// document format.
package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
	"github.com/KirkDiggler/hev-builder/internal/pkg/clock"
	"github.com/KirkDiggler/hev-builder/internal/pkg/idgen"
	rosterrepo "github.com/KirkDiggler/hev-builder/internal/repositories/roster"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

// DefaultRosterName is used when an import carries no usable name
const DefaultRosterName = "Imported Roster"

// MetaValidationErrors is the error meta key holding a rejected unit's
// validation messages
const MetaValidationErrors = "validation_errors"

// Service manages rosters
type Service interface {
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error)
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	RenameRoster(ctx context.Context, input *RenameRosterInput) (*RenameRosterOutput, error)
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error)
	ListRosters(ctx context.Context, input *ListRostersInput) (*ListRostersOutput, error)

	// AddUnit builds the selection as a new unit and appends it. A unit that
	// fails validation is rejected with FailedPrecondition.
	AddUnit(ctx context.Context, input *AddUnitInput) (*AddUnitOutput, error)
	// UpdateUnit rebuilds a stored unit in place, keeping its id and position
	UpdateUnit(ctx context.Context, input *UpdateUnitInput) (*UpdateUnitOutput, error)
	EditUnit(ctx context.Context, input *EditUnitInput) (*EditUnitOutput, error)
	// AddSupportAsset appends a support asset. Assets count toward roster
	// tonnage but not toward the HE-V minimum.
	AddSupportAsset(ctx context.Context, input *AddSupportAssetInput) (*AddSupportAssetOutput, error)
	RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error)
	ReorderUnits(ctx context.Context, input *ReorderUnitsInput) (*ReorderUnitsOutput, error)

	ValidateRoster(ctx context.Context, input *ValidateRosterInput) (*ValidateRosterOutput, error)
	ExportRoster(ctx context.Context, input *ExportRosterInput) (*ExportRosterOutput, error)
	// ImportRoster stores a document as a new roster. Every unit is rebuilt
	// against the current catalog.
	ImportRoster(ctx context.Context, input *ImportRosterInput) (*ImportRosterOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  rosterrepo.Repository
	IDGenerator idgen.Generator

	// AssetIDGenerator names support assets; defaults to "asset_<uuid>"
	AssetIDGenerator idgen.Generator
	Clock            clock.Clock
	Logger           *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	repo       rosterrepo.Repository
	idGen      idgen.Generator
	assetIDGen idgen.Generator
	clock      clock.Clock
	logger     *slog.Logger
}

// NewOrchestrator creates a new roster orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	assetIDGen := cfg.AssetIDGenerator
	if assetIDGen == nil {
		assetIDGen = idgen.NewUUID("asset")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		engine:     cfg.Engine,
		repo:       cfg.Repository,
		idGen:      cfg.IDGenerator,
		assetIDGen: assetIDGen,
		clock:      clk,
		logger:     logger,
	}, nil
}

func (o *orchestrator) CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("roster name is required")
	}

	now := o.clock.Now()
	r := &hev.Roster{
		ID:        o.idGen.Generate(),
		Name:      input.Name,
		Units:     []*hev.UnitConfiguration{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.repo.Save(ctx, rosterrepo.SaveInput{Roster: r}); err != nil {
		return nil, errors.Wrap(err, "failed to save roster")
	}

	o.logger.Info("created roster", "roster_id", r.ID, "name", r.Name)

	return &CreateRosterOutput{Roster: r}, nil
}

func (o *orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	r, err := o.load(ctx, input.rosterID())
	if err != nil {
		return nil, err
	}
	return &GetRosterOutput{Roster: r}, nil
}

func (o *orchestrator) RenameRoster(ctx context.Context, input *RenameRosterInput) (*RenameRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("roster name is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	r.Name = input.Name
	if err := o.save(ctx, r); err != nil {
		return nil, err
	}

	return &RenameRosterOutput{Roster: r}, nil
}

func (o *orchestrator) DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	if _, err := o.repo.Delete(ctx, rosterrepo.DeleteInput{ID: input.RosterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster %s", input.RosterID)
	}

	o.logger.Info("deleted roster", "roster_id", input.RosterID)

	return &DeleteRosterOutput{}, nil
}

func (o *orchestrator) ListRosters(ctx context.Context, _ *ListRostersInput) (*ListRostersOutput, error) {
	out, err := o.repo.List(ctx, rosterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rosters")
	}
	return &ListRostersOutput{Rosters: out.Rosters}, nil
}

func (o *orchestrator) AddUnit(ctx context.Context, input *AddUnitInput) (*AddUnitOutput, error) {
	if input == nil || input.Selection == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	selection := *input.Selection
	selection.ExistingID = ""

	built, err := o.buildValid(ctx, &selection)
	if err != nil {
		return nil, err
	}

	r.Units = append(r.Units, built.Unit.Clone())
	if err := o.save(ctx, r); err != nil {
		return nil, err
	}

	o.logger.Info("added unit to roster",
		"roster_id", r.ID,
		"unit_id", built.Unit.ID,
		"class", built.Unit.ClassName(),
		"tonnage", built.Unit.TotalTonnage)

	return &AddUnitOutput{
		Roster:       r,
		Unit:         built.Unit,
		WeaponCosts:  built.WeaponCosts,
		UpgradeCosts: built.UpgradeCosts,
		Stale:        built.Stale,
	}, nil
}

func (o *orchestrator) UpdateUnit(ctx context.Context, input *UpdateUnitInput) (*UpdateUnitOutput, error) {
	if input == nil || input.Selection == nil {
		return nil, errors.InvalidArgument("selection is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	idx := r.FindUnit(input.UnitID)
	if idx < 0 {
		return nil, errors.NotFoundf("unit %s not found in roster %s", input.UnitID, r.ID)
	}

	if r.Units[idx].IsSupportAsset {
		return nil, errors.FailedPreconditionf("%s is a support asset and has no build to update", input.UnitID)
	}

	selection := *input.Selection
	selection.ExistingID = input.UnitID

	built, err := o.buildValid(ctx, &selection)
	if err != nil {
		return nil, err
	}

	r.Units[idx] = built.Unit.Clone()
	if err := o.save(ctx, r); err != nil {
		return nil, err
	}

	o.logger.Info("updated unit in roster", "roster_id", r.ID, "unit_id", input.UnitID)

	return &UpdateUnitOutput{Roster: r, Unit: built.Unit, Stale: built.Stale}, nil
}

func (o *orchestrator) EditUnit(ctx context.Context, input *EditUnitInput) (*EditUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	idx := r.FindUnit(input.UnitID)
	if idx < 0 {
		return nil, errors.NotFoundf("unit %s not found in roster %s", input.UnitID, r.ID)
	}

	stored := r.Units[idx]
	if stored.IsSupportAsset {
		return nil, errors.FailedPreconditionf("%s is a support asset and has no build to edit", input.UnitID)
	}
	return &EditUnitOutput{
		Unit:      stored.Clone(),
		Selection: unit.InputFromUnit(stored),
	}, nil
}

func (o *orchestrator) AddSupportAsset(ctx context.Context, input *AddSupportAssetInput) (*AddSupportAssetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	asset := hev.NewSupportAsset(o.assetIDGen.Generate(), input.Name, input.AssetType, input.Details, input.Tonnage)
	if res := validator.ValidateSupportAsset(asset); !res.IsValid {
		return nil, errors.InvalidArgument("support asset is not valid").
			WithMeta(MetaValidationErrors, res.Errors)
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	r.Units = append(r.Units, asset.Clone())
	if err := o.save(ctx, r); err != nil {
		return nil, err
	}

	o.logger.Info("added support asset to roster",
		"roster_id", r.ID,
		"asset_id", asset.ID,
		"type", asset.AssetType,
		"tonnage", asset.TotalTonnage)

	return &AddSupportAssetOutput{Roster: r, Asset: asset}, nil
}

func (o *orchestrator) RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	idx := r.FindUnit(input.UnitID)
	if idx < 0 {
		return nil, errors.NotFoundf("unit %s not found in roster %s", input.UnitID, r.ID)
	}

	r.Units = append(r.Units[:idx], r.Units[idx+1:]...)
	if err := o.save(ctx, r); err != nil {
		return nil, err
	}

	o.logger.Info("removed unit from roster", "roster_id", r.ID, "unit_id", input.UnitID)

	return &RemoveUnitOutput{Roster: r}, nil
}

func (o *orchestrator) ReorderUnits(ctx context.Context, input *ReorderUnitsInput) (*ReorderUnitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	if len(input.UnitIDs) != len(r.Units) {
		return nil, errors.InvalidArgumentf("reorder lists %d units, roster has %d", len(input.UnitIDs), len(r.Units))
	}

	reordered := make([]*hev.UnitConfiguration, 0, len(r.Units))
	seen := make(map[string]bool, len(input.UnitIDs))
	for _, id := range input.UnitIDs {
		if seen[id] {
			return nil, errors.InvalidArgumentf("unit %s listed more than once", id)
		}
		seen[id] = true

		idx := r.FindUnit(id)
		if idx < 0 {
			return nil, errors.InvalidArgumentf("unit %s is not in roster %s", id, r.ID)
		}
		reordered = append(reordered, r.Units[idx])
	}

	r.Units = reordered
	if err := o.save(ctx, r); err != nil {
		return nil, err
	}

	return &ReorderUnitsOutput{Roster: r}, nil
}

func (o *orchestrator) ValidateRoster(ctx context.Context, input *ValidateRosterInput) (*ValidateRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.load(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	return &ValidateRosterOutput{Result: validator.ValidateRoster(r.Units, input.Rules)}, nil
}

func (o *orchestrator) ExportRoster(ctx context.Context, input *ExportRosterInput) (*ExportRosterOutput, error) {
	r, err := o.load(ctx, input.rosterID())
	if err != nil {
		return nil, err
	}

	data, err := EncodeDocument(r)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("exported roster", "roster_id", r.ID, "units", len(r.Units))

	return &ExportRosterOutput{Document: data}, nil
}

func (o *orchestrator) ImportRoster(ctx context.Context, input *ImportRosterInput) (*ImportRosterOutput, error) {
	if input == nil || len(input.Document) == 0 {
		return nil, errors.InvalidArgument("import data is required")
	}

	doc, skipped, err := DecodeDocument(input.Document)
	if err != nil {
		return nil, err
	}
	if doc.Version != "" && doc.Version != hev.RosterVersion {
		o.logger.Warn("importing roster from a different format version",
			"version", doc.Version,
			"expected", hev.RosterVersion)
	}

	units := make([]*hev.UnitConfiguration, 0, len(doc.Roster))
	var stale []hev.StaleReference
	assets := 0
	seen := make(map[string]bool, len(doc.Roster))

	for _, imported := range doc.Roster {
		if imported.ID != "" && seen[imported.ID] {
			o.logger.Warn("skipping duplicate unit on import", "unit_id", imported.ID)
			skipped++
			continue
		}

		if imported.IsSupportAsset {
			asset := hev.NewSupportAsset(imported.ID, imported.UnitName, imported.AssetType, imported.Details, imported.TotalTonnage)
			if asset.ID == "" {
				asset.ID = o.assetIDGen.Generate()
			}
			if res := validator.ValidateSupportAsset(asset); !res.IsValid {
				o.logger.Warn("skipping support asset on import",
					"asset_id", imported.ID,
					"errors", res.Errors)
				skipped++
				continue
			}
			seen[asset.ID] = true
			units = append(units, asset)
			assets++
			continue
		}

		built, err := o.engine.BuildUnit(ctx, &engine.BuildUnitInput{Selection: unit.InputFromUnit(imported)})
		if err != nil {
			if errors.IsMissingSelection(err) {
				o.logger.Warn("skipping unit on import",
					"unit_id", imported.ID,
					"reason", errors.GetMessage(err))
				skipped++
				continue
			}
			return nil, errors.Wrapf(err, "failed to rebuild unit %s", imported.ID)
		}

		seen[built.Unit.ID] = true
		units = append(units, built.Unit)
		stale = append(stale, built.Stale...)
	}

	if len(units) == 0 {
		return nil, errors.InvalidArgument("no valid units found in import data")
	}

	name := input.Name
	if name == "" {
		name = doc.RosterName
	}
	if name == "" {
		name = DefaultRosterName
	}

	now := o.clock.Now()
	r := &hev.Roster{
		ID:        o.idGen.Generate(),
		Name:      name,
		Units:     units,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.repo.Save(ctx, rosterrepo.SaveInput{Roster: r}); err != nil {
		return nil, errors.Wrap(err, "failed to save imported roster")
	}

	o.logger.Info("imported roster",
		"roster_id", r.ID,
		"units", len(units),
		"support_assets", assets,
		"skipped", skipped,
		"stale", len(stale))

	return &ImportRosterOutput{Roster: r, SupportAssets: assets, Skipped: skipped, Stale: stale}, nil
}

// buildValid builds a selection and rejects units that fail validation
func (o *orchestrator) buildValid(ctx context.Context, selection *unit.BuildInput) (*engine.BuildUnitOutput, error) {
	built, err := o.engine.BuildUnit(ctx, &engine.BuildUnitInput{Selection: selection})
	if err != nil {
		return nil, err
	}

	if !built.Validation.IsValid {
		return nil, errors.FailedPrecondition("unit configuration is not valid").
			WithMeta(MetaValidationErrors, built.Validation.Errors)
	}

	return built, nil
}

func (o *orchestrator) load(ctx context.Context, rosterID string) (*hev.Roster, error) {
	if rosterID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	out, err := o.repo.Get(ctx, rosterrepo.GetInput{ID: rosterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roster %s", rosterID)
	}
	return out.Roster, nil
}

func (o *orchestrator) save(ctx context.Context, r *hev.Roster) error {
	r.UpdatedAt = o.clock.Now()
	if _, err := o.repo.Save(ctx, rosterrepo.SaveInput{Roster: r}); err != nil {
		o.logger.Error("failed to save roster", "roster_id", r.ID, "error", err)
		return errors.Wrapf(err, "failed to save roster %s", r.ID)
	}
	return nil
}

func (in *GetRosterInput) rosterID() string {
	if in == nil {
		return ""
	}
	return in.RosterID
}

func (in *ExportRosterInput) rosterID() string {
	if in == nil {
		return ""
	}
	return in.RosterID
}
