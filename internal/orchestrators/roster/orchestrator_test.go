package roster_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hev-builder/internal/catalog"
	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/roster"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
	"github.com/KirkDiggler/hev-builder/internal/pkg/clock"
	"github.com/KirkDiggler/hev-builder/internal/pkg/idgen"
	rosterrepo "github.com/KirkDiggler/hev-builder/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/hev-builder/internal/repositories/roster/mock"
	"github.com/KirkDiggler/hev-builder/internal/testutils"
	"github.com/KirkDiggler/hev-builder/internal/testutils/mocks"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	logs         *bytes.Buffer
	engine       engine.Engine
	repo         rosterrepo.Repository
	clock        *clock.Fixed
	orchestrator roster.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng, err := engine.New(&engine.Config{
		Catalog:     catalog.MustDefault(),
		IDGenerator: idgen.NewSequential("hev"),
		Logger:      logger,
	})
	s.Require().NoError(err)
	s.engine = eng

	s.repo = rosterrepo.NewInMemory()
	s.clock = &clock.Fixed{At: testutils.TestTime}

	s.orchestrator, err = roster.NewOrchestrator(&roster.Config{
		Engine:           s.engine,
		Repository:       s.repo,
		IDGenerator:      idgen.NewSequential("roster"),
		AssetIDGenerator: idgen.NewSequential("asset"),
		Clock:            s.clock,
		Logger:           logger,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) lightSelection(name string, weapons ...string) *unit.BuildInput {
	return &unit.BuildInput{
		UnitName:   name,
		ClassName:  "Light",
		MobilityID: "m1",
		Weapons:    unit.WeaponRefs(weapons...),
	}
}

func (s *OrchestratorTestSuite) createRoster() *hev.Roster {
	out, err := s.orchestrator.CreateRoster(s.ctx, &roster.CreateRosterInput{Name: testutils.TestRosterName})
	s.Require().NoError(err)
	return out.Roster
}

func (s *OrchestratorTestSuite) addUnit(rosterID, name string, weapons ...string) *hev.UnitConfiguration {
	out, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID:  rosterID,
		Selection: s.lightSelection(name, weapons...),
	})
	s.Require().NoError(err)
	return out.Unit
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name string
		cfg  *roster.Config
	}{
		{
			name: "missing engine",
			cfg:  &roster.Config{Repository: s.repo, IDGenerator: idgen.NewSequential("r")},
		},
		{
			name: "missing repository",
			cfg:  &roster.Config{Engine: s.engine, IDGenerator: idgen.NewSequential("r")},
		},
		{
			name: "missing id generator",
			cfg:  &roster.Config{Engine: s.engine, Repository: s.repo},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := roster.NewOrchestrator(tc.cfg)
			s.Error(err)
			s.Nil(svc)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateRoster() {
	r := s.createRoster()

	s.Equal("roster-1", r.ID)
	s.Equal(testutils.TestRosterName, r.Name)
	s.Empty(r.Units)
	s.Equal(testutils.TestTime, r.CreatedAt)
	s.Contains(s.logs.String(), "created roster")

	got, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Equal(r.Name, got.Roster.Name)
}

func (s *OrchestratorTestSuite) TestCreateRosterRequiresName() {
	_, err := s.orchestrator.CreateRoster(s.ctx, &roster.CreateRosterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetRosterNotFound() {
	_, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetRoster(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRenameRoster() {
	r := s.createRoster()
	s.clock.At = testutils.TestTime.Add(time.Hour)

	out, err := s.orchestrator.RenameRoster(s.ctx, &roster.RenameRosterInput{RosterID: r.ID, Name: "Ash Company"})
	s.Require().NoError(err)
	s.Equal("Ash Company", out.Roster.Name)
	s.Equal(testutils.TestTime, out.Roster.CreatedAt)
	s.Equal(testutils.TestTime.Add(time.Hour), out.Roster.UpdatedAt)

	_, err = s.orchestrator.RenameRoster(s.ctx, &roster.RenameRosterInput{RosterID: r.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteAndListRosters() {
	first := s.createRoster()
	s.clock.At = testutils.TestTime.Add(time.Minute)
	second := s.createRoster()

	list, err := s.orchestrator.ListRosters(s.ctx, &roster.ListRostersInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Rosters, 2)
	s.Equal(first.ID, list.Rosters[0].ID)
	s.Equal(second.ID, list.Rosters[1].ID)

	_, err = s.orchestrator.DeleteRoster(s.ctx, &roster.DeleteRosterInput{RosterID: first.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.DeleteRoster(s.ctx, &roster.DeleteRosterInput{RosterID: first.ID})
	s.True(errors.IsNotFound(err))

	list, err = s.orchestrator.ListRosters(s.ctx, &roster.ListRostersInput{})
	s.Require().NoError(err)
	s.Len(list.Rosters, 1)
}

func (s *OrchestratorTestSuite) TestAddUnit() {
	r := s.createRoster()

	out, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID:  r.ID,
		Selection: s.lightSelection(testutils.TestUnitName, "w_autocannon"),
	})
	s.Require().NoError(err)

	s.Equal("hev-1", out.Unit.ID)
	s.Equal(13, out.Unit.TotalTonnage)
	s.Equal(3, out.WeaponCosts.Total)
	s.Require().Len(out.Roster.Units, 1)
	s.Equal(out.Unit, out.Roster.Units[0])

	stored, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Require().Len(stored.Roster.Units, 1)
	s.Equal("Auto-Cannon", stored.Roster.Units[0].SelectedWeapons[0].Name)
}

func (s *OrchestratorTestSuite) TestAddUnitIgnoresExistingID() {
	r := s.createRoster()
	selection := s.lightSelection("Copy", "w_hmg")
	selection.ExistingID = "hev-old"

	out, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{RosterID: r.ID, Selection: selection})
	s.Require().NoError(err)
	s.Equal("hev-1", out.Unit.ID)
	s.Equal("hev-old", selection.ExistingID)
}

func (s *OrchestratorTestSuite) TestAddUnitRejectsInvalidUnit() {
	r := s.createRoster()

	out, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID:  r.ID,
		Selection: s.lightSelection("Overloaded", "w_missile_pod", "w_missile_pod", "w_missile_pod"),
	})
	s.Nil(out)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal([]string{"tonnage limit exceeded (28/20)"}, errors.GetMeta(err)[roster.MetaValidationErrors])

	stored, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Empty(stored.Roster.Units)
}

func (s *OrchestratorTestSuite) TestAddUnitMissingSelection() {
	r := s.createRoster()

	_, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID:  r.ID,
		Selection: &unit.BuildInput{UnitName: "Nothing"},
	})
	s.True(errors.IsMissingSelection(err))

	_, err = s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{RosterID: r.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddUnitUnknownRoster() {
	_, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID:  "missing",
		Selection: s.lightSelection("Lost", "w_hmg"),
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEditUnitReturnsDetachedCopy() {
	r := s.createRoster()
	added := s.addUnit(r.ID, testutils.TestUnitName, "w_autocannon")

	out, err := s.orchestrator.EditUnit(s.ctx, &roster.EditUnitInput{RosterID: r.ID, UnitID: added.ID})
	s.Require().NoError(err)
	s.Equal(added, out.Unit)
	s.Equal(added.ID, out.Selection.ExistingID)
	s.Equal("Light", out.Selection.ClassName)
	s.Equal("m1", out.Selection.MobilityID)

	out.Unit.SelectedWeapons[0].Name = "changed"
	out.Selection.Weapons[0].ID = "changed"

	stored, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Equal("Auto-Cannon", stored.Roster.Units[0].SelectedWeapons[0].Name)
	s.Equal("w_autocannon", stored.Roster.Units[0].SelectedWeapons[0].ID)
}

func (s *OrchestratorTestSuite) TestUpdateUnitKeepsIDAndPosition() {
	r := s.createRoster()
	first := s.addUnit(r.ID, "First", "w_autocannon")
	second := s.addUnit(r.ID, "Second", "w_hmg")

	edit, err := s.orchestrator.EditUnit(s.ctx, &roster.EditUnitInput{RosterID: r.ID, UnitID: first.ID})
	s.Require().NoError(err)

	selection := edit.Selection
	selection.UnitName = "First Refit"
	selection.Weapons = unit.WeaponRefs("w_laser_lance")
	selection.ArmorModification = hev.ModificationReinforced

	out, err := s.orchestrator.UpdateUnit(s.ctx, &roster.UpdateUnitInput{
		RosterID:  r.ID,
		UnitID:    first.ID,
		Selection: selection,
	})
	s.Require().NoError(err)

	s.Equal(first.ID, out.Unit.ID)
	s.Equal(8, out.Unit.EffectiveArmor)
	s.Equal(8+4+4, out.Unit.TotalTonnage)
	s.Require().Len(out.Roster.Units, 2)
	s.Equal("First Refit", out.Roster.Units[0].UnitName)
	s.Equal(second.ID, out.Roster.Units[1].ID)
}

func (s *OrchestratorTestSuite) TestUpdateUnitErrors() {
	r := s.createRoster()
	added := s.addUnit(r.ID, "Only", "w_hmg")

	_, err := s.orchestrator.UpdateUnit(s.ctx, &roster.UpdateUnitInput{
		RosterID:  r.ID,
		UnitID:    "hev-missing",
		Selection: s.lightSelection("Ghost"),
	})
	s.True(errors.IsNotFound(err))

	invalid := s.lightSelection("Only")
	invalid.MobilityID = ""
	_, err = s.orchestrator.UpdateUnit(s.ctx, &roster.UpdateUnitInput{
		RosterID:  r.ID,
		UnitID:    added.ID,
		Selection: invalid,
	})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal([]string{validator.MsgMobilityRequired}, errors.GetMeta(err)[roster.MetaValidationErrors])
}

func (s *OrchestratorTestSuite) TestRemoveUnit() {
	r := s.createRoster()
	first := s.addUnit(r.ID, "First", "w_hmg")
	second := s.addUnit(r.ID, "Second", "w_hmg")

	out, err := s.orchestrator.RemoveUnit(s.ctx, &roster.RemoveUnitInput{RosterID: r.ID, UnitID: first.ID})
	s.Require().NoError(err)
	s.Require().Len(out.Roster.Units, 1)
	s.Equal(second.ID, out.Roster.Units[0].ID)

	_, err = s.orchestrator.RemoveUnit(s.ctx, &roster.RemoveUnitInput{RosterID: r.ID, UnitID: first.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestReorderUnits() {
	r := s.createRoster()
	a := s.addUnit(r.ID, "A", "w_hmg")
	b := s.addUnit(r.ID, "B", "w_hmg")
	c := s.addUnit(r.ID, "C", "w_hmg")

	out, err := s.orchestrator.ReorderUnits(s.ctx, &roster.ReorderUnitsInput{
		RosterID: r.ID,
		UnitIDs:  []string{c.ID, a.ID, b.ID},
	})
	s.Require().NoError(err)
	s.Equal("C", out.Roster.Units[0].UnitName)
	s.Equal("A", out.Roster.Units[1].UnitName)
	s.Equal("B", out.Roster.Units[2].UnitName)

	testCases := []struct {
		name string
		ids  []string
	}{
		{name: "too few", ids: []string{a.ID, b.ID}},
		{name: "duplicate", ids: []string{a.ID, a.ID, b.ID}},
		{name: "unknown", ids: []string{a.ID, b.ID, "hev-99"}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.ReorderUnits(s.ctx, &roster.ReorderUnitsInput{RosterID: r.ID, UnitIDs: tc.ids})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestValidateRoster() {
	r := s.createRoster()
	s.addUnit(r.ID, "A", "w_hmg")
	s.addUnit(r.ID, "B", "w_autocannon")

	out, err := s.orchestrator.ValidateRoster(s.ctx, &roster.ValidateRosterInput{
		RosterID: r.ID,
		Rules:    validator.RosterRules{MinTonnage: 100, MinUnits: 3},
	})
	s.Require().NoError(err)
	s.False(out.Result.IsValid)
	s.Equal(40, out.Result.TotalBaseTonnage)
	s.Equal([]string{"not enough HE-V units (2/3)"}, out.Result.Errors)
	s.Equal([]string{"roster is below minimum tonnage (40/100)"}, out.Result.Warnings)
}

func (s *OrchestratorTestSuite) TestExportRoster() {
	r := s.createRoster()
	s.addUnit(r.ID, testutils.TestUnitName, "w_autocannon")

	out, err := s.orchestrator.ExportRoster(s.ctx, &roster.ExportRosterInput{RosterID: r.ID})
	s.Require().NoError(err)

	var doc map[string]any
	s.Require().NoError(json.Unmarshal(out.Document, &doc))
	s.Equal("1.0", doc["version"])
	s.Equal(testutils.TestRosterName, doc["rosterName"])

	units, ok := doc["roster"].([]any)
	s.Require().True(ok)
	s.Require().Len(units, 1)
	first := units[0].(map[string]any)
	s.Equal("hev-1", first["id"])
	s.Equal(float64(13), first["totalUnitTonnage"])
	s.Contains(first, "selectedMotiveType")
}

func (s *OrchestratorTestSuite) TestExportImportRoundTrip() {
	r := s.createRoster()
	s.addUnit(r.ID, "A", "w_autocannon", "w_autocannon")
	s.addUnit(r.ID, "B", "w_hmg")

	exported, err := s.orchestrator.ExportRoster(s.ctx, &roster.ExportRosterInput{RosterID: r.ID})
	s.Require().NoError(err)

	imported, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: exported.Document})
	s.Require().NoError(err)

	s.NotEqual(r.ID, imported.Roster.ID)
	s.Equal(testutils.TestRosterName, imported.Roster.Name)
	s.Zero(imported.Skipped)
	s.Empty(imported.Stale)

	original, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Equal(original.Roster.Units, imported.Roster.Units)
}

func (s *OrchestratorTestSuite) TestImportRebuildsAgainstCatalog() {
	doc := []byte(`{
	  "version": "1.0",
	  "rosterName": "Old Force",
	  "roster": [
	    {
	      "id": "hev-a",
	      "unitName": "Tampered",
	      "selectedClass": {"name": "Light"},
	      "selectedMotiveType": {"id": "m1"},
	      "armorModification": "stripped",
	      "structureModification": "standard",
	      "selectedWeapons": [{"id": "w_hmg", "name": "Renamed"}, {"id": "w_gone", "name": "Old Gun"}],
	      "selectedUpgrades": [],
	      "totalUnitTonnage": 1
	    }
	  ]
	}`)

	out, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: doc, Name: "Renamed Force"})
	s.Require().NoError(err)

	s.Equal("Renamed Force", out.Roster.Name)
	s.Require().Len(out.Roster.Units, 1)
	u := out.Roster.Units[0]
	s.Equal("hev-a", u.ID)
	s.Equal(20, u.SelectedClass.BaseTonnage)
	s.Equal("Standard Biped", u.SelectedMobility.Name)
	s.Equal("Heavy Machine Gun", u.SelectedWeapons[0].Name)
	s.Equal(4+4+2, u.TotalTonnage)
	s.Equal(2, u.UsedSlots)
	s.Equal([]hev.StaleReference{{Kind: hev.StaleWeapon, ID: "w_gone", Name: "Old Gun"}}, out.Stale)
}

func (s *OrchestratorTestSuite) TestImportSkipsMalformedAndDuplicateUnits() {
	doc := []byte(`{
	  "rosterName": "Mixed",
	  "roster": [
	    {"id": "hev-a", "selectedClass": {"name": "Light"}, "selectedMotiveType": {"id": "m1"},
	     "selectedWeapons": [], "selectedUpgrades": [], "totalUnitTonnage": 10},
	    {"id": "hev-a", "selectedClass": {"name": "Light"}, "selectedMotiveType": {"id": "m1"},
	     "selectedWeapons": [], "selectedUpgrades": [], "totalUnitTonnage": 10},
	    {"id": "hev-b", "selectedClass": {"name": "Light"}, "selectedWeapons": [], "totalUnitTonnage": 10},
	    {"id": "hev-c", "selectedClass": {"name": "Mythic"}, "selectedWeapons": [], "selectedUpgrades": [],
	     "totalUnitTonnage": 10},
	    {"selectedClass": {"name": "Light"}, "selectedWeapons": [], "selectedUpgrades": [], "totalUnitTonnage": 10},
	    {"id": "hev-d", "selectedClass": {"name": "Light"}, "selectedWeapons": [], "selectedUpgrades": [],
	     "totalUnitTonnage": "10"},
	    "not a unit"
	  ]
	}`)

	out, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: doc})
	s.Require().NoError(err)
	s.Require().Len(out.Roster.Units, 1)
	s.Equal("hev-a", out.Roster.Units[0].ID)
	s.Equal(6, out.Skipped)
	s.Contains(s.logs.String(), "skipping duplicate unit on import")
}

func (s *OrchestratorTestSuite) TestImportRejectsBadDocuments() {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ``},
		{name: "not json", doc: `roster`},
		{name: "missing name", doc: `{"roster": []}`},
		{name: "name not a string", doc: `{"rosterName": 5, "roster": []}`},
		{name: "missing roster", doc: `{"rosterName": "x"}`},
		{name: "roster not an array", doc: `{"rosterName": "x", "roster": {}}`},
		{name: "no valid units", doc: `{"rosterName": "x", "roster": [{"id": "a"}]}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: []byte(tc.doc)})
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}

	list, err := s.orchestrator.ListRosters(s.ctx, &roster.ListRostersInput{})
	s.Require().NoError(err)
	s.Empty(list.Rosters)
}

func (s *OrchestratorTestSuite) TestImportDefaultsEmptyName() {
	doc := []byte(`{"rosterName": "", "roster": [
	  {"id": "hev-a", "selectedClass": {"name": "Medium"}, "selectedMotiveType": {"id": "m2"},
	   "selectedWeapons": [], "selectedUpgrades": [], "totalUnitTonnage": 14}
	]}`)

	out, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: doc})
	s.Require().NoError(err)
	s.Equal(roster.DefaultRosterName, out.Roster.Name)
}

func (s *OrchestratorTestSuite) TestAddSupportAsset() {
	r := s.createRoster()
	hevUnit := s.addUnit(r.ID, "A", "w_hmg")

	out, err := s.orchestrator.AddSupportAsset(s.ctx, &roster.AddSupportAssetInput{
		RosterID:  r.ID,
		AssetType: "Artillery Barrage",
		Details:   []string{"Damage: 4", "Traits: Blast(6), Limited(3)"},
	})
	s.Require().NoError(err)
	s.Equal("asset-1", out.Asset.ID)
	s.True(out.Asset.IsSupportAsset)
	s.Equal(hev.SupportAssetTonnage, out.Asset.TotalTonnage)
	s.Require().Len(out.Roster.Units, 2)

	res, err := s.orchestrator.ValidateRoster(s.ctx, &roster.ValidateRosterInput{
		RosterID: r.ID,
		Rules:    validator.RosterRules{MinTonnage: 30, MinUnits: 2},
	})
	s.Require().NoError(err)
	s.Equal(30, res.Result.TotalBaseTonnage)
	s.Equal([]string{"not enough HE-V units (1/2)"}, res.Result.Errors)
	s.Empty(res.Result.Warnings)

	_, err = s.orchestrator.EditUnit(s.ctx, &roster.EditUnitInput{RosterID: r.ID, UnitID: "asset-1"})
	s.True(errors.IsFailedPrecondition(err))
	_, err = s.orchestrator.UpdateUnit(s.ctx, &roster.UpdateUnitInput{
		RosterID:  r.ID,
		UnitID:    "asset-1",
		Selection: s.lightSelection("B"),
	})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.RemoveUnit(s.ctx, &roster.RemoveUnitInput{RosterID: r.ID, UnitID: "asset-1"})
	s.Require().NoError(err)
	got, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Equal([]string{hevUnit.ID}, unitIDs(got.Roster))
}

func (s *OrchestratorTestSuite) TestAddSupportAssetRequiresType() {
	r := s.createRoster()

	_, err := s.orchestrator.AddSupportAsset(s.ctx, &roster.AddSupportAssetInput{RosterID: r.ID, Name: "Nameless"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal([]string{validator.MsgAssetTypeRequired}, errors.GetMeta(err)[roster.MetaValidationErrors])

	got, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: r.ID})
	s.Require().NoError(err)
	s.Empty(got.Roster.Units)
}

func (s *OrchestratorTestSuite) TestImportKeepsSupportAssets() {
	doc := []byte(`{
	  "rosterName": "Combined Arms",
	  "roster": [
	    {"id": "hev-a", "selectedClass": {"name": "Light"}, "selectedMotiveType": {"id": "m1"},
	     "selectedWeapons": [], "selectedUpgrades": [], "totalUnitTonnage": 10},
	    {"id": "x1", "isSupportAsset": true, "type": "Artillery Barrage",
	     "details": ["Damage: 4"], "totalUnitTonnage": 10},
	    {"id": "x2", "isSupportAsset": true, "type": "Infantry Outpost"},
	    {"id": "x3", "isSupportAsset": true, "details": ["no type"]}
	  ]
	}`)

	out, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: doc})
	s.Require().NoError(err)
	s.Equal(2, out.SupportAssets)
	s.Equal(1, out.Skipped)
	s.Equal([]string{"hev-a", "x1", "x2"}, unitIDs(out.Roster))
	s.Equal(20+10+10, out.Roster.TotalBaseTonnage())
	s.Equal([]string{"Damage: 4"}, out.Roster.Units[1].Details)
	s.Contains(s.logs.String(), "skipping support asset on import")

	exported, err := s.orchestrator.ExportRoster(s.ctx, &roster.ExportRosterInput{RosterID: out.Roster.ID})
	s.Require().NoError(err)
	again, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: exported.Document})
	s.Require().NoError(err)
	s.Equal(2, again.SupportAssets)
	s.Zero(again.Skipped)
	s.Equal(out.Roster.Units, again.Roster.Units)
}

func (s *OrchestratorTestSuite) TestImportedStaleTraitsFormatSafely() {
	doc := []byte(`{"rosterName": "Relic", "roster": [
	  {"id": "hev-a", "selectedClass": {"name": "Light"}, "selectedMotiveType": {"id": "m1"},
	   "selectedWeapons": [{"id": "w_retired", "name": "Relic Gun", "traits": [{"name": "Limited", "value": -2}]}],
	   "selectedUpgrades": [], "totalUnitTonnage": 0}
	]}`)

	out, err := s.orchestrator.ImportRoster(s.ctx, &roster.ImportRosterInput{Document: doc})
	s.Require().NoError(err)
	s.Require().Len(out.Roster.Units, 1)

	weapons := out.Roster.Units[0].SelectedWeapons
	s.Require().Len(weapons, 1)
	s.NotPanics(func() {
		s.Equal("Limited -2", hev.FormatTraits(weapons[0].Traits, "Light"))
	})
}

func unitIDs(r *hev.Roster) []string {
	ids := make([]string, 0, len(r.Units))
	for _, u := range r.Units {
		ids = append(ids, u.ID)
	}
	return ids
}

type StorageTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockRepo     *rostermock.MockRepository
	logs         *bytes.Buffer
	orchestrator roster.Service
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rostermock.NewMockRepository(s.ctrl)
	s.logs = &bytes.Buffer{}

	eng, err := engine.New(&engine.Config{Catalog: catalog.MustDefault(), IDGenerator: idgen.NewSequential("hev")})
	s.Require().NoError(err)

	s.orchestrator, err = roster.NewOrchestrator(&roster.Config{
		Engine:      eng,
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential("roster"),
		Clock:       &clock.Fixed{At: testutils.TestTime},
		Logger:      slog.New(slog.NewTextHandler(s.logs, nil)),
	})
	s.Require().NoError(err)
}

func (s *StorageTestSuite) TestAddUnitSaveFailure() {
	mocks.ExpectRosterGet(s.ctx, s.mockRepo, "roster-1", testutils.CreateTestRoster("roster-1"), nil)
	mocks.ExpectRosterSave(s.ctx, s.mockRepo, nil, errors.Internal("redis down"))

	_, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID: "roster-1",
		Selection: &unit.BuildInput{
			ClassName:  "Light",
			MobilityID: "m1",
			Weapons:    unit.WeaponRefs("w_hmg"),
		},
	})
	s.True(errors.IsInternal(err))
	s.Contains(s.logs.String(), "failed to save roster")
}

func (s *StorageTestSuite) TestAddUnitStoresDetachedCopy() {
	var saved hev.Roster
	mocks.ExpectRosterGet(s.ctx, s.mockRepo, "roster-1", testutils.CreateTestRoster("roster-1", testutils.CreateTestUnit("hev-0")), nil)
	mocks.ExpectRosterSave(s.ctx, s.mockRepo, &saved, nil)

	out, err := s.orchestrator.AddUnit(s.ctx, &roster.AddUnitInput{
		RosterID: "roster-1",
		Selection: &unit.BuildInput{
			ClassName:  "Light",
			MobilityID: "m1",
			Weapons:    unit.WeaponRefs("w_hmg"),
		},
	})
	s.Require().NoError(err)

	out.Unit.SelectedWeapons[0].Name = "mutated"
	s.Require().Len(saved.Units, 2)
	s.Equal("hev-0", saved.Units[0].ID)
	s.Equal("Heavy Machine Gun", saved.Units[1].SelectedWeapons[0].Name)
}

func (s *StorageTestSuite) TestDeleteRosterPassesThroughNotFound() {
	mocks.ExpectRosterDelete(s.ctx, s.mockRepo, "roster-x", errors.NotFound("roster with ID roster-x not found"))

	_, err := s.orchestrator.DeleteRoster(s.ctx, &roster.DeleteRosterInput{RosterID: "roster-x"})
	s.True(errors.IsNotFound(err))
}

func (s *StorageTestSuite) TestGetRosterStorageFailure() {
	mocks.ExpectRosterGet(s.ctx, s.mockRepo, "roster-1", nil, errors.Internal("connection reset"))

	_, err := s.orchestrator.GetRoster(s.ctx, &roster.GetRosterInput{RosterID: "roster-1"})
	s.True(errors.IsInternal(err))
}
