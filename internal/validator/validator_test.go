package validator_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

type ValidatorTestSuite struct {
	suite.Suite
	light    *hev.ChassisClass
	mobility *hev.MobilitySystem
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.light = &hev.ChassisClass{Name: "Light", BaseTonnage: 20, BaseSlots: 4, BaseArmor: 6, BaseStructure: 4}
	s.mobility = &hev.MobilitySystem{ID: "m1", Name: "Standard Biped", ClassApplicability: []string{"Light", "Medium"}}
}

func (s *ValidatorTestSuite) unit(armor, structure, tonnage, used, maxSlots int) *hev.UnitConfiguration {
	return &hev.UnitConfiguration{
		ID:                 "hev-1",
		SelectedClass:      s.light,
		SelectedMobility:   s.mobility,
		EffectiveArmor:     armor,
		EffectiveStructure: structure,
		TotalTonnage:       tonnage,
		UsedSlots:          used,
		MaxSlots:           maxSlots,
	}
}

func (s *ValidatorTestSuite) TestValidate() {
	testCases := []struct {
		name     string
		unit     *hev.UnitConfiguration
		expected []string
	}{
		{
			name:     "light with one weapon is valid",
			unit:     s.unit(6, 4, 13, 1, 4),
			expected: []string{},
		},
		{
			name:     "exactly at budget is valid",
			unit:     s.unit(6, 4, 20, 4, 4),
			expected: []string{},
		},
		{
			name:     "over tonnage, slots at limit",
			unit:     s.unit(6, 4, 28, 4, 4),
			expected: []string{"tonnage limit exceeded (28/20)"},
		},
		{
			name:     "over slots",
			unit:     s.unit(6, 4, 18, 5, 4),
			expected: []string{"slot limit exceeded (5/4)"},
		},
		{
			name:     "stripped to zero armor",
			unit:     s.unit(0, 4, 4, 0, 4),
			expected: []string{validator.MsgArmorNotPositive},
		},
		{
			name:     "every check collected",
			unit:     s.unit(0, 0, 21, 6, 3),
			expected: []string{validator.MsgArmorNotPositive, validator.MsgStructNotPositive, "tonnage limit exceeded (21/20)", "slot limit exceeded (6/3)"},
		},
		{
			name:     "missing selections",
			unit:     &hev.UnitConfiguration{EffectiveArmor: 1, EffectiveStructure: 1},
			expected: []string{validator.MsgClassRequired, validator.MsgMobilityRequired},
		},
		{
			name:     "nil unit",
			unit:     nil,
			expected: []string{validator.MsgClassRequired, validator.MsgMobilityRequired, validator.MsgArmorNotPositive, validator.MsgStructNotPositive},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res := validator.Validate(tc.unit)
			s.Equal(tc.expected, res.Errors)
			s.Equal(len(tc.expected) == 0, res.IsValid)
		})
	}
}

func (s *ValidatorTestSuite) TestMobilityNotApplicable() {
	u := s.unit(6, 4, 10, 0, 4)
	u.SelectedMobility = &hev.MobilitySystem{ID: "bh2", Name: "Heavy Treads (BH)", ClassApplicability: []string{"Heavy"}}

	res := validator.Validate(u)
	s.False(res.IsValid)
	s.Equal([]string{"mobility system Heavy Treads (BH) is not available for Light"}, res.Errors)
}

func (s *ValidatorTestSuite) TestValidateIsIdempotentAndReadOnly() {
	u := s.unit(6, 4, 28, 5, 4)
	before := u.Clone()

	first := validator.Validate(u)
	second := validator.Validate(u)

	s.Equal(first, second)
	s.Equal(before, u)
}

func (s *ValidatorTestSuite) TestValidateRoster() {
	rules := validator.RosterRules{MinTonnage: 50, MinUnits: 2}
	medium := &hev.ChassisClass{Name: "Medium", BaseTonnage: 40, BaseSlots: 6}

	valid := s.unit(6, 4, 13, 1, 4)
	valid.UnitName = "Scout"
	second := s.unit(8, 6, 30, 2, 6)
	second.SelectedClass = medium
	overweight := s.unit(6, 4, 25, 1, 4)
	overweight.UnitName = "Brick"

	testCases := []struct {
		name     string
		units    []*hev.UnitConfiguration
		valid    bool
		errors   []string
		warnings []string
		tonnage  int
	}{
		{
			name:     "empty",
			units:    nil,
			errors:   []string{validator.MsgRosterEmpty},
			warnings: []string{},
		},
		{
			name:     "too few units and light",
			units:    []*hev.UnitConfiguration{valid},
			errors:   []string{"not enough HE-V units (1/2)"},
			warnings: []string{"roster is below minimum tonnage (20/50)"},
			tonnage:  20,
		},
		{
			name:     "legal force",
			units:    []*hev.UnitConfiguration{valid, second},
			valid:    true,
			errors:   []string{},
			warnings: []string{},
			tonnage:  60,
		},
		{
			name:     "support assets add tonnage but not units",
			units:    []*hev.UnitConfiguration{valid, hev.NewSupportAsset("asset-1", "", "Artillery Barrage", nil, 0)},
			errors:   []string{"not enough HE-V units (1/2)"},
			warnings: []string{"roster is below minimum tonnage (30/50)"},
			tonnage:  30,
		},
		{
			name: "legal force with support",
			units: []*hev.UnitConfiguration{
				valid, second, hev.NewSupportAsset("asset-1", "Hornets", "Ultra-Light Squadron", nil, 15),
			},
			valid:    true,
			errors:   []string{},
			warnings: []string{},
			tonnage:  75,
		},
		{
			name:     "illegal support asset",
			units:    []*hev.UnitConfiguration{valid, second, {ID: "asset-2", IsSupportAsset: true, UnitName: "Outpost", TotalTonnage: 10}},
			errors:   []string{"Outpost: " + validator.MsgAssetTypeRequired},
			warnings: []string{},
			tonnage:  70,
		},
		{
			name:     "illegal unit",
			units:    []*hev.UnitConfiguration{valid, second, overweight},
			errors:   []string{"Brick: tonnage limit exceeded (25/20)"},
			warnings: []string{},
			tonnage:  80,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res := validator.ValidateRoster(tc.units, rules)
			s.Equal(tc.valid, res.IsValid)
			s.Equal(tc.errors, res.Errors)
			s.Equal(tc.warnings, res.Warnings)
			s.Equal(tc.tonnage, res.TotalBaseTonnage)
		})
	}
}

func (s *ValidatorTestSuite) TestValidateSupportAsset() {
	s.True(validator.ValidateSupportAsset(hev.NewSupportAsset("asset-1", "", "Infantry Outpost", nil, 0)).IsValid)

	res := validator.ValidateSupportAsset(&hev.UnitConfiguration{IsSupportAsset: true, AssetType: "  "})
	s.False(res.IsValid)
	s.Equal([]string{validator.MsgAssetTypeRequired, validator.MsgAssetTonnageNotPositive}, res.Errors)
}
