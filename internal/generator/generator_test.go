package generator_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hev-builder/internal/catalog"
	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/generator"
	"github.com/KirkDiggler/hev-builder/internal/pkg/idgen"
)

// scriptedRoller replays fixed results, then repeats the last one
type scriptedRoller struct {
	results []int
	calls   int
	err     error
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	i := r.calls
	if i >= len(r.results) {
		i = len(r.results) - 1
	}
	r.calls++
	return r.results[i], nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		n, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

type GeneratorTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine engine.Engine
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{
		Catalog:     catalog.MustDefault(),
		IDGenerator: idgen.NewSequential("hev"),
	})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *GeneratorTestSuite) newGenerator(roller dice.Roller, maxRolls int) generator.Service {
	g, err := generator.New(&generator.Config{Engine: s.engine, Roller: roller, MaxRolls: maxRolls})
	s.Require().NoError(err)
	return g
}

func (s *GeneratorTestSuite) TestNewValidation() {
	_, err := generator.New(&generator.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = generator.New(&generator.Config{Engine: s.engine, MaxRolls: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GeneratorTestSuite) TestScriptedLoadout() {
	// class Light, mobility m1, then items from
	// [autocannon, hmg, missile pod, laser lance, optics, jump jets, ecm]
	roller := &scriptedRoller{results: []int{1, 1, 1, 1, 3, 5, 5, 2}}
	g := s.newGenerator(roller, 0)

	out, err := g.Generate(s.ctx, &generator.GenerateInput{})
	s.Require().NoError(err)

	u := out.Unit
	s.Equal("Light", u.ClassName())
	s.Equal("m1", u.SelectedMobility.ID)
	s.Equal("Light Quick Build", u.UnitName)
	s.Require().Len(u.SelectedWeapons, 3)
	s.Equal("w_autocannon", u.SelectedWeapons[0].ID)
	s.Equal("w_autocannon", u.SelectedWeapons[1].ID)
	s.Equal("w_hmg", u.SelectedWeapons[2].ID)
	s.Require().Len(u.SelectedUpgrades, 1)
	s.Equal("u1", u.SelectedUpgrades[0].ID)

	// 6 armor + 4 structure + 3 + 4 + 2 + 1
	s.Equal(20, u.TotalTonnage)
	s.Equal(4, u.UsedSlots)
	s.Equal(4, u.MaxSlots)
	s.True(out.Validation.IsValid)
	s.Equal(6, out.Rolls)
}

func (s *GeneratorTestSuite) TestFixedClassAndMobilitySkipTheirRolls() {
	roller := &scriptedRoller{results: []int{2}}
	g := s.newGenerator(roller, 3)

	out, err := g.Generate(s.ctx, &generator.GenerateInput{
		UnitName:   "Tread Line",
		ClassName:  "Ultra-Heavy",
		MobilityID: "bh2",
	})
	s.Require().NoError(err)

	s.Equal("Tread Line", out.Unit.UnitName)
	s.Equal("Ultra-Heavy", out.Unit.ClassName())
	s.Equal(9, out.Unit.MaxSlots)
	s.Equal(3, out.Rolls)
	s.Equal(3, roller.calls)
	s.Len(out.Unit.SelectedWeapons, 3)
}

func (s *GeneratorTestSuite) TestRollsAreBounded() {
	// a second missile pod never fits a Light chassis
	roller := &scriptedRoller{results: []int{3}}
	g := s.newGenerator(roller, 5)

	out, err := g.Generate(s.ctx, &generator.GenerateInput{ClassName: "Light", MobilityID: "m1"})
	s.Require().NoError(err)
	s.Equal(5, out.Rolls)
	s.Len(out.Unit.SelectedWeapons, 1)
	s.Equal(15, out.Unit.TotalTonnage)
}

func (s *GeneratorTestSuite) TestAlwaysLegal() {
	g := s.newGenerator(dice.DefaultRoller, 0)

	for _, class := range []string{"", "Light", "Medium", "Heavy", "Ultra-Heavy"} {
		for i := range 25 {
			s.Run(fmt.Sprintf("%s/%d", class, i), func() {
				out, err := g.Generate(s.ctx, &generator.GenerateInput{ClassName: class})
				s.Require().NoError(err)
				s.True(out.Validation.IsValid, "errors: %v", out.Validation.Errors)
				s.LessOrEqual(out.Unit.TotalTonnage, out.Unit.SelectedClass.BaseTonnage)
				s.LessOrEqual(out.Unit.UsedSlots, out.Unit.MaxSlots)
				s.True(out.Unit.SelectedMobility.AppliesTo(out.Unit.ClassName()))
			})
		}
	}
}

func (s *GeneratorTestSuite) TestErrors() {
	testCases := []struct {
		name   string
		roller dice.Roller
		input  *generator.GenerateInput
		check  func(error) bool
	}{
		{
			name:   "unknown class",
			roller: &scriptedRoller{results: []int{1}},
			input:  &generator.GenerateInput{ClassName: "Mythic"},
			check:  errors.IsNotFound,
		},
		{
			name:   "mobility not available for class",
			roller: &scriptedRoller{results: []int{1}},
			input:  &generator.GenerateInput{ClassName: "Ultra-Heavy", MobilityID: "bh1"},
			check:  errors.IsInvalidArgument,
		},
		{
			name:   "roller failure",
			roller: &scriptedRoller{err: fmt.Errorf("dice jammed")},
			input:  &generator.GenerateInput{},
			check:  errors.IsInternal,
		},
		{
			name:   "roll out of range",
			roller: &scriptedRoller{results: []int{99}},
			input:  &generator.GenerateInput{},
			check:  errors.IsInternal,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.newGenerator(tc.roller, 0).Generate(s.ctx, tc.input)
			s.Nil(out)
			s.True(tc.check(err), "got %v", err)
		})
	}
}
