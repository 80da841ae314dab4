package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/generator"
)

func newBuildCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "build <selection.yaml>",
		Short: "Build, price and validate a unit from a selection file",
		Long: `Build a unit from a YAML selection file:

  name: Warden
  class: Light
  mobility: m1
  armor: standard
  structure: reinforced
  weapons: [w_autocannon, w_autocannon]
  upgrades: [u1]

The command exits non-zero when the unit is not valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := readSelection(args[0])
			if err != nil {
				return err
			}

			out, err := a.engine.BuildUnit(cmd.Context(), &engine.BuildUnitInput{Selection: selection})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(out.Unit); err != nil {
					return errors.Wrap(err, "failed to encode unit")
				}
			} else {
				printUnit(a.out, out.Unit)
				printCosts(a.out, "Weapon", out.WeaponCosts)
				printCosts(a.out, "Upgrade", out.UpgradeCosts)
				printStale(a.out, out.Stale)
				printValidation(a.out, out.Validation)
			}

			if !out.Validation.IsValid {
				return errors.FailedPreconditionf("unit is not valid: %d problem(s)", len(out.Validation.Errors))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the unit in roster export form")

	return cmd
}

func newRandomCmd(a *app) *cobra.Command {
	var input generator.GenerateInput

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Roll a random legal unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := generator.New(&generator.Config{Engine: a.engine, Logger: a.logger})
			if err != nil {
				return err
			}

			out, err := gen.Generate(cmd.Context(), &input)
			if err != nil {
				return err
			}

			printUnit(a.out, out.Unit)
			fmt.Fprintf(a.out, "Rolled in %d picks\n", out.Rolls)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.ClassName, "class", "", "chassis class (default: rolled)")
	cmd.Flags().StringVar(&input.MobilityID, "mobility", "", "mobility system id (default: rolled)")
	cmd.Flags().StringVar(&input.UnitName, "name", "", "unit name")

	return cmd
}
