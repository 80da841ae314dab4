package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

func newCatalogCmd(a *app) *cobra.Command {
	var className string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog entries",
	}
	cmd.PersistentFlags().StringVar(&className, "class", "", "only list entries available to this chassis class")

	// options returns the class filter result, or nil when no class was given
	options := func(cmd *cobra.Command) (*engine.ListOptionsOutput, error) {
		if className == "" {
			return nil, nil
		}
		return a.engine.ListOptions(cmd.Context(), &engine.ListOptionsInput{ClassName: className})
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "classes",
			Short: "List chassis classes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				classes := a.engine.Lookup().Classes()
				if className != "" {
					opts, err := options(cmd)
					if err != nil {
						return err
					}
					classes = []hev.ChassisClass{opts.Class}
				}

				tw := newTable(a.out)
				fmt.Fprintln(tw, "CLASS\tTONNAGE\tSLOTS\tARMOR\tSTRUCTURE\tMOVE\tDEFENSE")
				for _, c := range classes {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\"\t%s\n",
						c.Name, c.BaseTonnage, c.BaseSlots, c.BaseArmor, c.BaseStructure, c.BaseMovement, c.DefenseRoll)
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "mobility",
			Short: "List mobility systems",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				systems := a.catalog.Mobility
				opts, err := options(cmd)
				if err != nil {
					return err
				}
				if opts != nil {
					systems = opts.Mobility
				}

				tw := newTable(a.out)
				fmt.Fprintln(tw, "ID\tNAME\tSLOTS\tCLASSES")
				for _, m := range systems {
					fmt.Fprintf(tw, "%s\t%s\t%+d\t%v\n", m.ID, m.Name, m.SlotModifier, m.ClassApplicability)
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "weapons",
			Short: "List weapons",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				weapons := a.catalog.Weapons
				opts, err := options(cmd)
				if err != nil {
					return err
				}
				if opts != nil {
					weapons = opts.Weapons
				}

				tw := newTable(a.out)
				fmt.Fprintln(tw, "ID\tNAME\tTONNAGE\tDAMAGE\tRANGE\tTRAITS")
				for _, w := range weapons {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", w.ID, w.Name,
						classValue(w.Tonnage, className), classValue(w.DamageRating, className),
						w.RangeCategory, hev.FormatTraits(w.Traits, className))
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "upgrades",
			Short: "List upgrades",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				upgrades := a.catalog.Upgrades
				opts, err := options(cmd)
				if err != nil {
					return err
				}
				if opts != nil {
					upgrades = opts.Upgrades
				}

				tw := newTable(a.out)
				fmt.Fprintln(tw, "ID\tNAME\tTONNAGE\tTRAITS")
				for _, u := range upgrades {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name,
						classValue(u.Tonnage, className), hev.FormatTraits(u.Traits, className))
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "traits",
			Short: "List trait definitions used by the catalog",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				tw := newTable(a.out)
				for _, name := range hev.TraitNames(a.catalog.Weapons, a.catalog.Upgrades) {
					def, ok := a.engine.Lookup().TraitDefinition(name)
					if !ok {
						def = "-"
					}
					fmt.Fprintf(tw, "%s\t%s\n", name, def)
				}
				return tw.Flush()
			},
		},
	)

	return cmd
}

// classValue prints the entry for className when one is selected
func classValue(v hev.ClassValue, className string) string {
	if className != "" {
		if n, ok := v.For(className); ok {
			return fmt.Sprintf("%d", n)
		}
	}
	return v.String()
}
