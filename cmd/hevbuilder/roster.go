package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/roster"
	rosterrepo "github.com/KirkDiggler/hev-builder/internal/repositories/roster"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

func newRosterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage rosters of units",
	}

	var rules validator.RosterRules
	show := &cobra.Command{
		Use:   "show <roster-id>",
		Short: "Print a roster and check its composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.rosterService(cmd.Context())
			if err != nil {
				return err
			}

			got, err := svc.GetRoster(cmd.Context(), &roster.GetRosterInput{RosterID: args[0]})
			if err != nil {
				return err
			}
			r := got.Roster

			fmt.Fprintf(a.out, "%s [%s] - %d unit(s)\n\n", r.Name, r.ID, len(r.Units))
			for _, u := range r.Units {
				printUnit(a.out, u)
				fmt.Fprintln(a.out)
			}

			res, err := svc.ValidateRoster(cmd.Context(), &roster.ValidateRosterInput{RosterID: r.ID, Rules: rules})
			if err != nil {
				return err
			}
			printRosterResult(a.out, res.Result)
			return nil
		},
	}
	show.Flags().IntVar(&rules.MinTonnage, "min-tonnage", 0, "warn when base tonnage is below this")
	show.Flags().IntVar(&rules.MinUnits, "min-units", 1, "minimum number of HE-Vs; support assets do not count")

	var outPath string
	export := &cobra.Command{
		Use:   "export <roster-id>",
		Short: "Write a roster as an export document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.rosterService(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.ExportRoster(cmd.Context(), &roster.ExportRosterInput{RosterID: args[0]})
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = fmt.Fprintln(a.out, string(out.Document))
				return err
			}
			if err := os.WriteFile(outPath, out.Document, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %s", outPath)
			}
			return nil
		},
	}
	export.Flags().StringVarP(&outPath, "output", "o", "", "file to write (default: stdout)")

	var importName string
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import an export document as a new roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.InvalidArgumentf("failed to read %s: %v", args[0], err)
			}

			svc, err := a.rosterService(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.ImportRoster(cmd.Context(), &roster.ImportRosterInput{Document: data, Name: importName})
			if err != nil {
				return err
			}

			printStale(a.out, out.Stale)
			fmt.Fprintf(a.out, "Imported %q as %s: %d unit(s), %d support asset(s), %d skipped\n",
				out.Roster.Name, out.Roster.ID, len(out.Roster.Units)-out.SupportAssets, out.SupportAssets, out.Skipped)
			return nil
		},
	}
	importCmd.Flags().StringVar(&importName, "name", "", "roster name (default: the document's)")

	var asset roster.AddSupportAssetInput
	addAsset := &cobra.Command{
		Use:   "add-asset <roster-id> <type>",
		Short: "Add a support asset to a roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.rosterService(cmd.Context())
			if err != nil {
				return err
			}

			input := asset
			input.RosterID = args[0]
			input.AssetType = args[1]
			out, err := svc.AddSupportAsset(cmd.Context(), &input)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Added %s to %s\n", out.Asset.ID, out.Roster.Name)
			return nil
		},
	}
	addAsset.Flags().StringVar(&asset.Name, "name", "", "asset name (default: its type)")
	addAsset.Flags().StringArrayVar(&asset.Details, "detail", nil, "a line of rules text; repeat for more")
	addAsset.Flags().IntVar(&asset.Tonnage, "tonnage", 0, "tonnage counted toward the roster (default 10)")

	var fix bool
	audit := &cobra.Command{
		Use:   "audit",
		Short: "Check the Redis roster store for unreadable or unlisted rosters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auditor, err := a.auditor(cmd.Context())
			if err != nil {
				return err
			}

			out, err := auditor.Audit(cmd.Context(), rosterrepo.AuditInput{Fix: fix})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Checked %d roster(s)\n", out.Checked)
			for _, id := range out.Corrupt {
				fmt.Fprintf(a.out, "corrupt: %s\n", id)
			}
			for _, id := range out.Unindexed {
				fmt.Fprintf(a.out, "unindexed: %s\n", id)
			}
			switch {
			case out.Fixed:
				fmt.Fprintln(a.out, "Repaired")
			case len(out.Corrupt)+len(out.Unindexed) > 0:
				fmt.Fprintln(a.out, "Run again with --fix to delete corrupt rosters and reindex the rest")
			}
			return nil
		},
	}
	audit.Flags().BoolVar(&fix, "fix", false, "delete corrupt rosters and restore missing index entries")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create an empty roster",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.rosterService(cmd.Context())
				if err != nil {
					return err
				}

				out, err := svc.CreateRoster(cmd.Context(), &roster.CreateRosterInput{Name: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, out.Roster.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List rosters",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := a.rosterService(cmd.Context())
				if err != nil {
					return err
				}

				out, err := svc.ListRosters(cmd.Context(), &roster.ListRostersInput{})
				if err != nil {
					return err
				}

				tw := newTable(a.out)
				fmt.Fprintln(tw, "ID\tNAME\tUNITS\tTONNAGE")
				for _, r := range out.Rosters {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.ID, r.Name, len(r.Units), r.TotalBaseTonnage())
				}
				return tw.Flush()
			},
		},
		show,
		addAsset,
		&cobra.Command{
			Use:   "add <roster-id> <selection.yaml>",
			Short: "Build a unit and add it to a roster",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				selection, err := readSelection(args[1])
				if err != nil {
					return err
				}

				svc, err := a.rosterService(cmd.Context())
				if err != nil {
					return err
				}

				out, err := svc.AddUnit(cmd.Context(), &roster.AddUnitInput{RosterID: args[0], Selection: selection})
				if err != nil {
					if msgs, ok := errors.GetMeta(err)[roster.MetaValidationErrors].([]string); ok {
						for _, msg := range msgs {
							fmt.Fprintf(a.out, "  - %s\n", msg)
						}
					}
					return err
				}

				printStale(a.out, out.Stale)
				fmt.Fprintf(a.out, "Added %s to %s\n", out.Unit.ID, out.Roster.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <roster-id> <unit-id>",
			Short: "Remove a unit from a roster",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.rosterService(cmd.Context())
				if err != nil {
					return err
				}

				_, err = svc.RemoveUnit(cmd.Context(), &roster.RemoveUnitInput{RosterID: args[0], UnitID: args[1]})
				return err
			},
		},
		&cobra.Command{
			Use:   "delete <roster-id>",
			Short: "Delete a roster",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.rosterService(cmd.Context())
				if err != nil {
					return err
				}

				_, err = svc.DeleteRoster(cmd.Context(), &roster.DeleteRosterInput{RosterID: args[0]})
				return err
			},
		},
		export,
		importCmd,
		audit,
	)

	return cmd
}
