package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/hev-builder/internal/costing"
	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/validator"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printUnit(w io.Writer, u *hev.UnitConfiguration) {
	if u.IsSupportAsset {
		printSupportAsset(w, u)
		return
	}

	class := u.ClassName()
	mobility := "-"
	if u.SelectedMobility != nil {
		mobility = fmt.Sprintf("%s (%s)", u.SelectedMobility.Name, u.SelectedMobility.ID)
	}

	fmt.Fprintf(w, "%s [%s]\n", displayName(u.UnitName), u.ID)
	tw := newTable(w)
	fmt.Fprintf(tw, "  Class:\t%s\n", class)
	fmt.Fprintf(tw, "  Mobility:\t%s\n", mobility)
	fmt.Fprintf(tw, "  Armor:\t%d (%s)\n", u.EffectiveArmor, u.ArmorModification)
	fmt.Fprintf(tw, "  Structure:\t%d (%s)\n", u.EffectiveStructure, u.StructureModification)
	if u.SelectedClass != nil {
		fmt.Fprintf(tw, "  Tonnage:\t%d/%d\n", u.TotalTonnage, u.SelectedClass.BaseTonnage)
		fmt.Fprintf(tw, "  Movement:\t%d\"\n", u.SelectedClass.BaseMovement)
		fmt.Fprintf(tw, "  Defense:\t%s\n", u.SelectedClass.DefenseRoll)
	}
	fmt.Fprintf(tw, "  Slots:\t%d/%d\n", u.UsedSlots, u.MaxSlots)
	fmt.Fprintf(tw, "  Damage markers:\t%s\n", joinInts(costing.StructureMarkers(u.EffectiveStructure)))
	_ = tw.Flush()

	if len(u.SelectedWeapons) > 0 {
		fmt.Fprintln(w, "  Weapons:")
		tw = newTable(w)
		for _, wpn := range u.SelectedWeapons {
			dmg, _ := wpn.DamageRating.For(class)
			fmt.Fprintf(tw, "    %s\t%s\tDMG %d\t%s\n", displayName(wpn.Name), wpn.RangeCategory, dmg,
				hev.FormatTraits(wpn.Traits, class))
		}
		_ = tw.Flush()
	}
	if len(u.SelectedUpgrades) > 0 {
		fmt.Fprintln(w, "  Upgrades:")
		tw = newTable(w)
		for _, up := range u.SelectedUpgrades {
			fmt.Fprintf(tw, "    %s\t%s\n", displayName(up.Name), hev.FormatTraits(up.Traits, class))
		}
		_ = tw.Flush()
	}
}

func printSupportAsset(w io.Writer, u *hev.UnitConfiguration) {
	name := u.UnitName
	if name == "" {
		name = u.AssetType
	}
	fmt.Fprintf(w, "%s [%s] (support asset)\n", displayName(name), u.ID)
	tw := newTable(w)
	fmt.Fprintf(tw, "  Type:\t%s\n", u.AssetType)
	fmt.Fprintf(tw, "  Tonnage:\t%d\n", u.BaseTonnage())
	_ = tw.Flush()
	for _, line := range u.Details {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func printCosts(w io.Writer, label string, b *costing.Breakdown) {
	if b == nil || len(b.Items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s cost: %d\n", label, b.Total)
	tw := newTable(w)
	for _, item := range b.Items {
		fmt.Fprintf(tw, "  %s #%d\t%d\n", displayName(item.Name), item.Instance, item.Cost)
	}
	_ = tw.Flush()
}

func printStale(w io.Writer, stale []hev.StaleReference) {
	for _, ref := range stale {
		fmt.Fprintf(w, "warning: %s %s (%s) is no longer in the catalog and costs nothing\n",
			ref.Kind, ref.ID, displayName(ref.Name))
	}
}

func printValidation(w io.Writer, res *validator.Result) {
	if res.IsValid {
		fmt.Fprintln(w, "Valid")
		return
	}
	fmt.Fprintln(w, "Invalid:")
	for _, msg := range res.Errors {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}

func printRosterResult(w io.Writer, res *validator.RosterResult) {
	fmt.Fprintf(w, "Total base tonnage: %d\n", res.TotalBaseTonnage)
	for _, msg := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
	for _, msg := range res.Errors {
		fmt.Fprintf(w, "error: %s\n", msg)
	}
	if res.IsValid {
		fmt.Fprintln(w, "Roster is valid")
	}
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, " / ")
}
