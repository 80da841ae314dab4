package main

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/unit"
)

// selectionFile is the YAML a player writes to describe a unit. Weapons and
// upgrades are catalog ids; repeat an id to take more than one.
type selectionFile struct {
	Name      string   `yaml:"name"`
	Class     string   `yaml:"class"`
	Mobility  string   `yaml:"mobility"`
	Armor     string   `yaml:"armor"`
	Structure string   `yaml:"structure"`
	Weapons   []string `yaml:"weapons"`
	Upgrades  []string `yaml:"upgrades"`
}

func readSelection(path string) (*unit.BuildInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to read selection %s: %v", path, err)
	}
	return parseSelection(data)
}

func parseSelection(data []byte) (*unit.BuildInput, error) {
	var sel selectionFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sel); err != nil {
		return nil, errors.InvalidArgumentf("invalid selection: %v", err)
	}

	return &unit.BuildInput{
		UnitName:              sel.Name,
		ClassName:             sel.Class,
		MobilityID:            sel.Mobility,
		ArmorModification:     hev.Modification(sel.Armor),
		StructureModification: hev.Modification(sel.Structure),
		Weapons:               unit.WeaponRefs(sel.Weapons...),
		Upgrades:              unit.UpgradeRefs(sel.Upgrades...),
	}, nil
}
