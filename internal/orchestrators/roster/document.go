package roster

import (
	"encoding/json"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
)

// Document is the roster export format
type Document struct {
	Version    string                   `json:"version"`
	RosterName string                   `json:"rosterName"`
	Roster     []*hev.UnitConfiguration `json:"roster"`
}

// EncodeDocument writes a roster as an indented export document
func EncodeDocument(r *hev.Roster) ([]byte, error) {
	units := r.Units
	if units == nil {
		units = []*hev.UnitConfiguration{}
	}

	data, err := json.MarshalIndent(&Document{
		Version:    hev.RosterVersion,
		RosterName: r.Name,
		Roster:     units,
	}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode roster")
	}
	return data, nil
}

// DecodeDocument parses an export document, keeping only entries that look
// like units or support assets. A unit is an object with an id, a selected
// class, weapon and upgrade arrays and a numeric total tonnage. A support
// asset is an object with an id and isSupportAsset set. skipped counts the
// rest.
func DecodeDocument(data []byte) (doc *Document, skipped int, err error) {
	var raw struct {
		Version    string            `json:"version"`
		RosterName *string           `json:"rosterName"`
		Roster     []json.RawMessage `json:"roster"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, errors.InvalidArgumentf("import data is not a roster document: %v", err)
	}
	if raw.RosterName == nil {
		return nil, 0, errors.InvalidArgument("import data has invalid roster name")
	}
	if raw.Roster == nil {
		return nil, 0, errors.InvalidArgument("import data has invalid roster array")
	}

	doc = &Document{Version: raw.Version, RosterName: *raw.RosterName, Roster: []*hev.UnitConfiguration{}}
	for _, entry := range raw.Roster {
		u, ok := decodeUnit(entry)
		if !ok {
			skipped++
			continue
		}
		doc.Roster = append(doc.Roster, u)
	}

	return doc, skipped, nil
}

func decodeUnit(entry json.RawMessage) (*hev.UnitConfiguration, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return nil, false
	}

	if !isKind(fields["id"], '"') {
		return nil, false
	}

	if string(fields["isSupportAsset"]) == "true" {
		var u hev.UnitConfiguration
		if err := json.Unmarshal(entry, &u); err != nil {
			return nil, false
		}
		return &u, true
	}

	if !isKind(fields["selectedClass"], '{') ||
		!isKind(fields["selectedWeapons"], '[') ||
		!isKind(fields["selectedUpgrades"], '[') ||
		!isKind(fields["totalUnitTonnage"], 'n') {
		return nil, false
	}

	var u hev.UnitConfiguration
	if err := json.Unmarshal(entry, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// isKind reports the JSON kind of a raw value by its first byte; 'n' means
// any number
func isKind(v json.RawMessage, kind byte) bool {
	if len(v) == 0 {
		return false
	}
	first := v[0]
	if kind == 'n' {
		return first == '-' || (first >= '0' && first <= '9')
	}
	return first == kind
}
