package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
)

// SharedType is the pseudo icon type whose entries are overlaid onto
// every other type at read time. It is accepted on writes but never
// appears as a key in read results.
const SharedType = "shared"

// iconTypes is the fixed set of real icon types, excluding [SharedType].
var iconTypes = map[string]bool{
	"cube":    true,
	"ship":    true,
	"ball":    true,
	"ufo":     true,
	"wave":    true,
	"robot":   true,
	"spider":  true,
	"swing":   true,
	"jetpack": true,
}

var modIDPattern = regexp.MustCompile(`^[a-z0-9_-]+\.[a-z0-9_-]+$`)

// IsIconType reports whether name is a known icon type or [SharedType].
func IsIconType(name string) bool {
	return name == SharedType || iconTypes[name]
}

// IsModID reports whether id matches the namespace.name mod identifier pattern.
func IsModID(id string) bool {
	return modIDPattern.MatchString(id)
}

// ModEntries maps a mod identifier to that mod's customization payload,
// an arbitrary JSON value.
type ModEntries map[string]any

// IconData maps an icon type (or [SharedType]) to its mod entries.
type IconData map[string]ModEntries

// Validate checks the structural invariants of the blob: every key must
// be a known icon type or [SharedType], and every mod identifier must
// match the namespace.name pattern. Callers may submit any subset of
// types; an empty blob is valid.
func (d IconData) Validate() error {
	for iconType, entries := range d {
		if !IsIconType(iconType) {
			return fmt.Errorf("%w: %q", shared.ErrUnknownIconType, iconType)
		}
		for modID := range entries {
			if !IsModID(modID) {
				return fmt.Errorf("%w: %q", shared.ErrInvalidModID, modID)
			}
		}
	}
	return nil
}

// Merged computes the effective entries for one icon type: the stored
// per-type entries with the shared overlay applied on top. For any mod
// identifier present in both, the shared value wins. The receiver is
// never mutated.
func (d IconData) Merged(iconType string) ModEntries {
	merged := make(ModEntries, len(d[iconType])+len(d[SharedType]))
	for modID, value := range d[iconType] {
		merged[modID] = value
	}
	for modID, value := range d[SharedType] {
		merged[modID] = value
	}
	return merged
}

// Types returns the icon types present in the blob, sorted, excluding
// [SharedType].
func (d IconData) Types() []string {
	types := make([]string, 0, len(d))
	for iconType := range d {
		if iconType != SharedType {
			types = append(types, iconType)
		}
	}
	sort.Strings(types)
	return types
}

// DecodeIconData parses a stored JSON blob into [IconData]. An empty
// blob decodes to an empty mapping.
func DecodeIconData(blob []byte) (IconData, error) {
	if len(blob) == 0 {
		return IconData{}, nil
	}

	var data IconData
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("failed to decode icon data: %w", err)
	}
	return data, nil
}

// Encode serializes the blob for storage.
func (d IconData) Encode() ([]byte, error) {
	blob, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode icon data: %w", err)
	}
	return blob, nil
}

// Player is the persistent record for one account: the issued session
// token (empty until first issuance) and the raw icon data blob.
type Player struct {
	AccountID int64
	Token     string
	IconData  []byte
}

// HasToken reports whether a session token has ever been issued for
// this player.
func (p *Player) HasToken() bool {
	return p.Token != ""
}
