// fleetdesk/save/state.go
package save

import (
	"os"
	"strings"
)

// SaveFormatSetting is the config.cfg assignment that makes the game write
// plain-text saves.
const SaveFormatSetting = `uset g_save_format "2"`

// PlayerState is the player's progression as read from a save.
type PlayerState struct {
	Level            uint32   `json:"level"`
	Skills           []string `json:"skills"`
	DiscoveredCities []string `json:"discovered_cities"`
	OwnedTrailers    []string `json:"owned_trailers"`
	SaveFormatOK     bool     `json:"save_format_ok"`
}

// Assemble composes a PlayerState from parsed fields and the config check.
func Assemble(raw RawFields, formatOK bool) PlayerState {
	st := PlayerState{
		Level:            raw.Level,
		Skills:           nonNil(raw.Skills),
		DiscoveredCities: nonNil(raw.Cities),
		OwnedTrailers:    nonNil(raw.Trailers),
		SaveFormatOK:     formatOK,
	}
	if st.Level == 0 {
		st.Level = defaultLevel
	}
	return st
}

// FormatCompatible reports whether the global config file at cfgPath sets
// the plain-text save format. An unreadable file counts as not set.
func FormatCompatible(cfgPath string) bool {
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), SaveFormatSetting)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
