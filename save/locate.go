// fleetdesk/save/locate.go
package save

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoSave is returned when no save slot in a profile can be read.
var ErrNoSave = errors.New("Couldn't read save. Make a quick save in-game.")

// Slot is a save slot the game writes inside a profile directory.
type Slot struct {
	Name string
	Rel  string
}

// Slots lists the save slots in the order they are tried.
var Slots = []Slot{
	{"quicksave", filepath.Join("save", "quick", "game.sii")},
	{"autosave", filepath.Join("save", "autosave", "game.sii")},
	{"autosave_job", filepath.Join("save", "autosave_job", "game.sii")},
}

// Snapshot is the text of one save slot.
type Snapshot struct {
	Slot string
	Path string
	Text string
}

// Locate returns the first slot under profileDir that exists and is readable.
// Later slots are not consulted once one is read.
func Locate(profileDir string) (Snapshot, error) {
	for _, s := range Slots {
		p := filepath.Join(profileDir, s.Rel)
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return Snapshot{Slot: s.Name, Path: p, Text: string(data)}, nil
	}
	return Snapshot{}, ErrNoSave
}
