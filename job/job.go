// fleetdesk/job/job.go
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the job file written inside a profile directory.
const FileName = "fleet_desk_job.json"

// Record describes one job to hand to the game.
type Record struct {
	SourceCity    string `json:"source_city"`
	SourceCompany string `json:"source_company"`
	DestCity      string `json:"dest_city"`
	DestCompany   string `json:"dest_company"`
	Cargo         string `json:"cargo"`
	TrailerType   string `json:"trailer_type"`
}

// Export writes rec as indented JSON to <profileDir>/fleet_desk_job.json,
// replacing any existing file, and returns the path written.
func Export(profileDir string, rec Record) (string, error) {
	path := filepath.Join(profileDir, FileName)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding job: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
