package batch

import (
	"github.com/goccy/go-json"
	"github.com/jordanwade90/csvgen"
	"time"
)

// ManifestKey is the key the Runner stores the manifest under.
const ManifestKey = "manifest.json"

// Manifest records what one Run generated.
type Manifest struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
	Combinations   []Combination `json:"combinations"`
}

// Combination records the files generated for one (total size, file count) pair.
type Combination struct {
	TotalSize      uint64             `json:"total_size"`
	Files          int                `json:"files"`
	FileSize       int                `json:"file_size"`
	Dir            string             `json:"dir"`
	Keys           []string           `json:"keys"`
	Tables         []csvgen.TablePlan `json:"tables"`
	ElapsedSeconds float64            `json:"elapsed_seconds"`
}

func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// ReadManifest decodes a manifest written by Marshal.
func ReadManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
