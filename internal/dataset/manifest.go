package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is written next to the CSVs and records provenance for the run.
const ManifestFile = "manifest.yaml"

// Manifest describes one generation run: which seed produced it, when, and
// how many rows each table file holds. The loader cross-checks these counts
// after ingestion.
type Manifest struct {
	RunID       string         `yaml:"run_id"`
	Seed        int64          `yaml:"seed"`
	GeneratedAt string         `yaml:"generated_at"` // RFC 3339
	Tables      map[string]int `yaml:"tables"`
}

// WriteManifest serializes the manifest to dir/manifest.yaml.
func WriteManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads dir/manifest.yaml. A missing file is reported via
// os.IsNotExist on the returned error so callers can treat it as optional.
func ReadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
