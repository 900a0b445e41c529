// Package seed carries the embedded fallback customer dataset, used when the
// remote store is unreachable at startup so the dashboard still renders.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/region-dashboard/app/models"
	"gopkg.in/yaml.v3"
)

//go:embed records.yaml
var recordsYAML []byte

type seedFile struct {
	Records []models.CustomerRecord `yaml:"records"`
}

// Records returns the embedded dataset in file order. File order is load-
// bearing: aggregate insertion order, and with it partial-match tie-breaks,
// follow it.
func Records() ([]models.CustomerRecord, error) {
	var f seedFile
	if err := yaml.Unmarshal(recordsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse seed records: %w", err)
	}
	return f.Records, nil
}
