// Package scenario reads the scenario.json file that accompanies a
// tsunami inundation dataset and describes how to visualize it.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultDryThreshold is the minimum flow depth, in meters, for a cell to
// count as wet when the scenario does not override it.
const DefaultDryThreshold = 0.001

// Scenario describes one inundation dataset: the simulated event, the
// depth class breaks to contour at and the dry-cell cutoff.
type Scenario struct {
	Name         string    `json:"name"`
	DisplayName  string    `json:"displayName"`
	Author       string    `json:"author"`
	Event        string    `json:"event"`
	Attribution  string    `json:"attribution"`
	DryThreshold float64   `json:"dryThreshold"`
	DepthBreaks  []float64 `json:"depthBreaks"`
	BasemapURL   string    `json:"basemapUrl"`
}

// Read loads a scenario.json from the given path, filling defaults for the
// dry threshold and depth breaks when absent.
func Read(path string) (Scenario, error) {
	var s Scenario

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if s.DryThreshold <= 0 {
		s.DryThreshold = DefaultDryThreshold
	}
	if len(s.DepthBreaks) == 0 {
		s.DepthBreaks = []float64{0.0, 0.5, 1.0, 1.5, 2.0, 3.0, 4.5, 6.0, 9.0}
	}

	return s, nil
}
