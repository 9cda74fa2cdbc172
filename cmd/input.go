package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mach-hub-g1/edugamers-engine/internal/profile"
)

// learnerInput is the JSON document the analyze/tutor/path/risk commands
// read: one learner's id plus their interaction and performance history.
type learnerInput struct {
	LearnerID   string                      `json:"learnerId"`
	History     []profile.InteractionRecord `json:"history"`
	Performance []profile.PerformanceRecord `json:"performance"`
}

// readLearnerInput loads a single-learner input file.
func readLearnerInput(path string) (*learnerInput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var in learnerInput
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	return &in, nil
}

// readBatchInput loads a multi-learner input file (a JSON array).
func readBatchInput(path string) ([]learnerInput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var batch []learnerInput
	if err := json.Unmarshal(b, &batch); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	return batch, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

// toMap converts a value to the map form the store persists.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
