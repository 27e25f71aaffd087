package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// AnalysisStore holds the saved analysis history. Results are append-only;
// re-running an analysis adds a new record rather than replacing one.
type AnalysisStore struct {
	Analyses []model.AnalysisResult `json:"analyses"`
}

// NewAnalysisStore returns an empty store.
func NewAnalysisStore() AnalysisStore {
	return AnalysisStore{Analyses: []model.AnalysisResult{}}
}

// Add appends a result to the store.
func (s *AnalysisStore) Add(result model.AnalysisResult) {
	s.Analyses = append(s.Analyses, result)
}

// Find returns the analysis with the given ID.
func (s AnalysisStore) Find(id string) (model.AnalysisResult, error) {
	for _, a := range s.Analyses {
		if a.ID == id {
			return a, nil
		}
	}
	return model.AnalysisResult{}, &model.ReferenceError{Kind: "analysis", Name: id}
}

// ForPart returns every saved analysis of the given part, in saved order.
func (s AnalysisStore) ForPart(partID string) []model.AnalysisResult {
	var out []model.AnalysisResult
	for _, a := range s.Analyses {
		if a.PartID == partID {
			out = append(out, a)
		}
	}
	return out
}

// DefaultAnalysesPath returns the default file path for the analysis store.
// This is located at ~/.mouldflow/analyses.json.
func DefaultAnalysesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mouldflow", "analyses.json"), nil
}

// SaveAnalyses writes the analysis store to a JSON file.
func SaveAnalyses(path string, store AnalysisStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAnalyses reads an analysis store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadAnalyses(path string) (AnalysisStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewAnalysisStore(), nil
		}
		return AnalysisStore{}, err
	}
	var store AnalysisStore
	if err := json.Unmarshal(data, &store); err != nil {
		return AnalysisStore{}, err
	}
	if store.Analyses == nil {
		store.Analyses = []model.AnalysisResult{}
	}
	return store, nil
}

// ExportAnalysis exports a single analysis result to a JSON file (for sharing).
func ExportAnalysis(path string, result model.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportAnalysis imports a single analysis result from a JSON file.
func ImportAnalysis(path string) (model.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	var result model.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.AnalysisResult{}, err
	}
	if result.ID == "" {
		return model.AnalysisResult{}, errors.New("imported analysis has no id")
	}
	return result, nil
}
