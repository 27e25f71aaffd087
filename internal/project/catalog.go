package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// DefaultCatalogPath returns the default file path for the catalog file.
// This is located at ~/.mouldflow/catalog.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mouldflow", "catalog.json"), nil
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with the built-in entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return model.DefaultCatalog(), "", err
	}
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// ExportCatalog exports the catalog to a user-specified JSON file.
func ExportCatalog(path string, cat model.Catalog) error {
	return SaveCatalog(path, cat)
}

// ImportCatalog imports a catalog from a user-specified JSON file,
// merging it with the existing catalog. Duplicate names are skipped and
// imported entries are always marked custom.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	materialNames := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		materialNames[m.Name] = true
	}
	machineNames := make(map[string]bool, len(existing.Machines))
	for _, m := range existing.Machines {
		machineNames[m.Name] = true
	}

	for _, m := range imported.Materials {
		if !materialNames[m.Name] {
			m.IsCustom = true
			existing.Materials = append(existing.Materials, m)
			materialNames[m.Name] = true
		}
	}
	for _, m := range imported.Machines {
		if !machineNames[m.Name] {
			m.IsCustom = true
			existing.Machines = append(existing.Machines, m)
			machineNames[m.Name] = true
		}
	}

	return existing, nil
}
