package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/project"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	backupPath := filepath.Join(t.TempDir(), "mouldflow-backup.json")

	// Seed a home directory with customized preferences, then back it up.
	t.Setenv("HOME", t.TempDir())
	cfg := model.DefaultAppConfig()
	cfg.DefaultMaterial = "PP Homopolymer"
	cfg.DefaultCavityCount = 4
	require.NoError(t, project.SaveAppConfig(project.DefaultConfigPath(), cfg))
	require.NoError(t, writeBackup(backupPath))

	// Restore into a fresh home directory.
	t.Setenv("HOME", t.TempDir())
	backup, err := applyBackup(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "PP Homopolymer", backup.Config.DefaultMaterial)

	restored, err := project.LoadAppConfig(project.DefaultConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "PP Homopolymer", restored.DefaultMaterial)
	assert.Equal(t, 4, restored.DefaultCavityCount)

	catalog, _, err := project.LoadOrCreateCatalog()
	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Materials)
	assert.NotEmpty(t, catalog.Machines)

	analysesPath, err := project.DefaultAnalysesPath()
	require.NoError(t, err)
	store, err := project.LoadAnalyses(analysesPath)
	require.NoError(t, err)
	assert.NotNil(t, store.Analyses)
}

func TestApplyBackupRejectsInvalidFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := applyBackup(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
