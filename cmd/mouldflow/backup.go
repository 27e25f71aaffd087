package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Export preferences, catalog and analysis history to one file",
	Args:  cobra.ExactArgs(1),
	Run:   runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Restore preferences, catalog and analysis history from a backup",
	Args:  cobra.ExactArgs(1),
	Run:   runRestore,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runBackup(cmd *cobra.Command, args []string) {
	if err := writeBackup(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Backup written to %s\n", args[0])
}

func runRestore(cmd *cobra.Command, args []string) {
	backup, err := applyBackup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Restored %d material(s), %d machine(s) and %d saved analysis(es)\n",
		len(backup.Catalog.Materials), len(backup.Catalog.Machines), len(backup.Analyses.Analyses))
}

// writeBackup bundles everything the application persists into one JSON file.
func writeBackup(path string) error {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		return err
	}
	analysesPath, err := project.DefaultAnalysesPath()
	if err != nil {
		return err
	}
	store, err := project.LoadAnalyses(analysesPath)
	if err != nil {
		return err
	}
	return project.ExportAllData(path, config, catalog, store)
}

// applyBackup reads a backup file and overwrites the persisted preferences,
// catalog and analysis history with its contents.
func applyBackup(path string) (project.BackupData, error) {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return project.BackupData{}, err
	}
	if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
		return project.BackupData{}, err
	}
	catalogPath, err := project.DefaultCatalogPath()
	if err != nil {
		return project.BackupData{}, err
	}
	if err := project.SaveCatalog(catalogPath, backup.Catalog); err != nil {
		return project.BackupData{}, err
	}
	analysesPath, err := project.DefaultAnalysesPath()
	if err != nil {
		return project.BackupData{}, err
	}
	if err := project.SaveAnalyses(analysesPath, backup.Analyses); err != nil {
		return project.BackupData{}, err
	}
	return backup, nil
}
