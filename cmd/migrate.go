package cmd

import (
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, _, err := bootstrap(false); err != nil {
			return err
		}
		utils.LogInfo("Database migration completed")
		cmd.Println("Database migration completed")
		return nil
	},
}
