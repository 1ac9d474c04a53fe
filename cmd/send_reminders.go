package cmd

import (
	"github.com/spf13/cobra"
)

var sendRemindersCmd = &cobra.Command{
	Use:   "send-reminders",
	Short: "E-mail every player whose registration is not paid",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, db, err := bootstrap(false)
		if err != nil {
			return err
		}
		container, err := buildContainer(cmd.Context(), cfg, db)
		if err != nil {
			return err
		}

		summary, err := container.Reminders.SendReminders(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range summary.Results {
			if !r.Sent {
				cmd.Printf("failed %s: %s\n", r.Email, r.Error)
			}
		}
		cmd.Printf("Reminders sent: %d, failed: %d, total: %d\n", summary.Sent, summary.Failed, summary.Total)
		return nil
	},
}
