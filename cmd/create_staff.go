package cmd

import (
	"github.com/Govind-619/TurboLeague/models"
	"github.com/spf13/cobra"
)

var staffOpts struct {
	email    string
	password string
	name     string
	role     string
}

var createStaffCmd = &cobra.Command{
	Use:   "create-staff",
	Short: "Create an admin or moderator account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		role, err := models.ParseRole(staffOpts.role)
		if err != nil {
			return err
		}

		cfg, db, err := bootstrap(false)
		if err != nil {
			return err
		}
		container, err := buildContainer(cmd.Context(), cfg, db)
		if err != nil {
			return err
		}

		user, err := container.Auth.CreateStaff(cmd.Context(), staffOpts.email, staffOpts.password, staffOpts.name, role)
		if err != nil {
			return err
		}
		cmd.Printf("Created %s account %s (%s)\n", user.Role, user.Email, user.ID)
		return nil
	},
}

func init() {
	f := createStaffCmd.Flags()
	f.StringVar(&staffOpts.email, "email", "", "account e-mail")
	f.StringVar(&staffOpts.password, "password", "", "account password")
	f.StringVar(&staffOpts.name, "name", "", "display name")
	f.StringVar(&staffOpts.role, "role", string(models.RoleModerator), "admin or moderator")
	_ = createStaffCmd.MarkFlagRequired("email")
	_ = createStaffCmd.MarkFlagRequired("password")
}
