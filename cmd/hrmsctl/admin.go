package main

import (
	"fmt"

	"github.com/aussiebroadwan/hrms/internal/hrms/app"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/pkg/cryptox"
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	var acct service.AdminAccount
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator, generating a password when none is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			generated := acct.Password == ""
			if generated {
				if acct.Password, err = cryptox.GeneratePassword(16); err != nil {
					return err
				}
			}

			st, err := app.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			employees := &service.EmployeeService{Store: st, Hasher: cryptox.NewHasher(cfg.Pepper)}
			bootstrap := &service.BootstrapService{Store: st, Employees: employees}

			e, err := bootstrap.CreateAdmin(cmd.Context(), acct)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created admin %s <%s>\n", e.ID, e.Email)
			if generated {
				fmt.Fprintf(out, "password: %s\n", acct.Password)
			}
			return nil
		},
	}
	create.Flags().StringVar(&acct.Name, "name", "Administrator", "display name")
	create.Flags().StringVar(&acct.Email, "email", "", "login email")
	create.Flags().StringVar(&acct.Password, "password", "", "login password (generated when empty)")
	_ = create.MarkFlagRequired("email")

	admin.AddCommand(create)
	return admin
}
