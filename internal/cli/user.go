package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
)

func newUserCmd(connector Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage operator accounts",
	}
	cmd.AddCommand(newUserCreateCmd(connector))
	return cmd
}

func newUserCreateCmd(connector Connector) *cobra.Command {
	var (
		email    string
		name     string
		password string
		role     string
		tenant   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an operator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := service.CreateUserInput{
				Email:    email,
				Password: password,
				Role:     domain.RoleName(role),
			}
			if name != "" {
				input.FullName = &name
			}
			if tenant != "" {
				tenantID, err := uuid.Parse(tenant)
				if err != nil {
					return fmt.Errorf("invalid --tenant: %w", err)
				}
				input.TenantID = &tenantID
			}

			rt, err := connector(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			user, err := rt.Auth.CreateUser(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", user.Role, user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "super_admin, admin, staff or customer")
	cmd.Flags().StringVar(&tenant, "tenant", "", "Tenant id, required unless role is super_admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
