package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/services"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/spf13/cobra"
)

func newUsersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every registered user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			userService := services.NewUserService(
				postgres.NewUserRepository(env.db),
				infrastructure.NewJWTService(env.cfg.JWT),
				nil,
				nil,
				env.log,
			)
			result, err := userService.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCREATED")
			for _, user := range result.Result {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", user.Id, user.Name, user.Email, user.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	})
	return cmd
}
