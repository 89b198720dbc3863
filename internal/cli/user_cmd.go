package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage learners",
	}
	cmd.AddCommand(newUserAddCmd(app), newUserListCmd(app))
	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a learner",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Profile.CreateUser(context.Background(), name)
			if err != nil {
				return err
			}
			fmt.Printf("Created user %s (%s)\n", u.Name, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active learners",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Profile.ListUsers(context.Background())
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Printf("%s  %s\n", u.ID, u.Name)
			}
			return nil
		},
	}
}
