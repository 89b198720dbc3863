package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRateCmd(app *App) *cobra.Command {
	var userID, topicID string
	var rating int

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Set a topic confidence rating (-2 excludes, 0 = not learned, 1-5 = confidence)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Profile.RateTopic(ctx, userID, topicID, rating); err != nil {
				return err
			}
			fmt.Printf("Rated topic %s as %d for user %s\n", topicID, rating, userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&topicID, "topic", "", "Topic ID")
	cmd.Flags().IntVar(&rating, "rating", 0, "Confidence rating")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
