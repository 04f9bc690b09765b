package cmd

import (
	"errors"
	"fmt"

	"local-guides/guides-cli/internal/dbhelper"
	"local-guides/guides-cli/internal/domain"

	"github.com/spf13/cobra"
)

const savedWhenOnlineNotice = "Thanks for your review, will be saved when online!"

func newReviewsCmd(opts *rootOptions) *cobra.Command {
	reviewsCmd := &cobra.Command{
		Use:   "reviews",
		Short: "List, add and delete reviews",
	}

	listCmd := &cobra.Command{
		Use:   "list [restaurant-id]",
		Short: "List the reviews of a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			reviews, err := a.client.FetchReviews(cmd.Context(), restaurantID)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reviews yet!")
				return nil
			}
			for _, review := range reviews {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s rated %s\n", review.ID, review.Name, stars(review.Rating))
				if review.Comments != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", review.Comments)
				}
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, _ := cmd.Flags().GetInt("restaurant")
			name, _ := cmd.Flags().GetString("name")
			rating, _ := cmd.Flags().GetInt("rating")
			comments, _ := cmd.Flags().GetString("comments")

			if restaurantID <= 0 {
				return fmt.Errorf("--restaurant is required")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if rating < 1 || rating > 5 {
				return fmt.Errorf("--rating must be between 1 and 5")
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			review, err := a.client.AddReview(cmd.Context(), domain.NewReview{
				RestaurantID: restaurantID,
				Name:         name,
				Rating:       rating,
				Comments:     comments,
			})
			if errors.Is(err, dbhelper.ErrSavedWhenOnline) {
				fmt.Fprintln(cmd.OutOrStdout(), savedWhenOnlineNotice)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review #%d added.\n", review.ID)
			return nil
		},
	}
	addCmd.Flags().Int("restaurant", 0, "restaurant id")
	addCmd.Flags().String("name", "", "your name")
	addCmd.Flags().Int("rating", 0, "rating from 1 to 5")
	addCmd.Flags().String("comments", "", "review text")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "review id")
			if err != nil {
				return err
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			deleted, err := a.client.DeleteReview(cmd.Context(), id)
			if err != nil {
				return err
			}
			if deleted == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Review #%d could not be deleted, try again when online.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review #%d deleted.\n", deleted.ID)
			return nil
		},
	}

	reviewsCmd.AddCommand(listCmd, addCmd, deleteCmd)
	return reviewsCmd
}
