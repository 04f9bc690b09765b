package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"local-guides/guides-cli/internal/dbhelper"
	"local-guides/guides-cli/internal/domain"

	"github.com/spf13/cobra"
)

func newRestaurantsCmd(opts *rootOptions) *cobra.Command {
	restaurantsCmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List and show restaurants",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally filtered by cuisine and neighborhood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cuisine, _ := cmd.Flags().GetString("cuisine")
			neighborhood, _ := cmd.Flags().GetString("neighborhood")

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			restaurants, err := a.client.FetchRestaurantsByCuisineAndNeighborhood(cmd.Context(), cuisine, neighborhood)
			if err != nil {
				return err
			}
			if len(restaurants) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No restaurants found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCUISINE\tNEIGHBORHOOD\tFAVORITE\tPAGE")
			for _, r := range restaurants {
				favorite := ""
				if r.IsFavorite {
					favorite = "*"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.CuisineType, r.Neighborhood, favorite, dbhelper.URLForRestaurant(r))
			}
			return w.Flush()
		},
	}
	listCmd.Flags().String("cuisine", domain.AllCuisines, "cuisine filter")
	listCmd.Flags().String("neighborhood", domain.AllNeighborhoods, "neighborhood filter")

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a restaurant with its hours and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			restaurant, err := a.client.FetchRestaurant(cmd.Context(), id)
			if err != nil {
				return err
			}
			if restaurant == nil {
				return fmt.Errorf("restaurant %d is not available online or offline", id)
			}
			reviews, err := a.client.FetchReviews(cmd.Context(), id)
			if err != nil {
				return err
			}
			printRestaurant(cmd, restaurant, reviews)
			return nil
		},
	}

	restaurantsCmd.AddCommand(listCmd, showCmd)
	return restaurantsCmd
}

func printRestaurant(cmd *cobra.Command, r *domain.Restaurant, reviews []domain.Review) {
	out := cmd.OutOrStdout()
	title := r.Name
	if r.IsFavorite {
		title += " (favorite)"
	}
	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "  Address:      %s\n", r.Address)
	fmt.Fprintf(out, "  Cuisine:      %s\n", r.CuisineType)
	fmt.Fprintf(out, "  Neighborhood: %s\n", r.Neighborhood)
	if image := dbhelper.ImageURLForRestaurant(*r); image != "" {
		fmt.Fprintf(out, "  Image:        %s\n", image)
	}

	if rows := r.HoursRows(); len(rows) > 0 {
		fmt.Fprintln(out, "  Hours:")
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, row := range rows {
			fmt.Fprintf(w, "    %s\t%s\n", row.Day, row.Time)
		}
		w.Flush()
	}

	if len(reviews) == 0 {
		fmt.Fprintln(out, "  No reviews yet!")
		return
	}
	fmt.Fprintf(out, "  Reviews (%d):\n", len(reviews))
	for _, review := range reviews {
		date := ""
		if !review.CreatedAt.IsZero() {
			date = " on " + review.CreatedAt.Format("January 2, 2006")
		}
		fmt.Fprintf(out, "    #%d %s rated %s%s\n", review.ID, review.Name, stars(review.Rating), date)
		if comments := strings.TrimSpace(review.Comments); comments != "" {
			fmt.Fprintf(out, "      %s\n", comments)
		}
	}
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func newNeighborhoodsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "neighborhoods",
		Short: "List neighborhoods with restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			neighborhoods, err := a.client.FetchNeighborhoods(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.AllNeighborhoods)
			for _, n := range neighborhoods {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newCuisinesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cuisines",
		Short: "List cuisines served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			cuisines, err := a.client.FetchCuisines(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.AllCuisines)
			for _, c := range cuisines {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newFavoriteCmd(opts *rootOptions, favorite bool) *cobra.Command {
	use, short := "favorite [id]", "Mark a restaurant as a favorite"
	if !favorite {
		use, short = "unfavorite [id]", "Remove a restaurant from favorites"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "restaurant id")
			if err != nil {
				return err
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			restaurant, synced, err := a.client.SetFavorite(cmd.Context(), id, favorite)
			if err != nil {
				return err
			}
			if restaurant == nil {
				return fmt.Errorf("restaurant %d is not available online or offline", id)
			}
			if !synced {
				fmt.Fprintf(cmd.OutOrStdout(), "Could not reach the server, %s is unchanged.\n", restaurant.Name)
				return nil
			}
			if favorite {
				fmt.Fprintf(cmd.OutOrStdout(), "%s added to favorites.\n", restaurant.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s removed from favorites.\n", restaurant.Name)
			}
			return nil
		},
	}
}
