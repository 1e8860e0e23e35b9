package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shoppinglist-card/internal/app"
	"shoppinglist-card/internal/types"
)

type projectOptions struct {
	States       string
	Card         string
	Previous     string
	ShoppingList bool
	Locale       string
	GroupBy      string
	SortBy       []string
	Format       string
}

func newProjectCommand() *cobra.Command {
	opts := projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Filter, sort and group products from a state snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProject(cmd.Context(), cmd, opts)
		},
	}
	addProjectFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.GroupBy, "group-by", "", "Group by attribute (overrides card)")
	return cmd
}

func addProjectFlags(cmd *cobra.Command, opts *projectOptions) {
	cmd.Flags().StringVar(&opts.States, "states", "", "State snapshot path (JSON or YAML)")
	cmd.Flags().StringVar(&opts.Card, "card", "", "Card config path")
	cmd.Flags().StringVar(&opts.Previous, "previous", "", "Previous state snapshot; report whether output changed")
	cmd.Flags().BoolVar(&opts.ShoppingList, "shopping-list", false, "Only products with a quantity on the card's shopping list")
	cmd.Flags().StringVar(&opts.Locale, "locale", "", "Collation locale for sorting")
	cmd.Flags().StringSliceVar(&opts.SortBy, "sort-by", nil, "Sort attributes (overrides card)")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format: text, json or yaml")
}

func projectRequest(cmd *cobra.Command, opts projectOptions) app.ProjectRequest {
	return app.ProjectRequest{
		StatesPath:   resolveString(cmd, opts.States, "states", "states"),
		CardPath:     resolveString(cmd, opts.Card, "card", "card"),
		ShoppingList: resolveBool(cmd, opts.ShoppingList, "shopping_list", "shopping-list"),
		Locale:       resolveString(cmd, opts.Locale, "locale", "locale"),
		GroupBy:      opts.GroupBy,
		SortBy:       opts.SortBy,
	}
}

func runProject(ctx context.Context, cmd *cobra.Command, opts projectOptions) error {
	service := newAppService()
	req := projectRequest(cmd, opts)
	format := types.OutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	out := cmd.OutOrStdout()

	if opts.Previous != "" {
		result, err := service.Refresh(ctx, app.RefreshRequest{
			PreviousStatesPath: opts.Previous,
			Project:            req,
		})
		if err != nil {
			return err
		}
		if !result.Changed {
			fmt.Fprintln(out, "unchanged")
			return nil
		}
		return service.Writer.WriteProjection(out, result.Projection, format)
	}

	result, err := service.Project(ctx, req)
	if err != nil {
		return err
	}
	return service.Writer.WriteProjection(out, result.Projection, format)
}
