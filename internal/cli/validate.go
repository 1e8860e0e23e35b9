package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shoppinglist-card/internal/app"
)

type validateOptions struct {
	Card string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a card configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Card, "card", "", "Card config path")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	cardPath := resolveString(cmd, opts.Card, "card", "card")
	result, err := service.Validate(ctx, app.ValidateRequest{CardPath: cardPath})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
	fmt.Fprintf(out, "validated: %s\n", cardPath)
	return nil
}
