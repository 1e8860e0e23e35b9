package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"shoppinglist-card/internal/app"
	"shoppinglist-card/internal/types"
)

type depsOptions struct {
	Registry string
	Lang     string
	Format   string
}

func newDepsCommand() *cobra.Command {
	opts := depsOptions{}
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check that the custom cards the shopping list card needs are registered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeps(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Registry, "registry", "", "Element registry snapshot path")
	cmd.Flags().StringVar(&opts.Lang, "lang", "en", "Panel language: en or fr")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.PanelFormatText), "Panel format: text or html")
	return cmd
}

func runDeps(ctx context.Context, cmd *cobra.Command, opts depsOptions) error {
	service := newAppService()
	result, err := service.CheckDeps(ctx, app.DepsRequest{
		RegistryPath: resolveString(cmd, opts.Registry, "registry", "registry"),
		Language:     resolveString(cmd, opts.Lang, "lang", "lang"),
		Format:       types.PanelFormat(resolveString(cmd, opts.Format, "panel_format", "format")),
		Output:       cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	if len(result.Missing) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("missing dependencies: %d", len(result.Missing)))
	}
	if result.Available {
		fmt.Fprintln(cmd.OutOrStdout(), "all dependencies registered")
	}
	return nil
}
