package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
)

func newGroupsCommand() *cobra.Command {
	opts := projectOptions{}
	cmd := &cobra.Command{
		Use:   "groups <attribute>",
		Short: "Group products by an attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GroupBy = strings.TrimSpace(args[0])
			if opts.GroupBy == "" {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("group attribute must not be empty")
			}
			return runProject(cmd.Context(), cmd, opts)
		},
	}
	addProjectFlags(cmd, &opts)
	return cmd
}
