package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zonetick/zonetick/pkg/commands/options"
	"github.com/zonetick/zonetick/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <city or zone>",
		Short: "Track a new timezone",
		Example: `
zonetick add tokyo
zonetick add America/New_York
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, _, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{Session: s, Query: strings.Join(args, " ")}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
