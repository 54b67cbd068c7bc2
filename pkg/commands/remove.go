package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zonetick/zonetick/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <zone>",
		Aliases: []string{"remove"},
		Short:   "Stop tracking a timezone",
		Example: `
zonetick rm Asia/Tokyo
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, _, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Remove{Session: s, Zone: args[0]}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
