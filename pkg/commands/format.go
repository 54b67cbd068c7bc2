package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zonetick/zonetick/pkg/runner/format"
)

func addFormat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "format [12|24]",
		Short:     "Toggle or set the hour format",
		ValidArgs: []string{"12", "24"},
		Example: `
zonetick format
zonetick format 24
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, _, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			f := format.Format{Session: s}
			if len(args) > 0 {
				f.Mode = args[0]
			}
			return oo.HandleError(f.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
