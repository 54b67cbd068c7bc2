package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zonetick/zonetick/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the timezone catalog",
		Example: `
zonetick search new
zonetick search tokyo
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := search.Search{Query: strings.Join(args, " ")}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
