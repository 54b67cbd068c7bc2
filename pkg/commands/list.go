package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zonetick/zonetick/pkg/commands/options"
	"github.com/zonetick/zonetick/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the tracked clocks",
		Example: `
zonetick list
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, cfg, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{Session: s, DayNight: loadDayNight(cfg)}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
