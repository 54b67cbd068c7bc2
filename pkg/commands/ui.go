package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zonetick/zonetick/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive world clock",
		Example: `
zonetick ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, p, cfg, err := loadSession()
			if err != nil {
				return err
			}
			i := ui.UI{Session: s, DayNight: loadDayNight(cfg), Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
