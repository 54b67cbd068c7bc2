package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/zonetick/zonetick/pkg/clock"
	"github.com/zonetick/zonetick/pkg/commands/options"
	"github.com/zonetick/zonetick/pkg/daynight"
	"github.com/zonetick/zonetick/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "zonetick",
		Short: base.Wrap80("A world clock for the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addList(topLevel)
	addSearch(topLevel)
	addFormat(topLevel)
	addVersion(topLevel)
}

// loadSession wires the config, the on-disk prefs, and a session together.
func loadSession() (*clock.Session, store.Persistence, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return clock.New(p), p, cfg, nil
}

func loadDayNight(cfg store.Config) *daynight.Lookup {
	var opts []daynight.Option
	if cfg != nil {
		if u := cfg.DayNightBaseURL(); u != "" {
			opts = append(opts, daynight.WithBaseURL(u))
		}
		if n := cfg.DayNightCacheSize(); n > 0 {
			opts = append(opts, daynight.WithCacheSize(n))
		}
	}
	return daynight.New(opts...)
}
