package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/commands/options"
	"tableflip.dev/alpha/pkg/config"
	"tableflip.dev/alpha/pkg/gateway"
	"tableflip.dev/alpha/pkg/holiday"
	"tableflip.dev/alpha/pkg/logger"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alpha",
		Short: base.Wrap80("The parenting co-pilot: schedules, staff, and AI guidance on the command line."),
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
	addGet(topLevel)
	addComplete(topLevel)
	addChildren(topLevel)
	addStaff(topLevel)
	addChat(topLevel)
	addGuide(topLevel)
	addNearby(topLevel)
	addNotifications(topLevel)
	addVersion(topLevel)
}

// newService assembles the demo-seeded service from configuration: a Gemini
// gateway when a key is present, the offline one otherwise.
func newService(ctx context.Context) (*app.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel)

	var ai gateway.Gateway = gateway.Static{}
	if cfg.APIKey != "" {
		gem, err := gateway.NewGemini(ctx, cfg.APIKey, cfg.Model, log)
		if err != nil {
			log.WithError(err).Warn("falling back to offline gateway")
		} else {
			ai = gem
		}
	}

	svc, err := app.NewDemo(ai, gateway.StaticLocator{Lat: cfg.Latitude, Lng: cfg.Longitude}, log)
	if err != nil {
		return nil, err
	}

	if cfg.HolidaysPath != "" {
		reg, err := holiday.Load(cfg.HolidaysPath)
		if err != nil {
			log.WithError(err).Warn("using built-in holiday table")
		} else {
			svc.Holidays = reg
		}
	}
	return svc, nil
}
