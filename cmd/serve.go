package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/chaddon/internal/api"
	"github.com/chaddon/internal/chat/googlechat"
	"github.com/chaddon/internal/config"
	"github.com/chaddon/internal/dispatch"
	"github.com/chaddon/internal/logging"
	"github.com/chaddon/internal/metrics"
)

// ServeCommand returns the CLI command for starting the push receiver
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the Chaddon push receiver",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port for the push receiver",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if c.IsSet("port") {
				cfg.Server.Port = c.Int("port")
			}
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			metrics.Register()

			// A receiver that cannot reply is useless, so credential
			// acquisition failures abort startup.
			sender, err := googlechat.New(context.Background(), googlechat.Config{
				Endpoint:        cfg.Chat.Endpoint,
				CredentialsFile: cfg.Chat.Credentials,
				Scope:           cfg.Chat.Scope,
				RateLimit:       cfg.Chat.RateLimit,
			}, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize Chat client: %w", err)
			}

			dispatcher := dispatch.New(sender, logger)

			fmt.Printf("Starting Chaddon push receiver on port %d...\n", cfg.Server.Port)

			server := api.NewServer(cfg.Server.Port, dispatcher, logger)
			return server.Start()
		},
	}
}
