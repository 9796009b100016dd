package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/chaddon/internal/config"
)

// ConfigCommand returns the command group for the chaddon.toml file
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the Chaddon configuration file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a starter chaddon.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the starter file to `FILE`",
						Value:   "chaddon.toml",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("output")
					if err := config.InitConfig(path); err != nil {
						return fmt.Errorf("failed to initialize config: %w", err)
					}
					fmt.Printf("Wrote starter configuration to %s\n", path)
					fmt.Println("Edit it, then check it with: chaddon config validate")
					return nil
				},
			},
			{
				Name:  "validate",
				Usage: "Check the configuration file and credential settings",
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return fmt.Errorf("failed to load config: %w", err)
					}
					if err := config.Validate(cfg); err != nil {
						return fmt.Errorf("invalid configuration: %w", err)
					}
					fmt.Printf("Configuration is valid: port %d, scope %s\n",
						cfg.Server.Port, cfg.Chat.Scope)
					return nil
				},
			},
		},
	}
}
