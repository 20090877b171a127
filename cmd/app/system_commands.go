package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hashcipher/cmd/app/commands"
	"github.com/allisson/hashcipher/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, config.Load(), version)
			},
		},
		{
			Name:  "algorithms",
			Usage: "List the documented choices and every accepted algorithm name",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunAlgorithms(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}
