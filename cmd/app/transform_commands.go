package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hashcipher/cmd/app/commands"
	"github.com/allisson/hashcipher/internal/app"
	"github.com/allisson/hashcipher/internal/config"
	"github.com/allisson/hashcipher/internal/transform/domain"
	transformUseCase "github.com/allisson/hashcipher/internal/transform/usecase"
)

// cipherKeyEnvVar lets the cipher key stay out of shell history.
const cipherKeyEnvVar = "HASHCIPHER_CIPHER_KEY"

func getTransformCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "transform",
			Usage: "Hash the input, or encrypt it when a cipher is selected",
			Flags: []cli.Flag{
				inputFlag(),
				&cli.StringFlag{
					Name:  "hash",
					Value: "",
					Usage: "Hash algorithm (defaults to sha1, ignored when --cipher is set)",
				},
				&cli.StringFlag{
					Name:    "cipher",
					Aliases: []string{"c"},
					Value:   "",
					Usage:   "Cipher algorithm (e.g., aes-256-gcm); selects cipher mode",
				},
				cipherKeyFlag(false),
				outputFormatFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withTransformUseCase(ctx, func(container *app.Container, useCase transformUseCase.TransformUseCase) error {
					return commands.RunTransform(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO(),
						&domain.Request{
							Input:           cmd.String("input"),
							HashAlgorithm:   cmd.String("hash"),
							CipherAlgorithm: cmd.String("cipher"),
							CipherKey:       cmd.String("cipher-key"),
							OutputFormat:    cmd.String("output-format"),
						},
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "hash",
			Usage: "Compute a message digest of the input",
			Flags: []cli.Flag{
				inputFlag(),
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   domain.DefaultHashAlgorithm,
					Usage:   "Hash algorithm (e.g., sha256, sha3-256, blake2b512)",
				},
				outputFormatFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withTransformUseCase(ctx, func(container *app.Container, useCase transformUseCase.TransformUseCase) error {
					return commands.RunHash(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO(),
						cmd.String("input"),
						cmd.String("algorithm"),
						cmd.String("output-format"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt the input under a key derived from a passphrase",
			Flags: []cli.Flag{
				inputFlag(),
				&cli.StringFlag{
					Name:     "algorithm",
					Aliases:  []string{"alg"},
					Required: true,
					Usage:    "Cipher algorithm (e.g., aes-256-gcm, chacha20-poly1305)",
				},
				cipherKeyFlag(true),
				outputFormatFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withTransformUseCase(ctx, func(container *app.Container, useCase transformUseCase.TransformUseCase) error {
					return commands.RunEncrypt(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO(),
						cmd.String("input"),
						cmd.String("algorithm"),
						cmd.String("cipher-key"),
						cmd.String("output-format"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}

// withTransformUseCase builds a container without metrics, since one-shot commands
// have no scrape endpoint, and hands its transform use case to fn.
func withTransformUseCase(
	ctx context.Context,
	fn func(container *app.Container, useCase transformUseCase.TransformUseCase) error,
) error {
	cfg := config.Load()
	cfg.MetricsEnabled = false

	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.TransformUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize transform use case: %w", err)
	}

	return fn(container, useCase)
}

func inputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "String to transform; '-' reads it from stdin",
	}
}

func cipherKeyFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "cipher-key",
		Aliases:  []string{"k"},
		Required: required,
		Sources:  cli.EnvVars(cipherKeyEnvVar),
		Usage:    "Passphrase the encryption key is derived from",
	}
}

func outputFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output-format",
		Aliases: []string{"o"},
		Value:   "",
		Usage:   "Output encoding: 'hex', 'HEX' or 'base64' (defaults to DEFAULT_OUTPUT_FORMAT)",
	}
}
