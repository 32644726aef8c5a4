package main

import (
	"errors"
	"io"
	"os"

	"github.com/woozymasta/checkcoord/internal/config"
	"github.com/woozymasta/checkcoord/internal/logger"
	"github.com/woozymasta/checkcoord/internal/output"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE"   description:"Path to configuration file"`
	Format     string `short:"f" long:"format"  env:"OUTPUT_FORMAT" description:"Output format, overrides config" choice:"json" choice:"yaml"`
	Compact    bool   `long:"compact"           env:"COMPACT"       description:"Print compact JSON"`
}

// errInvalidInput marks runs where at least one coordinate string was rejected.
var errInvalidInput = errors.New("invalid coordinates")

var (
	opts   Options
	cfg    = config.Default()
	stdout io.Writer = os.Stdout
)

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()

		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
		}
		cfg = loaded

		log.Debug().
			Str("config", opts.ConfigFile).
			Str("format", outputFormat()).
			Msg("Configuration loaded")

		return cmd.Execute(args)
	}

	addCommands(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		if errors.Is(err, errInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func outputFormat() string {
	if opts.Format != "" {
		return opts.Format
	}
	return cfg.Output.Format
}

// emit prints v using the configured format.
func emit(v any) error {
	indent := cfg.Output.Indent
	if opts.Compact {
		indent = 0
	}
	return output.Write(stdout, v, outputFormat(), indent)
}
