package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/wordnum/internal/config"
	"github.com/standardbeagle/wordnum/internal/debug"
	"github.com/standardbeagle/wordnum/internal/errors"
	"github.com/standardbeagle/wordnum/internal/output"
	"github.com/standardbeagle/wordnum/internal/pipeline"
	"github.com/standardbeagle/wordnum/internal/subst"
	"github.com/standardbeagle/wordnum/internal/version"
	"github.com/standardbeagle/wordnum/internal/wordlist"
)

func main() {
	// -v belongs to --verbose here; keep the built-in version flag long-only.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := &cli.App{
		Name:                   "wordnum",
		Usage:                  "Map words (or their suffixes) to numeric substitution strings",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "URL (http://... or https://...) or path to a local word list, one word per line",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "'word': full-word mapping; 'suffix': all numeric suffixes",
			},
			&cli.IntFlag{
				Name:  "minlen",
				Usage: "Minimum length of numeric string to include",
			},
			&cli.IntFlag{
				Name:  "maxlen",
				Usage: "Maximum length of numeric string to include",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of parallel workers (0 = number of CPUs)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output YAML file, '-' for stdout (default: <mode>_<minlen>_<maxlen>.yaml)",
			},
			&cli.BoolFlag{
				Name:  "unordered",
				Usage: "Merge worker results in finish order (faster; per-key word order is unspecified)",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Watch a local input file and regenerate the output on change",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Also print the resulting YAML to stdout",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging to stderr",
			},
		},
		Action: runCommand,
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Configuration management commands",
				Subcommands: []*cli.Command{
					{
						Name:    "init",
						Aliases: []string{"i"},
						Usage:   "Initialize configuration file (.wordnum.toml)",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Usage:   "Output file path",
								Value:   config.DefaultConfigFile,
							},
							&cli.BoolFlag{
								Name:  "force",
								Usage: "Overwrite existing configuration file",
							},
						},
						Action: configInitCommand,
					},
					{
						Name:    "show",
						Aliases: []string{"s"},
						Usage:   "Show the resolved configuration as TOML",
						Action:  configShowCommand,
					},
					{
						Name:    "validate",
						Aliases: []string{"v"},
						Usage:   "Validate configuration file",
						Action:  configValidateCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("minlen") {
		cfg.MinLen = c.Int("minlen")
	}
	if c.IsSet("maxlen") {
		cfg.MaxLen = c.Int("maxlen")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}

	return cfg, nil
}

func runCommand(c *cli.Context) error {
	if c.Bool("debug") {
		debug.SetEnabled(true)
	}

	input := c.String("input")
	if input == "" {
		return errors.NewConfigError("input", "",
			fmt.Errorf("an input URL or file path is required (-i)"))
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if c.Bool("watch") && wordlist.IsURL(input) {
		return errors.NewConfigError("watch", input,
			fmt.Errorf("watch mode requires a local file input"))
	}

	table, err := subst.NewTable(cfg.Table)
	if err != nil {
		return err
	}
	proc, err := subst.NewProcessor(table, cfg.CacheSize)
	if err != nil {
		return err
	}

	pool := pipeline.New(proc, pipeline.Options{
		Workers:   cfg.Workers,
		Mode:      subst.Mode(cfg.Mode),
		MinLen:    cfg.MinLen,
		MaxLen:    cfg.MaxLen,
		Unordered: c.Bool("unordered"),
	})

	dest := cfg.Output
	if dest == "" {
		dest = output.DefaultFilename(subst.Mode(cfg.Mode), cfg.MinLen, cfg.MaxLen)
	}
	verbose := c.Bool("verbose")

	run := func(ctx context.Context) error {
		start := time.Now()

		// Sources are not restartable; open a fresh one per run.
		src, err := wordlist.Open(ctx, input)
		if err != nil {
			return err
		}
		defer src.Close()

		grouping, err := pool.Run(ctx, src)
		if err != nil {
			return err
		}

		if err := output.WriteFile(dest, grouping); err != nil {
			return err
		}
		if verbose && dest != output.Stdout {
			if err := output.Write(os.Stdout, grouping); err != nil {
				return err
			}
		}
		debug.LogPipeline("wrote %d keys (%d words) to %s in %v\n",
			len(grouping), grouping.Words(), dest, time.Since(start))
		return nil
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		return err
	}
	if !c.Bool("watch") {
		return nil
	}

	fmt.Fprintf(os.Stderr, "Watching %s, press Ctrl-C to stop\n", input)
	debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
	return wordlist.Watch(ctx, input, debounce, run)
}

func configInitCommand(c *cli.Context) error {
	dest := c.String("output")
	if !c.Bool("force") {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", dest)
		}
	}

	content, err := config.Default().TOML()
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration file created: %s\n", dest)
	fmt.Printf("Edit the [table] section to customize the substitution map.\n")
	return nil
}

func configShowCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	content, err := cfg.TOML()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Print(string(content))
	return nil
}

func configValidateCommand(c *cli.Context) error {
	path := c.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Printf("Configuration file is valid: %s\n", path)
	fmt.Printf("mode=%s len=[%d,%d] workers=%d table_keys=%d\n",
		cfg.Mode, cfg.MinLen, cfg.MaxLen, cfg.Workers, len(cfg.Table))
	return nil
}
