package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/quill"
	"github.com/phanxgames/quill/internal/config"
	qlog "github.com/phanxgames/quill/internal/log"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

func newRootCmd(version string) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "quill",
		Short:         "Tokenize tagged dialogue and run audio cue scripts",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (YAML)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")
	pf.String("log-file", "", "also write JSON logs to this rotated file")
	_ = a.v.BindPFlag("config", pf.Lookup("config"))
	_ = a.v.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("logging.file", pf.Lookup("log-file"))

	root.AddCommand(newTokenizeCmd(a), newTagsCmd(), newCueCmd(a), newConfigCmd(a))
	return root
}

// init resolves the configuration from defaults, the config file, QUILL_*
// environment variables and flags, in increasing precedence.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.v, a.v.GetString("config"))
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, a.closer = qlog.New(stderr, qlog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	quill.SetLogger(a.logger)
	return nil
}

// newScheduler builds a scheduler from the loaded config.
func (a *app) newScheduler() *quill.Scheduler {
	s := quill.NewScheduler()
	s.AutoRegister = a.cfg.Scheduler.AutoRegister
	s.SetDebug(a.cfg.Scheduler.Debug)
	return s
}

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the supported text tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), quill.TagHelp())
			return err
		},
	}
}
