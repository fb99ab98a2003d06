package cli

import (
	"errors"

	"volume-tracker/internal/app"
	"volume-tracker/internal/config"
	"volume-tracker/internal/logger"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logPath    string
	background string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "volume-tracker",
		Short: "Personal strength and volume log",
		Long: `Volume Tracker logs workout sets (date, exercise, sets, reps, weight) to a CSV
file and keeps a running training-volume summary. Without a subcommand it opens the window.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.logPath, "log", "l", "", "workout log CSV (default workout_log.csv)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background image (default gym_background.gif)")

	cmd.AddCommand(newSummaryCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the config file and environment, then applies any flags
// set on the command line.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log") {
		if opts.logPath == "" {
			return nil, errors.New("--log must not be empty")
		}
		cfg.Log.Path = opts.logPath
	}
	if cmd.Flags().Changed("background") {
		cfg.Background = opts.background
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	lg := logger.New(cfg.Logging.Level, cfg.Logging.JSON)
	return app.NewApplication(cfg, lg).Run()
}
