package cmd

import (
	"github.com/harrison/different/internal/config"
	"github.com/harrison/different/internal/logger"
	"github.com/spf13/cobra"
)

// addDiffFlags registers the report presentation flags shared by diff and check.
func addDiffFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("left-name", "", "Name shown in the left header")
	f.String("right-name", "", "Name shown in the right header")
	f.String("left-marker", "", "Character repeated in the left header (default \"-\")")
	f.String("right-marker", "", "Character repeated in the right header (default \"+\")")
	f.Int("marker-count", 0, "How many times each header marker is repeated (default 4)")
	f.Int("indent-spaces", 0, "Spaces before each line number column (default 2)")
	f.String("left-color", "", "Color for left-only lines (default green)")
	f.String("right-color", "", "Color for right-only lines (default red)")
	f.BoolP("force-color", "f", false, "Always use color, even when not writing to a terminal")
	f.Bool("no-color", false, "Never use color")
}

// changedString returns a pointer to the flag value only if the user set it.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// loadConfig reads --config (or the default location), applies the
// shared flags and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	cfg.MergeWithFlags(changedString(cmd, "log-level"), nil, nil, nil)
	cfg.Diff.MergeWithFlags(
		changedString(cmd, "left-marker"),
		changedString(cmd, "right-marker"),
		changedInt(cmd, "marker-count"),
		changedInt(cmd, "indent-spaces"),
		changedString(cmd, "left-color"),
		changedString(cmd, "right-color"),
		changedBool(cmd, "force-color"),
		changedBool(cmd, "no-color"),
	)

	return cfg, nil
}

// newLogger builds the stderr logger for a validated config. The color
// flags apply to log labels as well as reports.
func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.ConsoleLogger {
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	switch {
	case cfg.Diff.ForceColor:
		log.SetColor(true)
	case cfg.Diff.NoColor:
		log.SetColor(false)
	}
	return log
}
