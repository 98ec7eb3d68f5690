package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/different/internal/check"
	"github.com/harrison/different/internal/config"
	"github.com/harrison/different/internal/display"
	"github.com/harrison/different/internal/logger"
	"github.com/harrison/different/internal/models"
	"github.com/harrison/different/internal/parser"
	"github.com/harrison/different/internal/templates"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <suite.yaml>",
		Short: "Run a suite of checks against generated output",
		Long: `Run every check in a YAML suite, in order, against a base directory.

Check types:
  - file:      existence, exact contents, rendered template, fragments
  - directory: existence and required children
  - command:   exit code, stdout and stderr
  - var_set:   a variable is set, optionally to a given value

Variables come from, lowest precedence first: environment variables
matching --env-prefix (prefix stripped), the suite's variables section,
and --var key=value flags.

Exit code: 0 if every check passed, 1 otherwise`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCheck,
		SilenceUsage: true,
	}

	cmd.Flags().String("base", "", "Directory checks run against (default: the suite's directory)")
	cmd.Flags().StringArray("var", nil, "Set a variable as key=value (repeatable)")
	cmd.Flags().String("templates", "", "Directory templates are loaded from")
	cmd.Flags().String("env-prefix", "", "Expose environment variables with this prefix as variables")
	cmd.Flags().Bool("no-print-diffs", false, "Do not print a diff report for mismatched text")
	addDiffFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	suitePath := args[0]
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	var printDiffs *bool
	if cmd.Flags().Changed("no-print-diffs") {
		noPrint, _ := cmd.Flags().GetBool("no-print-diffs")
		v := !noPrint
		printDiffs = &v
	}
	cfg.MergeWithFlags(nil, printDiffs, changedString(cmd, "templates"), changedString(cmd, "env-prefix"))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log := newLogger(cmd, cfg)

	suite, err := parser.ParseFile(suitePath)
	if err != nil {
		return err
	}

	base, _ := cmd.Flags().GetString("base")
	if base == "" {
		base = filepath.Dir(suitePath)
	}

	flagVars, _ := cmd.Flags().GetStringArray("var")
	vars, err := collectVariables(cfg.EnvPrefix, os.Environ(), suite.Variables, flagVars)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("%d variable(s) available", len(vars)))

	tpl, err := loadTemplates(cfg, filepath.Dir(suitePath), log)
	if err != nil {
		return err
	}

	settings, err := cfg.DiffSettings()
	if err != nil {
		return err
	}
	settings.LeftName = changedString(cmd, "left-name")
	settings.RightName = changedString(cmd, "right-name")
	policy, err := settings.ColorPolicy()
	if err != nil {
		return err
	}
	useColor := policy.Enabled(out)

	ev := check.NewEvaluator(base, vars, nil)
	if tpl != nil {
		ev.Templates = tpl
	}
	ev.PrintDiffs = cfg.PrintDiffs
	ev.Diffs = out
	ev.DiffSettings = settings
	ev.ColorPolicy = policy
	ev.Logger = log

	warnSuite(out, suite, useColor)

	runner := check.NewRunner(ev, out)
	runner.Color = useColor

	report, runErr := runner.Run(cmd.Context(), suite.Checks)
	display.PrintSummary(out, report, useColor)
	if runErr != nil {
		log.LogError(runErr.Error())
		return runErr
	}

	if !report.OK() {
		return fmt.Errorf("check failed: %d of %d check(s) failed", report.Failed, len(suite.Checks))
	}
	return nil
}

// collectVariables merges, lowest precedence first, prefixed environment
// variables, suite variables and key=value flags.
func collectVariables(envPrefix string, environ []string, suiteVars map[string]string, flagVars []string) (map[string]string, error) {
	vars := make(map[string]string)

	if envPrefix != "" {
		for _, kv := range environ {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			if name, found := strings.CutPrefix(key, envPrefix); found && name != "" {
				vars[name] = value
			}
		}
	}

	for k, v := range suiteVars {
		vars[k] = v
	}

	for _, kv := range flagVars {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", kv)
		}
		vars[key] = value
	}

	return vars, nil
}

// loadTemplates opens the configured template directory. Without one, a
// "templates" directory next to the suite is used when it exists.
func loadTemplates(cfg *config.Config, suiteDir string, log *logger.ConsoleLogger) (*templates.Loader, error) {
	dir := cfg.TemplateDir
	if dir == "" {
		candidate := filepath.Join(suiteDir, "templates")
		if info, err := os.Stat(candidate); err != nil || !info.IsDir() {
			log.LogDebug("no template directory configured")
			return nil, nil
		}
		dir = candidate
	}

	loader, err := templates.NewLoader(dir)
	if err != nil {
		return nil, err
	}
	log.LogDebug(fmt.Sprintf("loaded %d template(s) from %s", len(loader.Names()), dir))
	return loader, nil
}

// warnSuite prints warnings for suites that cannot pass as written.
func warnSuite(out io.Writer, suite *models.Suite, useColor bool) {
	if len(suite.Checks) == 0 {
		display.Warning{
			Title:      "Suite contains no checks",
			Suggestion: "Add entries under the checks: key",
		}.Display(out, useColor)
		return
	}

	var httpChecks []string
	for _, c := range suite.Checks {
		if c.Type.Kind() == models.KindHTTP {
			httpChecks = append(httpChecks, c.Name)
		}
	}
	if len(httpChecks) > 0 {
		w := display.WarnChecks("HTTP checks are not supported and will stop the run", httpChecks)
		w.Suggestion = "Replace them with a command check, e.g. cmd: curl -fsS <url>"
		w.Display(out, useColor)
	}
}
