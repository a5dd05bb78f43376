package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/contre95/namer/src/features/config"
	"github.com/contre95/namer/src/features/logging"
	"github.com/contre95/namer/src/features/naming"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigPath = "namer.yaml"

var version = "dev"

// app is the state shared by every subcommand, filled in before each run.
type app struct {
	v        *viper.Viper
	cfgFile  string
	config   *config.Manager
	logger   *slog.Logger
	registry *prometheus.Registry
	naming   *naming.Service
}

// NewRootCmd builds the namer command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "namer",
		Short: "Parse and format structured file names",
		Long: `namer reads names like "~01~02 Title{a=Author;d=2020-01-02}.ext", made of an
optional part or date prefix, a title, an attribute block and a suffix, and
writes them back in canonical form. It never touches the files named.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.report,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./"+defaultConfigPath+")")
	root.PersistentFlags().String("log-level", "",
		"log level: debug, info, warn or error")

	_ = a.v.BindPFlag("logger.level", root.PersistentFlags().Lookup("log-level"))
	a.v.SetEnvPrefix("NAMER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindEnv("config")

	root.AddCommand(
		newInspectCmd(a),
		newCanonCmd(a),
		newRulesCmd(a),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.cfgFile
	if path == "" {
		path = a.v.GetString("config")
	}
	if path == "" {
		path = defaultConfigPath
	}

	manager, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level := a.v.GetString("logger.level"); level != "" && level != manager.Get().Logger.Level {
		next := *manager.Get()
		next.Logger.Level = level
		if err := manager.Update(&next); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", level, err)
		}
	}
	a.config = manager
	a.logger = logging.SetupLogger(manager, cmd.ErrOrStderr())

	var metrics *naming.Metrics
	if manager.Get().Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		if metrics, err = naming.NewMetrics(a.registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	a.naming = naming.NewService(manager, a.logger, metrics)
	a.logger.Debug("Configuration loaded", "path", path, "date_format", manager.Rules().DateFormat())
	return nil
}

// report logs the parse counters once a command finishes.
func (a *app) report(*cobra.Command, []string) {
	if a.registry == nil {
		return
	}
	totals, err := naming.Totals(a.registry)
	if err != nil {
		a.logger.Warn("Failed to gather metrics", "error", err)
		return
	}
	a.logger.Info("Parse counters",
		"parsed", totals["namer_parse_total"],
		"failed", totals["namer_parse_errors_total"],
	)
}
