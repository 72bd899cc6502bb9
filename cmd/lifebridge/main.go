package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/config"
	"github.com/lifebridge/lifebridge/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every command of one invocation
type app struct {
	debug   bool
	envFile string
	config  config.AppConfig
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), config: config.DefaultAppConfig()}

	root := &cobra.Command{
		Use:   "lifebridge",
		Short: "Japanese government benefit simulator",
		Long: `LifeBridge estimates which Japanese government benefits a household
qualifies for and how much they pay: birth allowance, child allowance,
parental leave benefit, unemployment benefit and child medical subsidy.

Profiles are YAML files; see "lifebridge simulate --help".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging of every rule evaluation")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Environment file to load before reading configuration")

	root.AddCommand(
		simulateCmd(a),
		validateCmd(a),
		recommendCmd(a),
		compareCmd(a),
		templatesCmd(a),
		serveCmd(a),
		profilesCmd(a),
		exploreCmd(a),
		versionCmd(),
	)
	return root
}

// init loads configuration and builds the logger
func (a *app) init() error {
	cfg, err := config.LoadAppConfig(a.envFile)
	if err != nil {
		return err
	}
	a.config = cfg

	logger, err := logging.New(cfg.LogLevel, a.debug)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// newEngine builds a calculation engine configured for this invocation.
// orderByAge forces age ordering of children on top of the configuration.
func (a *app) newEngine(orderByAge bool) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(a.logger))
	engine.Debug = a.debug
	engine.OrderChildrenByAge = orderByAge || a.config.OrderChildrenByAge
	return engine
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lifebridge %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version + " " + bi.GoVersion
	}
	return ""
}

// profileTitle names a loaded profile for display
func profileTitle(name, filename string) string {
	if name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

func writeOutput(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
