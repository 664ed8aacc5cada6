package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chiraleft/chime/internal/chiral"
	"github.com/chiraleft/chime/internal/config"
	"github.com/chiraleft/chime/internal/runner"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	ConfigPath string

	// TokenGenerator allows overriding the run token generator (for testing).
	// If nil, defaults to runner.UUIDv7Token.
	TokenGenerator runner.TokenGenerator
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate operator matrix element files",
		Long: `Generate reduced matrix element files for a chiral EFT operator.

Every order up to and including the requested one is written to its own
file, followed by a cumulative file summing them. Flags override values
from the config file when both are given.

Example:
  chime generate --operator M1 --order n3lo --hw 20 --nmax 10 --jmax 4
  chime generate --config run.yaml --out ./results --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cfg, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML run config")
	cmd.Flags().StringVar(&cfg.Operator, "operator", cfg.Operator, "operator name")
	cmd.Flags().StringVar(&cfg.Order, "order", cfg.Order, "chiral order (lo|nlo|n2lo|n3lo|n4lo|full)")
	cmd.Flags().Float64Var(&cfg.Hw, "hw", cfg.Hw, "oscillator energy in MeV")
	cmd.Flags().IntVar(&cfg.Nmax, "nmax", cfg.Nmax, "oscillator truncation Nmax")
	cmd.Flags().IntVar(&cfg.Jmax, "jmax", cfg.Jmax, "angular momentum truncation Jmax")
	cmd.Flags().IntVar(&cfg.Tmin, "tmin", cfg.Tmin, "lowest isospin transfer rank")
	cmd.Flags().IntVar(&cfg.Tmax, "tmax", cfg.Tmax, "highest isospin transfer rank")
	cmd.Flags().BoolVar(&cfg.Regularize, "regularize", cfg.Regularize, "apply the coordinate space regulator")
	cmd.Flags().Float64Var(&cfg.Regulator, "regulator", cfg.Regulator, "regulator radius in fm")
	cmd.Flags().StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel sector workers")

	return cmd
}

func runGenerate(opts *GenerateOptions, flagCfg config.RunConfig, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	log := slog.New(handler)
	slog.SetDefault(log)

	cfg, err := resolveConfig(opts.ConfigPath, flagCfg, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if verrs := cfg.Validate(); len(verrs) > 0 {
		formatter := &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		}
		return outputConfigErrors(formatter, verrs)
	}

	op, err := chiral.New(cfg.Operator)
	if err != nil {
		return WrapExitError(ExitFailure, "unknown operator", err)
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info("received signal, aborting", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	r := runner.New(cfg, op, log, opts.TokenGenerator)
	result, err := r.Run(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "generation failed", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	for _, f := range result.Files {
		fmt.Fprintln(formatter.Writer, f)
	}
	return nil
}

// resolveConfig merges the config file, if any, with flag overrides. A flag
// the user set explicitly wins over the file value.
func resolveConfig(path string, flagCfg config.RunConfig, cmd *cobra.Command) (config.RunConfig, error) {
	if path == "" {
		return flagCfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.RunConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("operator") {
		cfg.Operator = flagCfg.Operator
	}
	if flags.Changed("order") {
		cfg.Order = flagCfg.Order
	}
	if flags.Changed("hw") {
		cfg.Hw = flagCfg.Hw
	}
	if flags.Changed("nmax") {
		cfg.Nmax = flagCfg.Nmax
	}
	if flags.Changed("jmax") {
		cfg.Jmax = flagCfg.Jmax
	}
	if flags.Changed("tmin") {
		cfg.Tmin = flagCfg.Tmin
	}
	if flags.Changed("tmax") {
		cfg.Tmax = flagCfg.Tmax
	}
	if flags.Changed("regularize") {
		cfg.Regularize = flagCfg.Regularize
	}
	if flags.Changed("regulator") {
		cfg.Regulator = flagCfg.Regulator
	}
	if flags.Changed("out") {
		cfg.OutputDir = flagCfg.OutputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = flagCfg.Workers
	}
	return cfg, nil
}
