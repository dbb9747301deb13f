package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"shippix/cmd"
	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/domain/model/validation"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "shippix",
	Short:         "Shippix shipping front office",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web pages and the JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	estimateWeight float64
	estimateCmd    = &cobra.Command{
		Use:   "estimate",
		Short: "Quote the shipping fee of a package",
		Args:  cobra.NoArgs,
		RunE:  runEstimate,
	}
)

var (
	validateForm   string
	validateValues []string
	validateCmd    = &cobra.Command{
		Use:   "validate",
		Short: "Check form values against a form's rules",
		Example: `  shippix validate --form create-order --set customerName="John Doe" --set totalWeight=5.5
  shippix validate --form login --set username=john --set password=secret1`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Env file loaded before reading the environment")

	estimateCmd.Flags().Float64Var(&estimateWeight, "weight", 0, "Package weight in kg")
	_ = estimateCmd.MarkFlagRequired("weight")

	validateCmd.Flags().StringVar(&validateForm, "form", "", "Form name ("+strings.Join(validation.Names(), ", ")+")")
	validateCmd.Flags().StringArrayVar(&validateValues, "set", nil, "Field value as name=value, repeatable")
	_ = validateCmd.MarkFlagRequired("form")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("shippix: %v", err)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func runServe(c *cobra.Command, _ []string) error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close resources", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", configs.HTTPPort, "handoff_store", configs.HandoffStore)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runEstimate(c *cobra.Command, _ []string) error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, newLogger(configs.LogLevel))
	if err != nil {
		return err
	}
	defer app.Close()

	command, err := commands.NewEstimateShippingCommand(estimateWeight)
	if err != nil {
		return err
	}

	estimate, err := app.CreateEstimateShippingCommandHandler().Handle(c.Context(), command)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.OutOrStdout(), "Weight:   %.2f kg\nDistance: %.2f km\nCost:     %s\n",
		estimate.WeightKg(), estimate.DistanceKm(), estimate.Cost())
	return nil
}

func runValidate(c *cobra.Command, _ []string) error {
	form, ok := validation.Lookup(validateForm)
	if !ok {
		return fmt.Errorf("unknown form %q, expected one of %s", validateForm, strings.Join(validation.Names(), ", "))
	}

	values := make(validation.Values, len(validateValues))
	for _, pair := range validateValues {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("--set %q: expected name=value", pair)
		}
		values[name] = value
	}

	problems := form.Check(values)
	out := c.OutOrStdout()
	if problems.Empty() {
		fmt.Fprintf(out, "%s: valid (complete: %t)\n", form.Name, form.IsComplete(values))
		return nil
	}

	names := problems.Fields()
	for _, name := range names {
		fmt.Fprintf(out, "%s: %s\n", name, problems[name])
	}
	return fmt.Errorf("%s: %d invalid field(s)", form.Name, len(names))
}
