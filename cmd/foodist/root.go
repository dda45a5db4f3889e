package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"foodist"
	"foodist/recipe"
	"foodist/tools"
	"foodist/tools/storage"
)

// app carries the state shared by every subcommand for one invocation.
type app struct {
	debug    bool
	otel     bool
	parseLog bool

	store foodist.StoreConfig
	share foodist.ShareConfig

	state    storage.RecipeState
	registry foodist.ToolProvider
	runner   foodist.ToolRunner
	logger   foodist.ParseLogger

	cleanup []func(ctx context.Context) error
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "foodist",
		Short:         "foodist parses, stores and scales recipe ingredients",
		Long:          "foodist turns free-text ingredient lines into structured quantities, keeps recipes in a JSON store and scales them for any number of people.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Dump parsed structures and enable debug logging")
	root.PersistentFlags().BoolVar(&a.otel, "otel", false, "Export traces and metrics over OTLP")
	root.PersistentFlags().BoolVar(&a.parseLog, "parse-log", false, "Write a JSON log of parse attempts to the parse log directory")

	root.AddCommand(
		newParseCmd(a),
		newNewCmd(a),
		newListCmd(a),
		newScaleCmd(a),
		newAddCmd(a),
		newShareCmd(a),
		newToolCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if err := envdecode.Decode(&a.store); err != nil {
		return fmt.Errorf("decode store config: %w", err)
	}
	if err := envdecode.Decode(&a.share); err != nil {
		return fmt.Errorf("decode share config: %w", err)
	}

	if a.store.UsesS3() {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}
		a.state = storage.NewS3RecipeState(s3.NewFromConfig(awsCfg), a.store.S3Bucket, a.store.S3Key)
		slog.Debug("SETUP: S3 recipe state initialized", "bucket", a.store.S3Bucket, "key", a.store.S3Key)
	} else {
		a.state = storage.NewFileRecipeState(a.store.RecipesPath)
		slog.Debug("SETUP: File recipe state initialized", "path", a.store.RecipesPath)
	}

	registry, err := tools.NewRegistry(a.state)
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return err
	}
	a.registry = registry

	if a.otel {
		_, _, shutdown, err := foodist.InitOtel(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
			return err
		}
		a.cleanup = append(a.cleanup, shutdown)
	}
	// without --otel the global providers are no-ops
	runner, err := tools.NewInstrumentedRunner(registry,
		otel.Tracer(foodist.TracerNameCLI), otel.Meter(foodist.TracerNameCLI))
	if err != nil {
		return err
	}
	a.runner = runner

	a.logger = foodist.NewNoOpParseLogger()
	if a.parseLog {
		if err := os.MkdirAll(a.store.ParseLogDir, 0o755); err != nil {
			return fmt.Errorf("create parse log dir: %w", err)
		}
		f, err := os.Create(foodist.NewParseLogFilePath(a.store.ParseLogDir, cmd.Name()))
		if err != nil {
			return fmt.Errorf("create parse log: %w", err)
		}
		fl := foodist.NewFileParseLogger(f)
		a.logger = fl
		a.cleanup = append(a.cleanup, func(context.Context) error {
			return errors.Join(fl.Flush(), f.Close())
		})
	}
	return nil
}

// close flushes the parse log and shuts down telemetry. It runs after the
// command whether or not it failed.
func (a *app) close(ctx context.Context) error {
	var errs []error
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		errs = append(errs, a.cleanup[i](ctx))
	}
	a.cleanup = nil
	return errors.Join(errs...)
}

func (a *app) loadRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	return tools.LoadRecipes(ctx, a.state)
}

func (a *app) saveRecipes(ctx context.Context, recipes []recipe.Recipe) error {
	return tools.SaveRecipes(ctx, a.state, recipes)
}

func (a *app) logParse(entry foodist.ParseLog) {
	if err := a.logger.LogParse(entry); err != nil {
		slog.Error("PARSE: Failed to log parse attempt", "error", err)
	}
}
