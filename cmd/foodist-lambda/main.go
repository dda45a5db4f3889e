package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"

	"foodist"
	"foodist/ingredient"
	"foodist/tools"
	"foodist/tools/storage"
)

type Params struct {
	Tool  string         `json:"tool"`
	Input map[string]any `json:"input"`
}

type Results struct {
	Output  map[string]any `json:"output,omitempty"`
	Message string         `json:"message,omitempty"`
}

type handler struct {
	runner foodist.ToolRunner
	logger foodist.ParseLogger
}

func (h *handler) handle(ctx context.Context, params Params) (Results, error) {
	if params.Tool == "" {
		return Results{}, fmt.Errorf("missing tool name")
	}

	output, err := h.runner.Run(ctx, params.Tool, params.Input)
	if text, ok := params.Input["text"].(string); ok {
		entry := foodist.NewParseLog(text, ingredient.Ingredient{}, err)
		if err == nil {
			entry.Name, _ = output["name"].(string)
			entry.Quantity, _ = output["quantity"].(string)
			entry.Discarded, _ = output["discarded"].(string)
			if added, ok := output["ingredient"].(map[string]any); ok {
				entry.Name, _ = added["name"].(string)
				entry.Quantity, _ = added["quantity"].(string)
				entry.Discarded, _ = added["discarded"].(string)
			}
			if entry.Discarded != "" {
				slog.Warn("PARSE: Quantity on both sides of the name, keeping the leading one",
					"input", text, "discarded", entry.Discarded)
			}
		}
		if lerr := h.logger.LogParse(entry); lerr != nil {
			slog.Error("PARSE: Failed to log parse attempt", "error", lerr)
		}
	}
	if err != nil {
		slog.Error("RESULT: Error running tool", "tool", params.Tool, "error", err)
		if isParseError(err) {
			// parse failures are a user-facing result, not a function error
			return Results{Message: ingredient.Message(err)}, nil
		}
		return Results{}, err
	}

	return Results{Output: output}, nil
}

func isParseError(err error) bool {
	return errors.Is(err, ingredient.ErrNoValidMatch) ||
		errors.Is(err, ingredient.ErrNoIngredientName) ||
		errors.Is(err, ingredient.ErrInvalidUnit) ||
		errors.Is(err, ingredient.ErrInvalidFormat)
}

func main() {
	ctx := context.Background()

	var storeConfig foodist.StoreConfig
	if err := envdecode.Decode(&storeConfig); err != nil {
		slog.Error("SETUP: Failed to decode store config", "error", err)
		return
	}
	if !storeConfig.UsesS3() {
		slog.Error("SETUP: Missing S3 config: FOODIST_S3_BUCKET must be set")
		return
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to load AWS config", "error", err)
		return
	}
	rs := storage.NewS3RecipeState(s3.NewFromConfig(awsCfg), storeConfig.S3Bucket, storeConfig.S3Key)

	registry, err := tools.NewRegistry(rs)
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return
	}
	slog.Info("SETUP: S3 recipe state initialized", "bucket", storeConfig.S3Bucket, "key", storeConfig.S3Key)

	tracerProvider, meterProvider, otelShutdown, err := foodist.InitOtel(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
		return
	}

	runner, err := tools.NewInstrumentedRunner(registry,
		tracerProvider.Tracer(foodist.TracerNameLambda),
		meterProvider.Meter(foodist.TracerNameLambda))
	if err != nil {
		slog.Error("SETUP: Failed to create instrumented runner", "error", err)
		return
	}

	h := &handler{runner: runner, logger: foodist.NewStdoutParseLogger()}

	fn := func(ctx context.Context, params Params) (Results, error) {
		res, err := h.handle(ctx, params)
		// flush before the execution environment freezes
		if ferr := tracerProvider.ForceFlush(ctx); ferr != nil {
			slog.Error("SETUP: Failed to flush traces", "error", ferr)
		}
		if ferr := meterProvider.ForceFlush(ctx); ferr != nil {
			slog.Error("SETUP: Failed to flush metrics", "error", ferr)
		}
		return res, err
	}

	lambda.StartWithOptions(fn, lambda.WithEnableSIGTERM(func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
		}
	}))
}
