package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/internal/engine"
	"github.com/iwvelando/loan-compare/internal/rates"
	"github.com/iwvelando/loan-compare/internal/server"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"github.com/iwvelando/loan-compare/pkg/output"
	"github.com/iwvelando/loan-compare/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to borrower profile file")
	ratesLocation := flag.String("rates", "", "path to rate tables file (defaults to embedded tables)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	maxPrice := flag.Float64("max-price", 0, "solve for the maximum affordable price at this target monthly payment")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of a one-shot comparison")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *ratesLocation, *logLevel)
		return
	}

	// Load the borrower profile to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	provider, err := rates.Load(*ratesLocation)
	if err != nil {
		logger.Fatal("failed to load rate tables",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Validate inputs and display any warnings
	warnings := validation.ValidateInputs(conf.Borrower)
	for _, warning := range warnings {
		logger.Warn("Input warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Fill in state-derived figures for anything the profile omits.
	config.ApplyStateDefaults(logger, &conf.Borrower, provider)

	eng := engine.New(logger, provider)

	if *maxPrice > 0 {
		price := eng.MaxAffordablePrice(*maxPrice, conf.Borrower)
		output.MaxPriceFormat(*maxPrice, price)
		return
	}

	result := eng.Compare(conf.Borrower)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to encode results",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

func runServer(configPath, ratesPath, logLevelOverride string) {
	serverConf, err := server.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", configPath, err)
		return
	}

	logger, err := initializeLogger(serverConf.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	provider, err := rates.Load(ratesPath)
	if err != nil {
		logger.Fatal("failed to load rate tables",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	handler := server.NewHandler(logger, engine.New(logger, provider), serverConf.RequestSizeBytes(), version)

	logger.Info("starting HTTP API server",
		zap.String("op", "main"),
		zap.String("address", serverConf.Address),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(serverConf.Address, handler); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
