package main

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-file-compressor/cmd"
	"github.com/deploymenttheory/go-file-compressor/internal/config"
	"github.com/deploymenttheory/go-file-compressor/internal/logger"
)

func main() {
	// Get app configuration file from environment if specified
	configFile := os.Getenv("FILE_COMPRESSOR_CONFIG")

	// 1. Initialize application configuration
	if err := config.Initialize(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging based on application configuration
	if err := logger.Init(logger.Config{
		Debug:     config.Instance.Debug,
		LogFormat: config.Instance.LogFormat,
		LogFile:   config.Instance.LogFile,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// 3. Run the CLI
	cmd.Execute()

	// Ensure logs are flushed before exit
	logger.Sync()
}
