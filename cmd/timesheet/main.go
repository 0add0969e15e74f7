package main

import (
	"fmt"
	"os"

	"github.com/skywardcloud/projectmgt/internal/api"
	"github.com/skywardcloud/projectmgt/internal/cli"
	"github.com/skywardcloud/projectmgt/internal/config"
)

func main() {
	// Load configuration: defaults, config file, environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository; schema is ensured on open
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create API instance and hand it to the CLI
	apiInstance := api.New(repo)

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
