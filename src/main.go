package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"rollbook/src/audit"
	"rollbook/src/console"
	"rollbook/src/helpers"
	"rollbook/src/settings"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("Rollbook - a flat-file student record manager")
	log.Println("\nUsage:")
	log.Println("  rollbook [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nExamples:")
	log.Println("  rollbook --datadir=/data")
	log.Println("  rollbook --datadir=./records --auditlog=./records/log.txt")
}

func main() {
	// Get the global settings instance
	args := settings.GetSettings()

	// Define command line flags that map to the Arguments struct
	flag.StringVar(&args.DataDir, "datadir", args.DataDir, "Directory holding the collection files")
	flag.StringVar(&args.AuditLogFile, "auditlog", args.AuditLogFile, "Path of the append-only audit log")
	flag.StringVar(&args.ConfigFile, "config", "", "Path to YAML config file")
	flag.BoolVar(&args.Verbose, "verbose", args.Verbose, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", args.Debug, "Enable debug mode")

	// Config file first, env second, flags last so the command line
	// always wins.
	flag.Parse()

	if args.ConfigFile != "" {
		if err := args.ApplyConfigFile(args.ConfigFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
			printUsage()
			os.Exit(1)
		}
	}
	args.ApplyEnv()

	// Re-apply any explicitly set flags over file and env values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "datadir":
			args.DataDir = f.Value.String()
		case "auditlog":
			args.AuditLogFile = f.Value.String()
		case "debug":
			args.Debug = f.Value.String() == "true"
		case "verbose":
			args.Verbose = f.Value.String() == "true"
		}
	})

	// Validate the arguments
	if err := validateArguments(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		printUsage()
		os.Exit(1)
	}

	if args.Verbose {
		log.Println("Rollbook starting with options:")
		log.Printf("  Data Directory: %s\n", args.DataDir)
		log.Printf("  Audit Log: %s\n", args.AuditLogFile)
		log.Printf("  Verbose: %v\n", args.Verbose)
		log.Printf("  Config File: %s\n", args.ConfigFile)
	}

	// Create and run the console
	con, err := console.InitConsole(args)
	if err != nil {
		log.Fatalf("Failed to initialize console: %v", err)
	}

	runErr := con.Run()

	// The audit sink holds the one open append handle; close it on the
	// way out.
	if err := audit.Get().Close(); err != nil {
		log.Printf("Error closing audit log: %v", err)
	}

	if runErr != nil {
		log.Fatalf("Console failed: %v", runErr)
	}
}

// validateArguments validates the arguments and returns an error if invalid
func validateArguments(args *settings.Arguments) error {
	// Check if data directory exists and is accessible
	dirInfo, err := os.Stat(args.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Try to create the directory
			err = os.MkdirAll(args.DataDir, 0755)
			if err != nil {
				return fmt.Errorf("could not create data directory: %w", err)
			}
		} else {
			return fmt.Errorf("error accessing data directory: %w", err)
		}
	} else if !dirInfo.IsDir() {
		return fmt.Errorf("data directory path exists but is not a directory: %s", args.DataDir)
	}

	// Check if the audit log can be created/opened for append
	if args.AuditLogFile != "" {
		logFile, err := os.OpenFile(args.AuditLogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("could not open audit log for writing: %w", err)
		}
		logFile.Close()
	}

	// If config file is specified, check if it exists and is readable
	if args.ConfigFile != "" && !helpers.FileExists(args.ConfigFile, nil) {
		return fmt.Errorf("could not access config file: %s", args.ConfigFile)
	}

	return nil
}
