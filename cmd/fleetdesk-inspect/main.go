// cmd/fleetdesk-inspect/main.go
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"fleetdesk/config"
	"fleetdesk/game"
	"fleetdesk/job"
	"fleetdesk/logs"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fleetdesk-inspect", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default: user config dir)")
	docs := fs.String("docs", "", "Documents directory override")
	profiles := fs.Bool("profiles", false, "list profiles")
	dlc := fs.Bool("dlc", false, "detect installed content packages")
	installPath := fs.String("install", "", "game installation directory for -dlc")
	state := fs.String("state", "", "print player state of the profile directory")
	export := fs.String("export", "", "export a job into the profile directory")
	jobFile := fs.String("job", "", "JSON job record for -export")
	logLevel := fs.String("log-level", "warn", "minimum log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfgErr error
	if *configPath != "" {
		cfgErr = config.LoadFrom(*configPath)
	} else {
		cfgErr = config.Load()
	}
	cfg := config.Get()

	logger, err := logs.New(config.LoggingConfig{Level: *logLevel, Format: "console"})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()
	if cfgErr != nil {
		logger.Warn("config could not be read, using defaults", zap.Error(cfgErr))
	}

	docsDir := cfg.DocumentsDir
	if *docs != "" {
		docsDir = *docs
	}
	desk := game.NewDesk(docsDir, cfg.Parser, logger)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	switch {
	case *profiles:
		return enc.Encode(desk.ListProfiles())
	case *dlc:
		explicit := *installPath
		if explicit == "" {
			explicit = cfg.CustomInstallPath
		}
		return enc.Encode(desk.DetectCapabilities(explicit))
	case *state != "":
		st, err := desk.PlayerState(*state)
		if err != nil {
			return err
		}
		return enc.Encode(st)
	case *export != "":
		if *jobFile == "" {
			return errors.New("-export needs -job")
		}
		data, err := os.ReadFile(*jobFile)
		if err != nil {
			return fmt.Errorf("reading job file: %w", err)
		}
		var rec job.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decoding job file: %w", err)
		}
		path, err := desk.ExportJob(*export, rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, path)
		return err
	}
	fs.Usage()
	return errors.New("nothing to do: pass -profiles, -dlc, -state or -export")
}
