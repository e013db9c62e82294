package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"

	"github.com/ruminansiart-arch/Installer/internal/configloader"
	"github.com/ruminansiart-arch/Installer/internal/database"
	"github.com/ruminansiart-arch/Installer/internal/database/delegate/sqlite"
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/ruminansiart-arch/Installer/internal/engine"
	"github.com/ruminansiart-arch/Installer/internal/launcher"
	"github.com/ruminansiart-arch/Installer/internal/network"
	"github.com/ruminansiart-arch/Installer/internal/storage"
	"github.com/ruminansiart-arch/Installer/internal/system"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "installer"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command>\n\n", APPLICATION_NAME)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  launch <profile>  Start an application from a launch profile")
	fmt.Fprintln(os.Stderr, "  provision         Install the managed applications and their runtimes")
	fmt.Fprintln(os.Stderr, "  fetch             Download the missing model assets")
	fmt.Fprintln(os.Stderr, "  list              Show the available launch profiles")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	pflag.PrintDefaults()
}

func main() {
	// Parsing the command line arguments to change settings file location
	configurationFilePath := pflag.String("config", "", "Configuration file path")
	pflag.Usage = usage
	pflag.Parse()

	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}
	logrus.Infof("Setting log level to %s", level.String())

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("Failed to read build information")
	}
	logrus.Debug("Launching installer v.", bi.Main.Version)

	if pflag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	workspacePath := configuration.WorkspacePath
	catalogPath := configuration.CatalogPath
	if catalogPath != "" && !filepath.IsAbs(catalogPath) {
		catalogPath = filepath.Join(workspacePath, catalogPath)
	}

	databaseEngine := database.NewDatabase(
		&sqlite.SQLiteDelegate{BasePath: workspacePath},
		[]importer.Importer{
			importer.NewPlainImporter(catalogPath),
			importer.NewEmbeddedImporter(),
		})
	defer databaseEngine.Deinitialize()
	networkEngine, err := network.NewNetworkEngine()
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	systemEngine, err := system.NewSystemEngine(workspacePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	storageEngine, err := storage.NewStorageEngine(databaseEngine, networkEngine,
		workspacePath, configuration.CivitaiAPIKey, configuration.StorjAccess)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	launcherEngine, err := launcher.NewLauncher(databaseEngine, workspacePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}

	controller := engine.NewController([]engine.ApplicationEngine{
		databaseEngine, networkEngine, systemEngine, storageEngine, launcherEngine,
	})
	controller.Initialize()

	switch pflag.Arg(0) {
	case "launch":
		if pflag.NArg() < 2 {
			logrus.Error("The launch command needs a profile slug")
			os.Exit(2)
		}
		// On a Replace profile this call does not return on success:
		// the application inherits the process
		if err := launcherEngine.Launch(pflag.Arg(1)); err != nil {
			// A supervised child that exited non-zero keeps its own
			// exit status
			var exitError *exec.ExitError
			if errors.As(err, &exitError) && exitError.ExitCode() > 0 {
				os.Exit(exitError.ExitCode())
			}
			logrus.Errorf("%+v", err)
			os.Exit(1)
		}
	case "provision":
		if err := systemEngine.Provision(); err != nil {
			logrus.Errorf("%+v", err)
			os.Exit(1)
		}
	case "fetch":
		failures, err := storageEngine.FetchAssets()
		if err != nil {
			logrus.Errorf("%+v", err)
			os.Exit(1)
		}
		if failures > 0 {
			logrus.Errorf("%d assets could not be fetched", failures)
			os.Exit(1)
		}
	case "list":
		profiles, err := databaseEngine.GetProfiles()
		if err != nil {
			logrus.Errorf("%+v", err)
			os.Exit(1)
		}
		for _, profileEntry := range profiles {
			arguments, err := databaseEngine.GetProfileArguments(profileEntry.Slug)
			if err != nil {
				logrus.Errorf("%+v", err)
				os.Exit(1)
			}
			mode := "supervised"
			if profileEntry.Replace {
				mode = "replace"
			}
			fmt.Printf("%s\t%s\t%s %v (%s)\n", profileEntry.Slug,
				profileEntry.WorkingDirectory, profileEntry.Executable, arguments, mode)
		}
	default:
		logrus.Errorf("Unknown command %s", pflag.Arg(0))
		usage()
		os.Exit(2)
	}
}
