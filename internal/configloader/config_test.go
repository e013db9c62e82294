package configloader_test

import (
	"os"
	"testing"

	"github.com/ruminansiart-arch/Installer/internal/configloader"
)

// Test default configuration loading
func TestLoadDefaultConfiguration(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "info" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "info")
	}
	if configuration.WorkspacePath != "/workspace" {
		t.Errorf("Default workspace path is \"%s\", not \"%s\"", configuration.WorkspacePath, "/workspace")
	}
}

// Test environment variables configuration loading
func TestLoadEnvironmentVariablesConfiguration(t *testing.T) {
	os.Setenv("WORKSPACE_PATH", "/tmp/pod")
	defer os.Unsetenv("WORKSPACE_PATH")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.WorkspacePath != "/tmp/pod" {
		t.Errorf("Workspace path is \"%s\", not \"%s\"", configuration.WorkspacePath, "/tmp/pod")
	}
}
