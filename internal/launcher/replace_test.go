//go:build !windows

package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminansiart-arch/Installer/internal/database"
	"github.com/ruminansiart-arch/Installer/internal/database/mock"
	"github.com/ruminansiart-arch/Installer/internal/profile"
	"github.com/stretchr/testify/assert"
)

// Launching a Replace profile must hand the resolved argument vector
// and activated environment to the process replacement primitive.
func TestLaunchReplacesProcess(t *testing.T) {
	basePath := t.TempDir()
	binPath := filepath.Join(basePath, "ENVS", "Conda_P3.11", "bin")
	if err := os.MkdirAll(binPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(binPath, "python"), []byte{}, 0755); err != nil {
		t.Fatal(err)
	}
	applicationPath := filepath.Join(basePath, "ComfyUI")
	if err := os.MkdirAll(applicationPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(applicationPath, "main.py"), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}

	delegate := &mock.MockDelegate{
		Profiles: []profile.Profile{{
			Slug:             "comfyui",
			EnvironmentPath:  filepath.Join("ENVS", "Conda_P3.11"),
			WorkingDirectory: "ComfyUI",
			Executable:       "main.py",
			Replace:          true,
		}},
		Arguments: map[string][]string{"comfyui": {"--listen", "--port", "8188"}},
	}
	instance, err := NewLauncher(database.NewDatabase(delegate, nil), basePath)
	if err != nil {
		t.Fatal(err)
	}

	originalWorkingDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(originalWorkingDirectory)

	var replacedArgv0 string
	var replacedArgv []string
	var replacedEnviron []string
	originalReplaceProcess := replaceProcess
	replaceProcess = func(argv0 string, argv []string, envv []string) error {
		replacedArgv0 = argv0
		replacedArgv = argv
		replacedEnviron = envv
		return nil
	}
	defer func() { replaceProcess = originalReplaceProcess }()

	if err := instance.Launch("comfyui"); err != nil {
		t.Fatal(err)
	}

	interpreter := filepath.Join(binPath, "python")
	assert.Equal(t, interpreter, replacedArgv0)
	assert.Equal(t, []string{interpreter, "main.py", "--listen", "--port", "8188"}, replacedArgv)
	assert.Contains(t, replacedEnviron, "CONDA_PREFIX="+filepath.Join(basePath, "ENVS", "Conda_P3.11"))

	// The replacement happens from inside the application folder
	currentWorkingDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	expectedWorkingDirectory, err := filepath.EvalSymlinks(applicationPath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, expectedWorkingDirectory, currentWorkingDirectory)
}
