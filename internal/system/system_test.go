package system

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedCommand struct {
	workingDirectory string
	name             string
	arguments        []string
}

func newRecordingEngine(t *testing.T) (*SystemEngine, *[]recordedCommand) {
	t.Helper()
	instance, err := NewSystemEngine(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	recorded := &[]recordedCommand{}
	instance.runCommand = func(workingDirectory string, name string, arguments ...string) error {
		*recorded = append(*recorded, recordedCommand{workingDirectory, name, arguments})
		return nil
	}
	return instance, recorded
}

func TestInitializeCreatesLayout(t *testing.T) {
	instance, _ := newRecordingEngine(t)
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(1)
	instance.Initialize(&waitGroup)
	waitGroup.Wait()

	assert.DirExists(t, filepath.Join(instance.basePath, "ENVS"))
	assert.DirExists(t, filepath.Join(instance.basePath, "system"))
	assert.DirExists(t, filepath.Join(instance.basePath, "temp"))
}

func TestProvisionApplication(t *testing.T) {
	instance, recorded := newRecordingEngine(t)

	applicationEntry := applications[1] // ComfyUI
	if err := instance.provisionApplication(&applicationEntry); err != nil {
		t.Fatal(err)
	}

	environmentPrefix := filepath.Join(instance.basePath, "ENVS", "Conda_P3.11")
	applicationPath := filepath.Join(instance.basePath, "ComfyUI")
	expected := []recordedCommand{
		{"", "conda", []string{"create", "--prefix", environmentPrefix, "python=3.11", "-y"}},
		{"", "git", []string{"clone", "https://github.com/comfyanonymous/ComfyUI.git", applicationPath}},
		{applicationPath, "conda", []string{"run", "--prefix", environmentPrefix,
			"pip", "install", "torch", "torchvision", "torchaudio",
			"--index-url", "https://download.pytorch.org/whl/cu118"}},
		{applicationPath, "conda", []string{"run", "--prefix", environmentPrefix,
			"pip", "install", "-r", "requirements.txt"}},
		{"", "git", []string{"clone", "https://github.com/ltdrdata/ComfyUI-Manager.git",
			filepath.Join(applicationPath, "custom_nodes", "ComfyUI-Manager")}},
	}
	assert.Equal(t, expected, *recorded)
}

func TestProvisionSkipsExistingEnvironment(t *testing.T) {
	instance, recorded := newRecordingEngine(t)

	environmentPrefix := filepath.Join(instance.basePath, "ENVS", "Conda_P3.10")
	if err := os.MkdirAll(environmentPrefix, 0755); err != nil {
		t.Fatal(err)
	}

	if err := instance.createEnvironment(environmentPrefix, "3.10"); err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, *recorded)
}

func TestProvisionSkipsExistingClone(t *testing.T) {
	instance, recorded := newRecordingEngine(t)

	applicationPath := filepath.Join(instance.basePath, "stable-diffusion-webui")
	if err := os.MkdirAll(filepath.Join(applicationPath, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := instance.cloneRepository("https://github.com/AUTOMATIC1111/stable-diffusion-webui.git", applicationPath); err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, *recorded)
}
