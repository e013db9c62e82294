package system

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/ruminansiart-arch/Installer/internal/folder"
	"github.com/sirupsen/logrus"
)

// application describes how one of the managed applications is
// provisioned: which runtime it needs, where its sources come from and
// which installation steps run after the clone.
type application struct {
	Name            string
	RepositoryURL   string
	Directory       string
	EnvironmentPath string
	PythonVersion   string
	// TorchIndexURL triggers an explicit torch install from the given
	// wheel index. Applications that bootstrap their own dependencies
	// on first start leave it empty.
	TorchIndexURL       string
	InstallRequirements bool
	// ExtraRepositories are cloned inside the application folder after
	// the main repository (plugin managers, custom nodes).
	ExtraRepositories map[string]string
}

var applications = []application{
	{
		Name:            "Stable Diffusion web UI",
		RepositoryURL:   "https://github.com/AUTOMATIC1111/stable-diffusion-webui.git",
		Directory:       folder.WEBUI,
		EnvironmentPath: filepath.Join(folder.ENVIRONMENTS, "Conda_P3.10"),
		PythonVersion:   "3.10",
	},
	{
		Name:                "ComfyUI",
		RepositoryURL:       "https://github.com/comfyanonymous/ComfyUI.git",
		Directory:           folder.COMFYUI,
		EnvironmentPath:     filepath.Join(folder.ENVIRONMENTS, "Conda_P3.11"),
		PythonVersion:       "3.11",
		TorchIndexURL:       "https://download.pytorch.org/whl/cu118",
		InstallRequirements: true,
		ExtraRepositories: map[string]string{
			filepath.Join("custom_nodes", "ComfyUI-Manager"): "https://github.com/ltdrdata/ComfyUI-Manager.git",
		},
	},
}

// SystemEngine provisions the workspace: folder layout, conda
// environments and application sources.
type SystemEngine struct {
	basePath   string
	runCommand func(workingDirectory string, name string, arguments ...string) error
}

func NewSystemEngine(basePath string) (instance *SystemEngine, err error) {
	instance = &SystemEngine{
		basePath:   basePath,
		runCommand: execCommand,
	}
	return
}

// execCommand runs a provisioning step with streamed output, the same
// way an operator would see it from a shell.
func execCommand(workingDirectory string, name string, arguments ...string) error {
	command := exec.Command(name, arguments...)
	command.Dir = workingDirectory
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	return command.Run()
}

func (systemEngine *SystemEngine) Initialize(waitGroup *sync.WaitGroup) {
	for _, relativePath := range []string{folder.ENVIRONMENTS, folder.SYSTEM, folder.TEMP} {
		layoutPath := filepath.Join(systemEngine.basePath, relativePath)
		if err := os.MkdirAll(layoutPath, 0755); err != nil {
			panic(err)
		}
	}
	waitGroup.Done()
}

// CheckDependencies verifies that the external provisioning tools are
// reachable on the search path.
func (systemEngine *SystemEngine) CheckDependencies() (err error) {
	for _, dependency := range []string{"conda", "git"} {
		if _, err = exec.LookPath(dependency); err != nil {
			logrus.Errorf("%s is not installed or not in PATH", dependency)
			return
		}
		logrus.Debugf("%s is available", dependency)
	}
	return
}

// Provision installs every managed application: runtime environment,
// sources and dependency installation steps. Steps already satisfied
// on disk are skipped, so provisioning is safe to re-run.
func (systemEngine *SystemEngine) Provision() (err error) {
	if err = systemEngine.CheckDependencies(); err != nil {
		return
	}
	for _, applicationEntry := range applications {
		logrus.Infof("Provisioning %s", applicationEntry.Name)
		if err = systemEngine.provisionApplication(&applicationEntry); err != nil {
			return
		}
	}
	return
}

func (systemEngine *SystemEngine) provisionApplication(applicationEntry *application) (err error) {
	environmentPrefix := filepath.Join(systemEngine.basePath, applicationEntry.EnvironmentPath)
	if err = systemEngine.createEnvironment(environmentPrefix, applicationEntry.PythonVersion); err != nil {
		logrus.Error("Cannot create the conda environment")
		return
	}

	applicationPath := filepath.Join(systemEngine.basePath, applicationEntry.Directory)
	if err = systemEngine.cloneRepository(applicationEntry.RepositoryURL, applicationPath); err != nil {
		logrus.Error("Cannot clone the application repository")
		return
	}

	if applicationEntry.TorchIndexURL != "" {
		logrus.Info("Installing PyTorch")
		if err = systemEngine.runCommand(applicationPath, "conda", "run", "--prefix", environmentPrefix,
			"pip", "install", "torch", "torchvision", "torchaudio",
			"--index-url", applicationEntry.TorchIndexURL); err != nil {
			logrus.Error("Cannot install PyTorch")
			return
		}
	}
	if applicationEntry.InstallRequirements {
		logrus.Info("Installing requirements")
		if err = systemEngine.runCommand(applicationPath, "conda", "run", "--prefix", environmentPrefix,
			"pip", "install", "-r", "requirements.txt"); err != nil {
			logrus.Error("Cannot install the application requirements")
			return
		}
	}

	for relativePath, repositoryURL := range applicationEntry.ExtraRepositories {
		if err = systemEngine.cloneRepository(repositoryURL, filepath.Join(applicationPath, relativePath)); err != nil {
			logrus.Error("Cannot clone the extra repository")
			return
		}
	}
	return
}

// createEnvironment creates a conda environment at the given prefix.
// An existing prefix is reused untouched.
func (systemEngine *SystemEngine) createEnvironment(environmentPrefix string, pythonVersion string) (err error) {
	if _, statError := os.Stat(environmentPrefix); statError == nil {
		logrus.Infof("The environment %s already exists, skipping creation", environmentPrefix)
		return
	}
	return systemEngine.runCommand("", "conda", "create", "--prefix", environmentPrefix,
		"python="+pythonVersion, "-y")
}

// cloneRepository clones a git repository, skipping clones that
// already happened.
func (systemEngine *SystemEngine) cloneRepository(repositoryURL string, destinationPath string) (err error) {
	if _, statError := os.Stat(filepath.Join(destinationPath, ".git")); statError == nil {
		logrus.Infof("The repository %s already exists, skipping clone", destinationPath)
		return
	}
	if err = os.MkdirAll(filepath.Dir(destinationPath), 0755); err != nil {
		return
	}
	return systemEngine.runCommand("", "git", "clone", repositoryURL, destinationPath)
}
