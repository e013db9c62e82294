package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/ruminansiart-arch/Installer/internal/database"
	"github.com/ruminansiart-arch/Installer/internal/environment"
	"github.com/ruminansiart-arch/Installer/internal/profile"
	"github.com/sirupsen/logrus"
)

var (
	ErrEnvironmentNotFound = errors.New("the environment path does not resolve to an activatable runtime")
	ErrDirectoryNotFound   = errors.New("the working directory does not exist")
	ErrExecutableNotFound  = errors.New("the executable cannot be resolved")
)

// ResolutionError reports the first missing resource found while
// resolving a launch profile. Resolution is fatal and single-shot:
// no retry, no fallback.
type ResolutionError struct {
	Resource string
	Path     string
	Err      error
}

func (resolutionError *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve the %s %s: %s",
		resolutionError.Resource, resolutionError.Path, resolutionError.Err.Error())
}

func (resolutionError *ResolutionError) Unwrap() error {
	return resolutionError.Err
}

// Resolution is the outcome of a successful profile resolution: the
// activated environment, the entered folder and the full interpreter
// argument vector, ready to be run or to replace the current process.
type Resolution struct {
	Environment      *environment.Environment
	WorkingDirectory string
	Argv             []string
	Environ          []string
}

type Launcher struct {
	databaseEngine *database.Database
	basePath       string
}

func NewLauncher(databaseEngine *database.Database, basePath string) (instance *Launcher, err error) {
	instance = &Launcher{
		databaseEngine: databaseEngine,
		basePath:       basePath,
	}
	return
}

// The launcher holds no state between launches, booting is a no-op.
func (launcher *Launcher) Initialize(waitGroup *sync.WaitGroup) {
	waitGroup.Done()
}

func (launcher *Launcher) absolutePath(configuredPath string) string {
	if filepath.IsAbs(configuredPath) {
		return configuredPath
	}
	return filepath.Join(launcher.basePath, configuredPath)
}

// Resolve verifies, in order, the environment, the working directory
// and the executable of a profile. The environment is checked before
// the working directory is entered, so a profile with a broken runtime
// never observes a directory change.
func (launcher *Launcher) Resolve(profileEntry profile.Profile, arguments []string) (resolution *Resolution, err error) {
	environmentPrefix := launcher.absolutePath(profileEntry.EnvironmentPath)
	var resolvedEnvironment *environment.Environment
	if resolvedEnvironment, err = environment.Resolve(environmentPrefix); err != nil {
		logrus.Errorf("%+v", err)
		err = &ResolutionError{"environment", environmentPrefix, ErrEnvironmentNotFound}
		return
	}

	workingDirectory := launcher.absolutePath(profileEntry.WorkingDirectory)
	var workingDirectoryInfo os.FileInfo
	if workingDirectoryInfo, err = os.Stat(workingDirectory); err != nil || !workingDirectoryInfo.IsDir() {
		if err != nil {
			logrus.Errorf("%+v", err)
		}
		err = &ResolutionError{"working directory", workingDirectory, ErrDirectoryNotFound}
		return
	}

	executablePath := profileEntry.Executable
	if !filepath.IsAbs(executablePath) {
		executablePath = filepath.Join(workingDirectory, executablePath)
	}
	if _, err = os.Stat(executablePath); err != nil {
		logrus.Errorf("%+v", err)
		err = &ResolutionError{"executable", executablePath, ErrExecutableNotFound}
		return
	}

	// The executable keeps its configured (usually relative) form in
	// the argument vector because the target runs from the working
	// directory; arguments are forwarded verbatim and in order
	argv := append([]string{resolvedEnvironment.Interpreter(), profileEntry.Executable}, arguments...)
	resolution = &Resolution{
		Environment:      resolvedEnvironment,
		WorkingDirectory: workingDirectory,
		Argv:             argv,
		Environ:          resolvedEnvironment.Environ(os.Environ()),
	}
	return
}

// Launch resolves the named profile and transfers control to it. With
// Replace set the process image is substituted and the call never
// returns on success; otherwise the application runs as a supervised
// child with inherited standard streams.
func (launcher *Launcher) Launch(slug string) (err error) {
	var profileEntry profile.Profile
	if profileEntry, err = launcher.databaseEngine.GetProfileBySlug(slug); err != nil {
		logrus.Errorf("Cannot find the launch profile %s", slug)
		return
	}
	var arguments []string
	if arguments, err = launcher.databaseEngine.GetProfileArguments(slug); err != nil {
		logrus.Errorf("Cannot load the arguments of the launch profile %s", slug)
		return
	}

	var resolution *Resolution
	if resolution, err = launcher.Resolve(profileEntry, arguments); err != nil {
		return
	}

	logrus.Infof("Launching %s from %s", slug, resolution.WorkingDirectory)
	logrus.Debugf("Argument vector: %v", resolution.Argv)
	if profileEntry.Replace && replaceSupported {
		return launcher.replace(resolution)
	}
	return launcher.supervise(resolution)
}

// replace substitutes the current process image with the resolved
// interpreter invocation, keeping the process id and the open
// descriptors. The working directory and environment changes are not
// observable afterwards because the launcher process ceases to exist.
func (launcher *Launcher) replace(resolution *Resolution) (err error) {
	if err = os.Chdir(resolution.WorkingDirectory); err != nil {
		logrus.Errorf("%+v", err)
		return
	}
	return replaceProcess(resolution.Environment.Interpreter(), resolution.Argv, resolution.Environ)
}

// supervise runs the resolved invocation as a child process, streaming
// its output and propagating its exit status.
func (launcher *Launcher) supervise(resolution *Resolution) (err error) {
	command := exec.Command(resolution.Argv[0], resolution.Argv[1:]...)
	command.Dir = resolution.WorkingDirectory
	command.Env = resolution.Environ
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err = command.Run(); err != nil {
		logrus.Errorf("%+v", err)
		return
	}
	return
}
