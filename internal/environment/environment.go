package environment

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment is an activatable Python runtime prefix (a conda
// environment created with --prefix, or any layout exposing an
// interpreter under bin/).
type Environment struct {
	Prefix string
}

// Resolve verifies that the prefix exists and contains an interpreter,
// and returns the activatable environment. The prefix is the only
// contract with the environment manager: activation is plain path and
// variable arithmetic, no shell hooks are sourced.
func Resolve(prefix string) (instance *Environment, err error) {
	var prefixInfo os.FileInfo
	if prefixInfo, err = os.Stat(prefix); err != nil {
		return
	}
	if !prefixInfo.IsDir() {
		err = fmt.Errorf("the environment prefix %s is not a folder", prefix)
		return
	}
	instance = &Environment{Prefix: prefix}
	if _, err = os.Stat(instance.Interpreter()); err != nil {
		instance = nil
		return
	}
	return
}

// Interpreter returns the path of the Python interpreter inside the
// environment prefix.
func (environment *Environment) Interpreter() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(environment.Prefix, "python.exe")
	}
	return filepath.Join(environment.Prefix, "bin", "python")
}

func (environment *Environment) binPath() string {
	if runtime.GOOS == "windows" {
		return environment.Prefix
	}
	return filepath.Join(environment.Prefix, "bin")
}

// Environ activates the environment on top of the given base variable
// set: the environment bin folder is prepended to PATH, the conda
// prefix variables are set and PYTHONHOME is dropped so the embedded
// interpreter resolves its own standard library.
func (environment *Environment) Environ(base []string) (environ []string) {
	pathSet := false
	for _, variable := range base {
		name, value, found := strings.Cut(variable, "=")
		if !found {
			continue
		}
		switch name {
		case "PYTHONHOME", "CONDA_PREFIX", "CONDA_DEFAULT_ENV":
			continue
		case "PATH":
			environ = append(environ, "PATH="+environment.binPath()+string(os.PathListSeparator)+value)
			pathSet = true
		default:
			environ = append(environ, variable)
		}
	}
	if !pathSet {
		environ = append(environ, "PATH="+environment.binPath())
	}
	environ = append(environ,
		"CONDA_PREFIX="+environment.Prefix,
		"CONDA_DEFAULT_ENV="+filepath.Base(environment.Prefix))
	return
}
