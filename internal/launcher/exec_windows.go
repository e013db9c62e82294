//go:build windows

package launcher

import "errors"

// Process replacement does not exist on windows, Launch falls back to
// a supervised child.
const replaceSupported = false

var replaceProcess = func(argv0 string, argv []string, envv []string) error {
	return errors.New("process replacement is not supported on this platform")
}
