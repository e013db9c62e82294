//go:build !windows

package launcher

import "syscall"

const replaceSupported = true

var replaceProcess = syscall.Exec
