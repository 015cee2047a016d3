//go:build darwin

package diag

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TIOCGETA
