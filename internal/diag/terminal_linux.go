//go:build linux

package diag

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TCGETS
