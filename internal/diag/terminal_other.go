//go:build !linux && !darwin

package diag

import "os"

// IsTerminal always reports false on platforms without a wired ioctl check.
func IsTerminal(f *os.File) bool { return false }
