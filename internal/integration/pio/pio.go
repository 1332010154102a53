// Package pio invokes the PlatformIO build toolchain and parses the memory
// diagnostics it prints.
package pio

import "time"

const (
	name = "pio"
	// Full rebuilds of the framework tree are slow on cold caches; anything
	// beyond this is a hung toolchain.
	timeout = 300 * time.Second
	// How long Wait may linger on pipes still held by compiler subprocesses
	// after the group has been killed.
	killGrace = 5 * time.Second
)
