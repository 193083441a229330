// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Config files, log files and --output targets go through the same afero backend, so tests
// can swap it for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteFile creates (or truncates) path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := parent(path); dir != "" {
		if err := backend.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return backend.WriteFile(path, data, 0o644)
}
