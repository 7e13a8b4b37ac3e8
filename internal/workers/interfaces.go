// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the periodic calendar
// sync worker.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to
// return quickly and do their work in goroutines they own. Stop requests
// a shutdown and blocks until in-flight work has finished.
type Worker interface {
	Run()
	Stop()
}
