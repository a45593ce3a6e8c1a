package platform

import (
	"log/slog"

	"github.com/aretw0/bower/pkg/core"
)

// options holds the internal configuration for the bower service.
type options struct {
	store  core.Store
	logger *slog.Logger
	config map[string]interface{}
}

// Option defines a functional option for configuring bower.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:  nil,
		logger: nil,
		config: make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the notebook and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. an in-memory
// store for tests). If provided, the default filesystem adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMustExist ensures the store file must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithStrictLoad makes a corrupt store file fail startup instead of being
// discarded with a warning.
func WithStrictLoad(strict bool) Option {
	return func(o *options) {
		o.config["strict_load"] = strict
	}
}

// WithRootName sets the display name given to the root directory of a fresh
// notebook. Defaults to "Root".
func WithRootName(name string) Option {
	return func(o *options) {
		o.config["root_name"] = name
	}
}

// WithForceTemp forces the store file into a temporary directory (useful for
// testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["force_temp"] = force
	}
}

// WithDevSafety controls the sandbox mechanism when running via `go run`.
// By default (true), bower redirects the store file into a temporary
// directory to prevent accidental data loss. Setting this to false allows
// operating on the real filesystem even during `go run`.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}
