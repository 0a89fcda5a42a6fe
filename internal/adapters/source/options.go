package source

import "github.com/okian/standings/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithResultsFile sets the standings file name.
func WithResultsFile(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.resultsFile = name
		}
	}
}

// WithIndexFile sets the config index file name.
func WithIndexFile(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.indexFile = name
		}
	}
}

// WithConfigDir sets the directory holding the player YAML documents.
func WithConfigDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.configDir = dir
		}
	}
}

// WithConfigExt sets the extension a config file must end with.
func WithConfigExt(ext string) Option {
	return func(l *Loader) {
		if ext != "" {
			l.configExt = ext
		}
	}
}

// WithConcurrency bounds how many player configs load at once.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.log = lg
		}
	}
}
