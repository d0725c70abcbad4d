package src

// Logger is the subset of *zap.SugaredLogger used across the project.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	Info(args ...any)
	Infof(template string, args ...any)
	Error(args ...any)

	Sync() error
}
