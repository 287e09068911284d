// Package logger builds slog loggers with environment-driven level and
// format plus per-record context attribute injection.
//
// The context handler lets middleware stash values (workspace ID, request
// ID) in the request context and have every log record within that request
// carry them automatically:
//
//	log := logger.NewFromConfig(cfg,
//		logger.WithContextValue("workspace_id", workspaceCtxKey{}),
//	)
//	logger.SetAsDefault(log)
package logger
