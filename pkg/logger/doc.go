// Package logger builds slog loggers from environment-driven config.
//
// It standardizes log level parsing and output format across services so
// every binary logs the same way:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(cfg, logger.WithAttr(slog.String("app", "lexkit")))
package logger
