// Package logger provides structured logging for testkit packages.
//
// It wraps zerolog with a small Config, component-tagged child loggers, and
// a process-global logger with package-level convenience functions. Test
// tooling mostly logs at debug level; set LOG_LEVEL=debug to see registry
// snapshot events and matrix size advisories.
package logger
