package config

//go:generate go tool go-enum --names --nocomments

// Logging verbosity.
// ENUM(none, normal, debug)
type LogLevel string

// Log file opening mode.
// ENUM(append, overwrite)
type LogMode string
