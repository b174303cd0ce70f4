// Package logging configures log/slog for yfoil.
//
// By default only warnings and errors are written, as text, to stderr. With
// --debug every record is also appended as JSON to ~/.yfoil/logs/yfoil.log,
// which is rotated once it grows past a few megabytes.
package logging
