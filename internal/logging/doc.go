// Package logging builds the zerolog loggers used across callhistory.
//
// It owns three concerns:
//   - Building a logger from Config (level, console or JSON format, stderr or file output)
//   - Carrying a logger and a trace ID through context.Context
//   - Component sub-loggers so every line says where it came from
//
// Trace IDs are ULIDs so they sort by creation time in log files.
package logging
