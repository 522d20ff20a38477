// Package pillar is a small logging façade that renders records as aligned
// columns and fans them out to a colorized console stream and a plain-text
// file.
//
// Every record becomes a single line of four fields separated by " | ":
//
//	2024-03-07 15:04:05 | WARNING  | /src/app/main.go:42 | Configuration file not found.
//
// The level column has a fixed width of 8 characters, so the location column
// starts at the same offset for every record regardless of the level name's
// length.
//
// # Sinks
//
// A [Logger] carries exactly two sinks:
//
//   - Console: standard output, INFO and above, ANSI color by severity.
//   - File: <dir>/log.txt, DEBUG and above (everything), no escape sequences.
//
// Dispatch runs on Go's log/slog machinery: each sink is a [log/slog.Handler]
// with its own level threshold and serialized writes, so concurrent emissions
// never interleave within a line. Use [Logger.Slog] to route slog-based code
// through the same sinks.
//
// # Usage
//
// Construct an explicit handle with [New]:
//
//	logger, err := pillar.New("logs")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("Process started.")
//	logger.Warning("Configuration file not found.")
//	logger.Errorf("Calculation failed: %v", err)
//
// Programs that want one shared logger for the whole process can use [Setup],
// which assembles the logger on the first call and returns that same instance
// on every later call.
//
// # Testing
//
// [NopLogger] returns a logger that discards all output, and
// [WithConsoleWriter] redirects the console sink to any io.Writer.
package pillar
