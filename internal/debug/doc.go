// Package debug provides optional file-based debug logging.
//
// When the GEOMOTION_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// GEOMOTION_DEBUG_LEVEL selects the minimum logrus level (default "debug").
package debug
