// ABOUTME: Logger abstraction used throughout the library
// ABOUTME: Allows swapping logging backends without touching core logic

package interfaces

// Logger defines the interface for logging throughout the library.
// This abstraction allows for different logging implementations
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Debug("Resolved description", map[string]interface{}{
//		"url":        "https://catalog.example.org/description.xml",
//		"parameters": 7,
//	})
//
//	logger.Error("Search failed", map[string]interface{}{
//		"url":   searchURL,
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
