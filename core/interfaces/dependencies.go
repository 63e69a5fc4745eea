// ABOUTME: Dependencies bundles the injectable collaborators of the core services
// ABOUTME: Passed to every service constructor instead of package-level state

package interfaces

// Dependencies holds the external collaborators a core service needs.
// Fields may be nil; services degrade gracefully where that is safe
// (logging) and fail explicitly where it is not (HTTP).
type Dependencies struct {
	// HTTPClient performs outbound requests.
	HTTPClient HTTPClient

	// Logger receives structured log output. A nil logger disables logging.
	Logger Logger
}

// Log emits through the configured logger, if any.
func (d Dependencies) Log() Logger {
	if d.Logger == nil {
		return nopLogger{}
	}
	return d.Logger
}

// nopLogger discards all output.
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
