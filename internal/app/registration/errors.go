package registration

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_REGISTERED"
	CodeInternal   = "INTERNAL"
	CodeReload     = "RELOAD_FAILED"
)

// User-facing messages.
const (
	MessageMissingIdentifier = "Please enter your SAP ID"
	MessageNotRegistered     = "SAP ID not found. You are not registered for this workshop. Please contact the coordinator."
	MessageServerError       = "Server error. Please try again."
	MessageReloaded          = "Database reloaded successfully"
	MessageReloadFailed      = "Failed to reload database"
	DefaultWelcomeMessage    = "Registration successful! Welcome to the Digital Workshop 2026!"
)
