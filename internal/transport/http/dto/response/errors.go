package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrProjectTypeExists = ErrorResponse{
		Status:  "error",
		Error:   "project_type_exists",
		Details: "A project type with this type_key already exists",
	}

	ErrUnknownService = ErrorResponse{
		Status:  "error",
		Error:   "unknown_service",
		Details: "Unknown service line",
	}
)
