package response

const (
	// MessageSuccess is the message on every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error detail from clients.
	DefaultErrorMessage = "Internal Server Error"

	// InternalServerErrorCode is the error_code for 500 responses.
	InternalServerErrorCode = 500
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
