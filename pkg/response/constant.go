package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	ValidationErrorCode     = 1

	// DateTimeFormat is RFC 3339 in UTC so plans from different hosts compare cleanly.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
