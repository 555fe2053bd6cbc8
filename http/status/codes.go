package status

// Code is an HTTP status code. The decoder never writes responses itself, codes are
// attached to errors so the caller knows what it would answer with.
type (
	Code   uint16
	Status string
)

// Codes used by the decoder, as registered with IANA.
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	RequestEntityTooLarge       Code = 413 // RFC 9110, 15.5.14
	UnsupportedMediaType        Code = 415 // RFC 9110, 15.5.16
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5

	InternalServerError Code = 500 // RFC 9110, 15.6.1
	NotImplemented      Code = 501 // RFC 9110, 15.6.2

	// CloseConnection isn't a real status code, it signals the connection must be closed
	// without any response.
	CloseConnection Code = 1
)

// KnownCodes lists every code Text has a reason phrase for.
var KnownCodes = []Code{
	OK, BadRequest, RequestEntityTooLarge, UnsupportedMediaType, RequestHeaderFieldsTooLarge,
	InternalServerError, NotImplemented,
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	}

	return ""
}
