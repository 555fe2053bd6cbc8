package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrShutdown        = NewError(CloseConnection, "server has been shut down")
	ErrCloseConnection = NewError(CloseConnection, "actively closing the connection")

	ErrUnsupportedMethod       = NewError(NotImplemented, "request method is not supported")
	ErrMalformedRequestLine    = NewError(BadRequest, "malformed request line")
	ErrMalformedQueryParameter = NewError(BadRequest, "query parameter has no value separator")
	ErrMalformedHeaderLine     = NewError(BadRequest, "header line has no colon")
	ErrMissingHostHeader       = NewError(BadRequest, "host header is missing")
	ErrTooManyHeaders          = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrBadContentLength        = NewError(BadRequest, "malformed content length")
	ErrMissingBoundary         = NewError(BadRequest, "multipart content type without boundary")
	ErrUnsupportedFormPart     = NewError(UnsupportedMediaType, "file parts are not supported")
	ErrUnsupportedEncoding     = NewError(UnsupportedMediaType, "content encoding is not supported")
	ErrUnsupportedMediaType    = NewError(UnsupportedMediaType, "unsupported media type")
	ErrBadEncoding             = NewError(BadRequest, "body does not match its content encoding")
	ErrBodyTooLarge            = NewError(RequestEntityTooLarge, "request body is too large")
	ErrTruncated               = NewError(RequestEntityTooLarge, "request ended before it was complete")
)
