package http

import "github.com/indigo-web/rawhttp/http/mime"

// ContentClass tells how the request body must be interpreted.
type ContentClass uint8

const (
	// NoContent means either no Content-Type header or a MIME the decoder doesn't interpret.
	// Bodies of such requests are not attached.
	NoContent ContentClass = iota
	// RawContent bodies are exposed as an untouched text payload.
	RawContent
	// FormData bodies are decoded into fields.
	FormData
)

func (c ContentClass) String() string {
	switch c {
	case NoContent:
		return "None"
	case RawContent:
		return "Raw"
	case FormData:
		return "FormData"
	}

	return "Unknown"
}

// RawFormat refines RawContent.
type RawFormat uint8

const (
	NoFormat RawFormat = iota
	Text
	JSON
)

func (r RawFormat) String() string {
	switch r {
	case Text:
		return "Text"
	case JSON:
		return "Json"
	}

	return ""
}

// MIME returns the MIME type the format was recognized from.
func (r RawFormat) MIME() mime.MIME {
	switch r {
	case Text:
		return mime.Plain
	case JSON:
		return mime.JSON
	}

	return ""
}

const crlf = "\r\n"

// Boundary holds the multipart boundary token and the markers derived from it.
type Boundary struct {
	Token string
	// Start is the token followed by CRLF, it opens every form part.
	Start string
	// End is the token followed by two dashes and CRLF, it terminates the body.
	End string
}

func NewBoundary(token string) Boundary {
	return Boundary{
		Token: token,
		Start: token + crlf,
		End:   token + "--" + crlf,
	}
}

// ContentType is a tagged variant: Format is meaningful only for RawContent and Boundary
// only for FormData.
type ContentType struct {
	Class    ContentClass
	Format   RawFormat
	Boundary Boundary
}

func (c ContentType) String() string {
	switch c.Class {
	case RawContent:
		return "Raw(" + c.Format.String() + ")"
	case FormData:
		return "FormData(" + c.Boundary.Token + ")"
	}

	return c.Class.String()
}
