package http

import (
	"github.com/indigo-web/rawhttp/http/method"
	"github.com/indigo-web/rawhttp/kv"
)

type (
	Headers = *kv.Storage
	Params  = *kv.Storage
)

// Request represents a decoded HTTP request. It is fully determined by the bytes it was
// decoded from and must not be modified afterwards: Headers and Params may be shared between
// readers, use their Clone method in order to get an owned copy.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Host is the value of the mandatory Host header.
	Host string
	// Path is the request-target before the first question mark, taken verbatim.
	Path string
	// Params are request URI parameters. Keys are case-sensitive, the last occurrence of a
	// key wins.
	Params Params
	// Headers are keyed by lower-cased names, values are trimmed. Lookups are
	// case-insensitive, the last occurrence of a header wins.
	Headers Headers
	// ContentType is the classification of the Content-Type header.
	ContentType ContentType
	// Body is either empty, a raw payload or multipart fields, depending on ContentType.
	Body Body
}
