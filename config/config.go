package config

import (
	"time"
)

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	BodyForm struct {
		// EntriesPrealloc is the number of preallocated seats for the multipart fields storage.
		EntriesPrealloc int
	}
)

type (
	URI struct {
		// ParamsPrealloc for http.Request.Params field.
		ParamsPrealloc int
	}

	Headers struct {
		// Number is responsible for headers storage size.
		// Default value is an initial size of allocated headers storage.
		// Maximal value is maximum number of headers allowed to be presented
		Number HeadersNumber
	}

	Body struct {
		// MaxSize limits the body size after content codings were reverted. Compressed payloads
		// inflating past this value are rejected with status.ErrBodyTooLarge.
		MaxSize int
		// Form controls multipart/form-data decoding.
		Form BodyForm
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// MaxFrameSize caps the whole request (head, delimiter and body) the frame reader
		// is willing to accumulate. Requests exceeding it result in status.ErrTruncated.
		MaxFrameSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
	}
)

// Config holds settings used across the decoder and the frame reader, mainly restrictions,
// limitations and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URI: URI{
			ParamsPrealloc: 5,
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
		},
		Body: Body{
			MaxSize: 512 * 1024,
			Form: BodyForm{
				EntriesPrealloc: 8,
			},
		},
		NET: NET{
			// a single read of 1kb is usually enough to fetch the whole head of a request
			ReadBufferSize: 1024,
			MaxFrameSize:   64 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}
