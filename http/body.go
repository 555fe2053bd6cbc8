package http

import (
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

type BodyKind uint8

const (
	BodyEmpty BodyKind = iota
	BodyPayload
	BodyFields
)

func (b BodyKind) String() string {
	switch b {
	case BodyEmpty:
		return "Empty"
	case BodyPayload:
		return "Payload"
	case BodyFields:
		return "Fields"
	}

	return "Unknown"
}

// Fields are multipart form fields, keyed case-sensitively by their names.
type Fields = *kv.Storage

// Body is the single representation of a request body, consumed uniformly no matter
// which content class it was decoded from.
type Body struct {
	kind    BodyKind
	format  RawFormat
	payload string
	fields  Fields
}

// EmptyBody is attached to requests whose content class is NoContent.
func EmptyBody() Body {
	return Body{kind: BodyEmpty}
}

// NewPayload wraps a raw text payload.
func NewPayload(format RawFormat, payload string) Body {
	return Body{
		kind:    BodyPayload,
		format:  format,
		payload: payload,
	}
}

// NewFields wraps decoded multipart fields.
func NewFields(fields Fields) Body {
	return Body{
		kind:   BodyFields,
		fields: fields,
	}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

// String returns the raw payload. It is empty for the other kinds.
func (b Body) String() string {
	return b.payload
}

// Bytes returns the raw payload as a byte slice. The returned slice must not be modified.
func (b Body) Bytes() []byte {
	return uf.S2B(b.payload)
}

// Fields returns the multipart fields. Non-form bodies return an empty storage, so the
// result is always safe to query.
func (b Body) Fields() Fields {
	if b.fields == nil {
		return kv.NewExact(0)
	}

	return b.fields
}

// JSON convoys the payload to a json unmarshaller.
//
// Please note: this method cannot be used on bodies that weren't classified as a JSON
// payload (in this case, status.ErrUnsupportedMediaType is returned).
func (b Body) JSON(model any) error {
	if b.kind != BodyPayload || b.format != JSON {
		return status.ErrUnsupportedMediaType
	}

	iterator := json.ConfigDefault.BorrowIterator(b.Bytes())
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
