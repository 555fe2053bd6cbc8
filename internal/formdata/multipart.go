package formdata

import (
	"strings"

	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/rawhttp/kv"
)

const (
	delimiterMarker = "--"
	disposition     = "Content-Disposition:"
	formData        = "form-data;"
	nameAttr        = `name="`
)

// ParseMultipart decodes a multipart/form-data body into the fields storage. Everything
// past the closing boundary is ignored. Parts without a name are skipped, parts carrying
// a file are rejected with status.ErrUnsupportedFormPart. Duplicate names are resolved
// in favour of the last part.
func ParseMultipart(into *kv.Storage, data string, b http.Boundary) (*kv.Storage, error) {
	if end := strings.Index(data, b.End); end != -1 {
		data = data[:end]
	} else {
		// closing delimiter at the very end of the body, not followed by CRLF
		data = strings.TrimSuffix(data, b.Token+delimiterMarker)
	}

	s := newStream(data)

	for !s.Empty() {
		section, _ := s.AdvanceUntil(b.Start)
		name, value, err := parsePart(section)
		if err != nil {
			return nil, err
		}

		if len(name) == 0 {
			continue
		}

		into.Set(name, value)
	}

	return into, nil
}

// parsePart parses everything between two boundary tokens. The part may either be
// well-formed (headers, blank line, content) or collapsed, having no blank line, so the
// value follows the closing quote of the name attribute on the very same line.
func parsePart(section string) (name, value string, err error) {
	section = strings.TrimSuffix(section, delimiterMarker)
	section = strings.TrimSuffix(section, "\r\n")

	s := newStream(section)
	var inline string

	for !s.Empty() {
		line := s.AdvanceLine()
		if len(line) == 0 {
			// the rest of the part is the content itself
			return name, s.Expose(), nil
		}

		lineName, rest, isFile := parseDispositionLine(line)
		if isFile {
			return "", "", status.ErrUnsupportedFormPart
		}

		if len(lineName) > 0 {
			name, inline = lineName, rest
		}
	}

	return name, inline, nil
}

// parseDispositionLine extracts the name attribute. Lines not carrying it yield an empty name.
func parseDispositionLine(line string) (name, rest string, isFile bool) {
	s := newStream(strutil.TrimWS(line))
	for s.Consume(delimiterMarker) {
	}

	s.SkipWhitespaces()
	if s.ConsumeFold(disposition) {
		s.SkipWhitespaces()
		s.ConsumeFold(formData)
		s.SkipWhitespaces()
	}

	attrs := s.Expose()
	if strings.Contains(attrs, "filename=") {
		return "", "", true
	}

	begin := findNameAttr(attrs)
	if begin == -1 {
		return "", "", false
	}

	attrs = attrs[begin+len(nameAttr):]
	closing := strings.IndexByte(attrs, '"')
	if closing == -1 {
		return "", "", false
	}

	rest = strutil.TrimWS(attrs[closing+1:])
	if strings.HasPrefix(rest, ";") {
		// more attributes rather than a collapsed value
		rest = ""
	}

	return attrs[:closing], rest, false
}

// findNameAttr looks for the name attribute, skipping attributes merely ending with it.
func findNameAttr(attrs string) int {
	offset := 0

	for {
		index := strings.Index(attrs[offset:], nameAttr)
		if index == -1 {
			return -1
		}

		index += offset
		if index == 0 || attrs[index-1] == ' ' || attrs[index-1] == ';' || attrs[index-1] == '\t' {
			return index
		}

		offset = index + len(nameAttr)
	}
}
