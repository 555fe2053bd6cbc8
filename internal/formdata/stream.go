package formdata

import (
	"strings"

	"github.com/indigo-web/rawhttp/internal/strutil"
)

type stream struct {
	data string
}

func newStream(data string) stream {
	return stream{data}
}

func (s *stream) FindSubstr(str string) int {
	return strings.Index(s.data, str)
}

func (s *stream) Consume(str string) bool {
	if strings.HasPrefix(s.data, str) {
		s.Advance(len(str))
		return true
	}

	return false
}

func (s *stream) ConsumeFold(str string) bool {
	rest, found := strutil.CutPrefixFold(s.data, str)
	s.data = rest
	return found
}

func (s *stream) Advance(n int) (leftBehind string) {
	leftBehind, s.data = s.data[:n], s.data[n:]
	return leftBehind
}

// AdvanceUntil returns everything up to the first occurrence of the separator and skips
// the separator itself. If there's no separator, the rest of the stream is returned.
func (s *stream) AdvanceUntil(sep string) (leftBehind string, found bool) {
	index := s.FindSubstr(sep)
	if index == -1 {
		return s.Advance(len(s.data)), false
	}

	leftBehind = s.Advance(index)
	s.Advance(len(sep))
	return leftBehind, true
}

// AdvanceLine returns the next line without its CRLF.
func (s *stream) AdvanceLine() string {
	line, _ := s.AdvanceUntil("\r\n")
	return line
}

func (s *stream) SkipWhitespaces() {
	s.data = strutil.LStripWS(s.data)
}

func (s *stream) Empty() bool {
	return len(s.data) == 0
}

func (s *stream) Expose() string {
	return s.data
}
