package method

type Method uint8

const (
	// Unknown is the zero value, never produced by a successful decode.
	Unknown Method = iota
	GET
	POST
)

// Parse matches the request-line token against the supported methods. Matching is
// case-sensitive, as method tokens are.
func Parse(str string) Method {
	switch str {
	case "GET":
		return GET
	case "POST":
		return POST
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	}

	return "Unknown"
}
