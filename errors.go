package forecast

import "fmt"

// UnrecognizedTokenError is returned when a wire token does not belong to the
// documented token set of the enum being decoded.
type UnrecognizedTokenError struct {
	Kind  string
	Token string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized %s token %q", e.Kind, e.Token)
}

// MalformedURLError is the payload of the panic raised when request
// finalization produces a syntactically invalid URL. It cannot occur for
// well-formed api keys and numeric coordinates.
type MalformedURLError struct {
	URL string
	Err error
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed request URL %q: %v", e.URL, e.Err)
}

func (e *MalformedURLError) Unwrap() error {
	return e.Err
}
