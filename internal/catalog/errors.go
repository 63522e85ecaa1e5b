package catalog

import "fmt"

// SearchError reports a failed search: a network failure, a non-success
// HTTP status, or a response in which no result nodes could be located
// (typically a sign the markup structure changed).
type SearchError struct {
	Query string
	Cause error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q failed: %v", e.Query, e.Cause)
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}
