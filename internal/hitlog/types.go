package hitlog

import (
	"fmt"
	"strings"
	"time"
)

const (
	// TimestampLayout is the wire format for event timestamps.
	TimestampLayout = "2006-01-02 15:04:05"

	// RegistrationURL is the reserved conversion sentinel.
	RegistrationURL = "/register"

	// ArticlePrefix marks in-scope content URLs.
	ArticlePrefix = "/articles/"
)

// Event is a single observed page view or registration. Events are never
// mutated after reading.
type Event struct {
	PageName  string
	PageURL   string
	UserID    string
	Timestamp time.Time
}

// reports whether the event is the conversion sentinel
func (e Event) IsRegistration() bool {
	return e.PageURL == RegistrationURL
}

// reports whether the event hit in-scope article content
func (e Event) IsArticle() bool {
	return strings.HasPrefix(e.PageURL, ArticlePrefix)
}

// MalformedInputError reports an unusable hitlog header or row. Line is the
// 1-based line in the source; 0 means the header itself was unusable.
type MalformedInputError struct {
	Line int
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed hitlog input at line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("malformed hitlog input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
