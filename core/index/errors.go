package index

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyAlias       = errors.New("alias is empty")
	ErrEmptyIndexName   = errors.New("index name is empty")
	ErrUnresolvedToken  = errors.New("unresolved naming pattern token")
	ErrNotPending       = errors.New("session has no index pending install")
	ErrNilSession       = errors.New("nil session")
	ErrMissingPublisher = errors.New("publisher is not configured")
)

// ProvisioningError is returned when an index cannot be created or updated.
type ProvisioningError struct {
	Op    string
	Index string
	Err   error
}

func (err ProvisioningError) Error() string {
	var s strings.Builder
	s.WriteString("index provisioning error: ")
	if err.Op != "" {
		s.WriteString(err.Op + ": ")
	}
	if err.Index != "" {
		s.WriteString("index '" + err.Index + "': ")
	}
	s.WriteString(err.Err.Error())
	return s.String()
}

func (err ProvisioningError) Unwrap() error {
	return err.Err
}

// TransportError wraps a failure talking to the search engine.
type TransportError struct {
	Op  string
	Err error
}

func (err TransportError) Error() string {
	return fmt.Sprintf("search engine transport error: %s: %s", err.Op, err.Err)
}

func (err TransportError) Unwrap() error {
	return err.Err
}

// StaleIndexCleanupError reports an index that could not be deleted after
// the alias moved away from it. It is never fatal.
type StaleIndexCleanupError struct {
	Index string
	Err   error
}

func (err StaleIndexCleanupError) Error() string {
	return fmt.Sprintf("cleanup stale index %q: %s", err.Index, err.Err)
}

func (err StaleIndexCleanupError) Unwrap() error {
	return err.Err
}

// BulkFailure is a single rejected item of a bulk write.
type BulkFailure struct {
	ID     string
	Status int
	Type   string
	Reason string
}

// BulkError is returned when the engine rejected items of a bulk write.
type BulkError struct {
	Index    string
	Failures []BulkFailure
}

func (err BulkError) Error() string {
	msgs := make([]string, 0, len(err.Failures))
	for _, f := range err.Failures {
		msgs = append(msgs, fmt.Sprintf("id=%s: %s - %s", f.ID, f.Type, f.Reason))
	}
	return fmt.Sprintf("bulk write to %q: %d item(s) failed: %s", err.Index, len(err.Failures), strings.Join(msgs, "; "))
}

// PatternError reports a naming pattern token that could not be resolved.
type PatternError struct {
	Pattern string
	Token   string
}

func (err PatternError) Error() string {
	return fmt.Sprintf("naming pattern %q: token {{%s}}: %s", err.Pattern, err.Token, ErrUnresolvedToken)
}

func (err PatternError) Unwrap() error {
	return ErrUnresolvedToken
}
