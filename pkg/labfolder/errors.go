package labfolder

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for client-side misuse. These are returned before any
// request is made, so a caller hitting one has a bug, not a network problem.
var (
	// ErrNotLoggedIn is returned by operations that require an
	// authenticated session.
	ErrNotLoggedIn = errors.New("labfolder: not logged in")

	// ErrAlreadyLoggedIn is returned by Login when the client already holds
	// an authenticated session. Log out first to switch accounts.
	ErrAlreadyLoggedIn = errors.New("labfolder: already logged in")

	// ErrNoGroupMembership is returned when an operation needs a user's
	// group-membership id and the given user does not carry one. Membership
	// ids are only known for users taken from a group tree.
	ErrNoGroupMembership = errors.New("labfolder: user has no group membership id")

	// ErrUnsupportedKind is returned when a record kind does not support the
	// requested operation, for example transferring ownership of an entry.
	ErrUnsupportedKind = errors.New("labfolder: operation not supported for record kind")
)

// APIError is returned when the remote API answers with an unexpected HTTP
// status. Message carries the server-provided explanation verbatim when the
// response body contained one.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("labfolder: %s %s: %s (status %d)", e.Method, e.Path, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("labfolder: %s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// apiErrorBody is the error envelope the API uses for failed requests.
type apiErrorBody struct {
	Message string `json:"message"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
	}

	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Message
	}
	return apiErr
}
