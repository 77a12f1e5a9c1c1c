package pixiv

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by endpoints that need a bearer token
// when the client has not completed a Login or Authenticate call. The
// check happens before any network I/O.
var ErrNotAuthenticated = errors.New("pixiv: authentication required")

// APIError is returned for a 4xx response (StatusCode and the raw body
// text are kept) and for a response body that is not valid JSON (the
// body was unusable, so Body stays empty and the decode error is
// wrapped instead).
type APIError struct {
	StatusCode int
	Body       string

	cause error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("pixiv: bad API response (status %d): %v", e.StatusCode, e.cause)
	}
	return fmt.Sprintf("pixiv: bad API response (status %d)", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// AuthError covers every way a token grant can fail: transport errors,
// non-2xx statuses, undecodable bodies and grant responses missing the
// token fields. No client state is committed when it is returned.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("pixiv: login failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type ErrInvalidParams struct {
	Errs []ErrInvalidParam
}

func (e *ErrInvalidParams) Error() string {
	return fmt.Sprintf("%d validation error(s) found", len(e.Errs))
}

func (e *ErrInvalidParams) Add(err ErrInvalidParam) {
	e.Errs = append(e.Errs, err)
}

func (e *ErrInvalidParams) Len() int {
	return len(e.Errs)
}

type ErrInvalidParam struct {
	Field   string
	Message string
}

func (e ErrInvalidParam) Error() string {
	return fmt.Sprintf("%s, %s", e.Field, e.Message)
}
