package api

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrSessionExpired is returned once the single refresh attempt allowed for
// a 401 has itself failed; the session can not be recovered client side.
const ErrSessionExpired = Error("session expired")

// TransportError wraps a network level failure, before any response arrived.
type TransportError struct {
	Err error
}

func (t TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", t.Err)
}

func (t TransportError) Unwrap() error {
	return t.Err
}

// BusinessError carries a 4xx rejection, with the server provided message
// verbatim so dialogs can display it.
type BusinessError struct {
	StatusCode int
	Message    string
}

func (b BusinessError) Error() string {
	return fmt.Sprintf("request rejected (%d): %s", b.StatusCode, b.Message)
}

// ServerError covers 5xx responses; no message is surfaced and no retry is
// attempted.
type ServerError struct {
	StatusCode int
}

func (s ServerError) Error() string {
	return fmt.Sprintf("server failure (%d)", s.StatusCode)
}

func messageFromBody(statusCode int, data []byte) string {
	if result := gjson.GetBytes(data, "message"); result.Exists() {
		return result.String()
	}

	if result := gjson.GetBytes(data, "error"); result.Exists() {
		return result.String()
	}

	return http.StatusText(statusCode)
}
