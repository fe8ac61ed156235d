package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/generated/servers"
	"qrave/internal/pkg/errs"
)

// APIError is a non-2xx answer. It unwraps to the errs sentinel matching the
// status so callers can use errors.Is as they would against the core.
type APIError struct {
	StatusCode int
	Body       servers.Error
}

func (e *APIError) Error() string {
	if e.Body.Current != nil && e.Body.Target != nil {
		return fmt.Sprintf("api error %d: %s (%s -> %s)", e.StatusCode, e.Body.Message, *e.Body.Current, *e.Body.Target)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Body.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return errs.ErrObjectNotFound
	case e.StatusCode == http.StatusUnauthorized:
		return restaurant.ErrInvalidCredentials
	case e.StatusCode == http.StatusBadRequest:
		return errs.ErrValueIsInvalid
	case e.StatusCode == http.StatusConflict && e.Body.Current != nil:
		return errs.ErrInvalidTransition
	default:
		return nil
	}
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &apiErr.Body); err != nil || apiErr.Body.Message == "" {
		apiErr.Body = servers.Error{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return apiErr
}
