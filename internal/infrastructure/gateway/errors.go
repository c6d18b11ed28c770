package gateway

import "fmt"

// HTTPError is a transport-level failure: the gateway answered with a non-2xx
// status before any envelope could be read.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("gateway HTTP %d: %s", e.StatusCode, e.Body)
}

// BusinessError is a gateway rejection: the HTTP exchange succeeded but the
// envelope carried a resultCd other than 000.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("gateway rejected request: %s (result code %s)", e.Message, e.Code)
}
