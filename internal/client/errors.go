package client

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrRequestFailed      = errors.New("request failed")

	errNoRefreshToken = errors.New("no refresh token")
)

// RequestError - 원격 API 호출 실패 (401 재시도 이후 포함)
//
// StatusCode가 0이면 응답을 받지 못한 전송 오류다.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s %s: %v", e.Method, e.Endpoint, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("request failed: %s %s returned status %d: %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request failed: %s %s returned status %d", e.Method, e.Endpoint, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

// StatusCode returns the remote status carried by err, or 0.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
