package monobank

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrRequestFailed is wrapped by every failed API call, whatever the cause.
var ErrRequestFailed = errors.New("monobank request failed")

var (
	errNetwork = errors.New("network")
	errDecode  = errors.New("decode")
)

type requestError struct {
	op    string
	kind  error
	cause error
}

func (e *requestError) Error() string {
	return fmt.Sprintf("%s: %s %v: %v", ErrRequestFailed, e.op, e.kind, e.cause)
}

func (e *requestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *requestError) Unwrap() error {
	return e.cause
}

func (c *Client) fail(op, path string, status int, kind, cause error) error {
	c.logger.Warn("monobank request failed",
		zap.String("op", op),
		zap.String("kind", kind.Error()),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Error(cause),
	)
	return &requestError{op: op, kind: kind, cause: cause}
}
