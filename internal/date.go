package internal

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// UnixTime is a timestamp carried on the wire as UNIX seconds.
type UnixTime struct{ time.Time }

func NewUnixTime(sec int64) UnixTime {
	return UnixTime{Time: time.Unix(sec, 0).UTC()}
}

func (t *UnixTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	sec, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("parse unix time %q: %w", string(b), err)
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}
