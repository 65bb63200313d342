package session

import (
	"errors"
	"fmt"
	"io"
)

// ErrInputTooLarge is returned when a document exceeds the input ceiling.
var ErrInputTooLarge = errors.New("input too large")

// ReadInput reads at most limit bytes of text from r. A limit of zero or less
// reads everything.
func ReadInput(r io.Reader, limit int64) (string, error) {
	if limit <= 0 {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if int64(len(b)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}
	return string(b), nil
}
