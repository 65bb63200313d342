// Package session turns parsed session drafts into validated store records.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creait/sessionkit/internal/config"
	"github.com/creait/sessionkit/internal/model"
	"github.com/creait/sessionkit/internal/parser"
)

// DateLayout is the calendar date format sessions are stored with.
const DateLayout = "2006-01-02"

// ValidationError reports a rejected field with a user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate rejects a parsed draft missing anything a stored session needs.
// The parser signals absence with empty values, so every required field is
// checked here.
func Validate(p parser.ParsedSession) error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Message: "제목을 입력해주세요"}
	}
	if err := ValidateDate(p.Date); err != nil {
		return err
	}
	if strings.TrimSpace(p.Summary) == "" {
		return &ValidationError{Field: "summary", Message: "요약을 입력해주세요"}
	}
	if len(p.Goals) == 0 {
		return &ValidationError{Field: "goals", Message: "목표를 최소 1개 입력해주세요"}
	}
	for i, b := range p.Blocks {
		if err := validateBlock(i, b.Type, b.Title); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDate checks for a real YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if date == "" {
		return &ValidationError{Field: "date", Message: "날짜를 입력해주세요"}
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return &ValidationError{Field: "date", Message: fmt.Sprintf("날짜 형식이 올바르지 않습니다: %q (YYYY-MM-DD)", date)}
	}
	return nil
}

func validateBlock(i int, typ model.BlockType, title string) error {
	field := fmt.Sprintf("blocks[%d]", i)
	if !model.ValidBlockTypes[typ] {
		return &ValidationError{Field: field + ".type", Message: fmt.Sprintf("알 수 없는 블록 유형: %q", typ)}
	}
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: field + ".title", Message: "제목을 입력해주세요"}
	}
	return nil
}

// DecorateTitle prefixes a parsed title with its day label.
func DecorateTitle(format string, day int, title string) (string, error) {
	if day < 1 {
		return "", &ValidationError{Field: "day", Message: fmt.Sprintf("일차는 1 이상이어야 합니다: %d", day)}
	}
	if format == "" {
		format = config.DefaultTitleFormat
	}
	return fmt.Sprintf(format, day, title), nil
}
