package moods

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxContentLength is the maximum number of characters an entry may contain.
const MaxContentLength = 1000

// DateLayout is the calendar-day format used for entry and quote dates.
const DateLayout = "2006-01-02"

var (
	ErrContentEmpty   = errors.New("content is empty")
	ErrContentTooLong = errors.New("content exceeds 1000 characters")
)

// ValidateContent checks user input before it is sent anywhere.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

// FormatDate returns the local calendar day of t.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Truncate shortens text to at most max characters, appending "..." when cut.
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max]) + "..."
}

// ShareText renders an entry as a short shareable snippet.
func ShareText(content, aiResponse string) string {
	return "💭 " + Truncate(content, 50) + "\n\n🤖 " + Truncate(aiResponse, 100) + "\n\n来自 AI倾诉小站 - 你的情绪记录伙伴"
}
