package auth

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the normalized failure taxonomy. Every failure surfaced by the
// manager belongs to exactly one category.
type Category string

const (
	CategoryUserRejection Category = "user_rejection"
	CategoryPopupBlocked  Category = "popup_blocked"
	CategoryNetwork       Category = "network_error"
	CategoryConfiguration Category = "configuration_error"
	CategoryUnknown       Category = "unknown"
)

// Error is a classified authentication failure.
type Error struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"` // raw provider message
	Category    Category `json:"category"`
	Retryable   bool     `json:"retryable"`
	UserMessage string   `json:"user_message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// classifyRule maps message substrings to a category. Rules are evaluated in
// order; the first match wins.
type classifyRule struct {
	substrings []string
	category   Category
	retryable  bool
}

var classifyRules = []classifyRule{
	{[]string{"rejected", "cancelled"}, CategoryUserRejection, false},
	{[]string{"popup", "blocked"}, CategoryPopupBlocked, true},
	{[]string{"network", "timeout"}, CategoryNetwork, true},
	{[]string{"configuration", "not initialized"}, CategoryConfiguration, true},
}

// Classify converts a raw failure into the normalized taxonomy. The match is
// a case-insensitive substring heuristic over the error message, documented
// table-for-table in the package docs. An error that already is (or wraps) a
// classified *Error passes through unmodified, so adapters carrying precise
// knowledge are never second-guessed.
//
// Classify is a pure function of its inputs.
func Classify(method Method, err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, rule := range classifyRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return &Error{
					Code:        string(rule.category),
					Message:     msg,
					Category:    rule.category,
					Retryable:   rule.retryable,
					UserMessage: userMessage(rule.category, method, msg),
				}
			}
		}
	}

	return &Error{
		Code:        string(CategoryUnknown),
		Message:     msg,
		Category:    CategoryUnknown,
		Retryable:   true,
		UserMessage: userMessage(CategoryUnknown, method, msg),
	}
}

// userMessage renders the fixed per-category template. Configuration errors
// surface the raw message because it names the setup call the host is
// missing; hiding it behind a generic string would bury the fix.
func userMessage(category Category, method Method, raw string) string {
	switch category {
	case CategoryUserRejection:
		return "Authentication request was cancelled."
	case CategoryPopupBlocked:
		return "The sign-in popup was blocked. Allow popups for this site and try again."
	case CategoryNetwork:
		return "A network error interrupted sign-in. Check your connection and try again."
	case CategoryConfiguration:
		return raw
	default:
		return fmt.Sprintf("Failed to authenticate with %s", method)
	}
}

// configError builds a pre-classified configuration failure. The message is
// also the user-facing text, so it must name the missing setup step.
func configError(msg string) *Error {
	return &Error{
		Code:        string(CategoryConfiguration),
		Message:     msg,
		Category:    CategoryConfiguration,
		Retryable:   true,
		UserMessage: msg,
	}
}
