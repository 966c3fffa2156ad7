package model

import (
	"regexp"
	"strings"
)

// phonePattern accepts exactly ten decimal digits, nothing else.
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// MinNameLength is the minimum accepted registration name length.
const MinNameLength = 2

// UserRegistration is the session-scoped identity captured by the
// registration gate. It is created once per session and never persisted.
type UserRegistration struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Registered reports whether both registration steps have completed.
func (u UserRegistration) Registered() bool {
	return u.Name != "" && u.Phone != ""
}

// ValidateName checks a registration name against the minimum-length rule.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < MinNameLength {
		return ErrInvalidName
	}
	return nil
}

// ValidatePhone checks a phone number for the exact ten-digit form.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return ErrInvalidPhone
	}
	return nil
}

// UserProfile is the shape returned by GET /user; the backend may return
// null when no profile exists.
type UserProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AdminStats is the shape returned by GET /admin/stats.
type AdminStats struct {
	TotalOrders    int `json:"totalOrders"`
	TotalMessages  int `json:"totalMessages"`
	PendingSupport int `json:"pendingSupport"`
}
