package util

import (
	"fmt"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail 验证邮箱格式
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 255 {
		return fmt.Errorf("email too long, max 255 characters")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateMonth 验证月份（必须在 1-12 之间）
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return nil
}

// ValidateSummary 验证账单摘要（长度合理即可，可以为空）
func ValidateSummary(summary string) error {
	if len(summary) > 255 {
		return fmt.Errorf("summary too long, max 255 characters")
	}
	return nil
}
