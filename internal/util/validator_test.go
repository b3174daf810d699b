package util

import (
	"strings"
	"testing"
)

// TestValidateEmail_Valid 测试有效邮箱
func TestValidateEmail_Valid(t *testing.T) {
	testCases := []string{
		"a@b.cn",
		"user@example.com",
		"first.last+tag@mail.example.org",
	}

	for _, email := range testCases {
		err := ValidateEmail(email)
		if err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}
}

// TestValidateEmail_Invalid 测试无效邮箱（异常）
func TestValidateEmail_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-at.example.com",
		"two@@example.com",
		"space in@example.com",
	}

	for _, email := range testCases {
		err := ValidateEmail(email)
		if err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

// TestValidateMonth_Valid 测试有效月份
func TestValidateMonth_Valid(t *testing.T) {
	for month := 1; month <= 12; month++ {
		err := ValidateMonth(month)
		if err != nil {
			t.Errorf("ValidateMonth(%d) error = %v, want nil", month, err)
		}
	}
}

// TestValidateMonth_OutOfRange 测试越界月份（异常）
func TestValidateMonth_OutOfRange(t *testing.T) {
	testCases := []int{0, -1, 13, 100}

	for _, month := range testCases {
		err := ValidateMonth(month)
		if err == nil {
			t.Errorf("ValidateMonth(%d) error = nil, want error", month)
		}
	}
}

// TestValidateSummary_TooLong 测试过长摘要（异常）
func TestValidateSummary_TooLong(t *testing.T) {
	if err := ValidateSummary(strings.Repeat("x", 256)); err == nil {
		t.Error("ValidateSummary(256 chars) error = nil, want error")
	}
	if err := ValidateSummary(""); err != nil {
		t.Errorf("ValidateSummary(\"\") error = %v, want nil", err)
	}
}
