package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound 账单不存在
var ErrNotFound = errors.New("bill not found")

// ValidationError 输入校验失败（日期格式、月份范围等）
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
