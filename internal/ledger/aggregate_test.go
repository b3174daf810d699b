package ledger

import (
	"testing"

	"github.com/xiyiji-official/fiance-backend/internal/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestSummarize_Empty 空账单集合返回全零
func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)

	for name, got := range map[string]decimal.Decimal{
		"balance":                         sum.Balance,
		"total_positive_amount":           sum.TotalPositiveAmount,
		"total_handled_negative_amount":   sum.TotalHandledNegativeAmount,
		"total_unhandled_negative_amount": sum.TotalUnhandledNegativeAmount,
	} {
		if !got.IsZero() {
			t.Errorf("%s = %s, want 0", name, got)
		}
	}
}

// TestSummarize_Example 典型场景：收入 + 已结算支出 + 未结算支出
func TestSummarize_Example(t *testing.T) {
	bills := []models.Bill{
		{Amount: dec("1000"), Handled: false},
		{Amount: dec("-200"), Handled: true},
		{Amount: dec("-50"), Handled: false},
	}

	sum := Summarize(bills)

	if !sum.TotalPositiveAmount.Equal(dec("1000")) {
		t.Errorf("total_positive_amount = %s, want 1000", sum.TotalPositiveAmount)
	}
	if !sum.TotalHandledNegativeAmount.Equal(dec("-200")) {
		t.Errorf("total_handled_negative_amount = %s, want -200", sum.TotalHandledNegativeAmount)
	}
	if !sum.TotalUnhandledNegativeAmount.Equal(dec("-50")) {
		t.Errorf("total_unhandled_negative_amount = %s, want -50", sum.TotalUnhandledNegativeAmount)
	}
	if !sum.Balance.Equal(dec("750")) {
		t.Errorf("balance = %s, want 750", sum.Balance)
	}
}

// TestSummarize_BalanceIdentity 余额恒等于三类合计之和
func TestSummarize_BalanceIdentity(t *testing.T) {
	cases := [][]models.Bill{
		{},
		{{Amount: dec("0.01"), Handled: true}},
		{{Amount: dec("-0.01"), Handled: true}, {Amount: dec("-0.02"), Handled: false}},
		{
			{Amount: dec("1234.56")},
			{Amount: dec("-1234.56"), Handled: true},
			{Amount: dec("-0.44")},
			{Amount: dec("99.99"), Handled: true}, // 正数的 handled 标志不影响分类
		},
	}

	for i, bills := range cases {
		sum := Summarize(bills)
		want := sum.TotalPositiveAmount.
			Add(sum.TotalHandledNegativeAmount).
			Add(sum.TotalUnhandledNegativeAmount)
		if !sum.Balance.Equal(want) {
			t.Errorf("case %d: balance = %s, want %s", i, sum.Balance, want)
		}
	}
}

// TestSummarize_ZeroAmount 金额为 0 的账单不计入任何一类
func TestSummarize_ZeroAmount(t *testing.T) {
	bills := []models.Bill{
		{Amount: dec("0"), Handled: false},
		{Amount: dec("0"), Handled: true},
		{Amount: dec("100")},
	}

	sum := Summarize(bills)

	if !sum.TotalPositiveAmount.Equal(dec("100")) {
		t.Errorf("total_positive_amount = %s, want 100", sum.TotalPositiveAmount)
	}
	if !sum.TotalHandledNegativeAmount.IsZero() || !sum.TotalUnhandledNegativeAmount.IsZero() {
		t.Errorf("negative totals = %s / %s, want 0 / 0",
			sum.TotalHandledNegativeAmount, sum.TotalUnhandledNegativeAmount)
	}
	if !sum.Balance.Equal(dec("100")) {
		t.Errorf("balance = %s, want 100", sum.Balance)
	}
}
