package ledger

import (
	"github.com/xiyiji-official/fiance-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Summary 用户账单的汇总数据，读取时现算，不落库
type Summary struct {
	Balance                      decimal.Decimal `json:"balance"`
	TotalPositiveAmount          decimal.Decimal `json:"total_positive_amount"`
	TotalHandledNegativeAmount   decimal.Decimal `json:"total_handled_negative_amount"`
	TotalUnhandledNegativeAmount decimal.Decimal `json:"total_unhandled_negative_amount"`
}

// Summarize 按输入顺序累加，计算三类合计和余额。
// 金额为 0 的账单不计入任何一类；空集合返回全零。
func Summarize(bills []models.Bill) Summary {
	sum := Summary{
		Balance:                      decimal.Zero,
		TotalPositiveAmount:          decimal.Zero,
		TotalHandledNegativeAmount:   decimal.Zero,
		TotalUnhandledNegativeAmount: decimal.Zero,
	}

	for i := range bills {
		amount := bills[i].Amount
		switch {
		case amount.IsPositive():
			sum.TotalPositiveAmount = sum.TotalPositiveAmount.Add(amount)
		case amount.IsNegative() && bills[i].Handled:
			sum.TotalHandledNegativeAmount = sum.TotalHandledNegativeAmount.Add(amount)
		case amount.IsNegative():
			sum.TotalUnhandledNegativeAmount = sum.TotalUnhandledNegativeAmount.Add(amount)
		}
	}

	sum.Balance = sum.TotalPositiveAmount.
		Add(sum.TotalHandledNegativeAmount).
		Add(sum.TotalUnhandledNegativeAmount)
	return sum
}
