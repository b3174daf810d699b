package ledger

import (
	"time"

	"github.com/xiyiji-official/fiance-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout 账单日期的固定格式
const DateLayout = "2006-01-02 15:04:05"

// Service 账单生命周期管理，调用方传入的用户 ID 已经过鉴权
type Service struct {
	Store *Store
}

func NewService(db *gorm.DB) *Service {
	return &Service{Store: NewStore(db)}
}

// BillPatch 部分更新，nil 字段不修改
type BillPatch struct {
	BillDate *string
	Summary  *string
	Amount   *decimal.Decimal
	Handled  *bool
}

func parseBillDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "bill_date", Reason: "格式必须为 YYYY-MM-DD HH:MM:SS"}
	}
	return t, nil
}

// Create 为指定用户创建账单，日期解析失败时不写库
func (s *Service) Create(ownerID uint, dateStr, summary string, amount decimal.Decimal, handled bool) (*models.Bill, error) {
	billDate, err := parseBillDate(dateStr)
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		UserID:   ownerID,
		BillDate: billDate,
		Summary:  summary,
		Amount:   amount,
		Handled:  handled,
	}
	if err := s.Store.Insert(bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Get 按 ID 读取账单
func (s *Service) Get(billID uint) (*models.Bill, error) {
	return s.Store.Get(billID)
}

// List 分页读取全部账单
func (s *Service) List(skip, limit int) ([]models.Bill, error) {
	return s.Store.List(skip, limit)
}

// ListForMonth 读取用户某月（1-12）的账单，没有匹配时返回空切片
func (s *Service) ListForMonth(userID uint, month int) ([]models.Bill, error) {
	if month < 1 || month > 12 {
		return nil, &ValidationError{Field: "month", Reason: "月份必须在 1-12 之间"}
	}
	return s.Store.ByOwnerMonth(userID, month)
}

// Update 部分更新账单，只应用 patch 里非 nil 的字段。
// 空 patch 原样返回账单。
func (s *Service) Update(billID uint, patch BillPatch) (*models.Bill, error) {
	bill, err := s.Store.Get(billID)
	if err != nil {
		return nil, err
	}

	if patch.BillDate != nil {
		billDate, err := parseBillDate(*patch.BillDate)
		if err != nil {
			return nil, err
		}
		bill.BillDate = billDate
	}
	if patch.Summary != nil {
		bill.Summary = *patch.Summary
	}
	if patch.Amount != nil {
		bill.Amount = *patch.Amount
	}
	if patch.Handled != nil {
		bill.Handled = *patch.Handled
	}

	if err := s.Store.Save(bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Delete 删除账单并返回删除前的内容
func (s *Service) Delete(billID uint) (*models.Bill, error) {
	bill, err := s.Store.Get(billID)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Delete(billID); err != nil {
		return nil, err
	}
	return bill, nil
}

// SummarizeUser 读取用户全部账单并计算汇总
func (s *Service) SummarizeUser(userID uint) (Summary, error) {
	bills, err := s.Store.ByOwner(userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(bills), nil
}
