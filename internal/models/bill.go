package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill 表示一笔账单记录
// 金额带符号：正数为收入，负数为支出，没有单独的类型字段
type Bill struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"index;not null"`
	BillDate  time.Time       `gorm:"index;not null"`              // 交易时间
	Summary   string          `gorm:"size:255"`                    // 摘要
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null"` // 金额，正负均可
	Handled   bool            `gorm:"not null;default:false"`      // 支出是否已结算
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:RESTRICT"`
}
