package models

import "time"

// User represents application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:64;index;not null"`
	Nickname     string `gorm:"size:64"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	IsActive     bool   `gorm:"not null;default:true"` // 注销后置为 false，账单保留
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LastLoginAt *time.Time // 最近登录时间
	LastLoginIP string     `gorm:"size:64"` // 最近登录 IP

	Bills []Bill `gorm:"foreignKey:UserID"` // 仅用于展示，余额单独计算
}
