package ledger

import (
	"errors"

	"github.com/xiyiji-official/fiance-backend/internal/models"

	"gorm.io/gorm"
)

// Store 账单持久层，每个方法对应一次独立的数据库操作
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Insert 写入一条新账单，ID 由数据库分配
func (s *Store) Insert(bill *models.Bill) error {
	return s.DB.Create(bill).Error
}

// Get 按 ID 查找账单
func (s *Store) Get(billID uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.DB.First(&bill, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// List 分页全表扫描，按 ID 升序保证顺序稳定
func (s *Store) List(skip, limit int) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.DB.Order("id ASC").Offset(skip).Limit(limit).Find(&bills).Error
	return bills, err
}

// ByOwner 查某个用户的全部账单，按创建顺序返回
func (s *Store) ByOwner(userID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.DB.Where("user_id = ?", userID).Order("id ASC").Find(&bills).Error
	return bills, err
}

// ByOwnerMonth 查某个用户指定月份（不区分年份）的账单
func (s *Store) ByOwnerMonth(userID uint, month int) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.DB.
		Where("user_id = ? AND CAST(strftime('%m', bill_date) AS INTEGER) = ?", userID, month).
		Order("id ASC").
		Find(&bills).Error
	return bills, err
}

// Save 保存整条账单记录
func (s *Store) Save(bill *models.Bill) error {
	return s.DB.Save(bill).Error
}

// Delete 按 ID 删除账单
func (s *Store) Delete(billID uint) error {
	res := s.DB.Delete(&models.Bill{}, billID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
