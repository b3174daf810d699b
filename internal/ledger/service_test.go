package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xiyiji-official/fiance-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService 在临时目录里建一个干净的 SQLite 库
func newTestService(t *testing.T) *Service {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "bill-ledger-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	db, err := gorm.Open(sqlite.Open(filepath.Join(tempDir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Bill{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewService(db)
}

func TestService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)

	bill, err := svc.Create(1, "2024-03-15 10:00:00", "rent", dec("-500.0"), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if bill.ID == 0 {
		t.Error("Create did not assign an ID")
	}

	got, err := svc.Get(bill.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Amount.Equal(dec("-500.0")) {
		t.Errorf("amount = %s, want -500", got.Amount)
	}
	if got.Handled {
		t.Error("handled = true, want false")
	}
	if got.Summary != "rent" {
		t.Errorf("summary = %q, want %q", got.Summary, "rent")
	}
	if got.BillDate.Month() != 3 {
		t.Errorf("month = %d, want 3", got.BillDate.Month())
	}
}

// TestService_CreateBadDate 非法日期必须报校验错误且不写库
func TestService_CreateBadDate(t *testing.T) {
	svc := newTestService(t)

	badDates := []string{
		"2024-13-40 99:99:99",
		"2024-03-15",
		"2024/03/15 10:00:00",
		"",
		"not-a-date",
	}

	for _, s := range badDates {
		_, err := svc.Create(1, s, "x", dec("1"), false)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Create(%q) error = %v, want *ValidationError", s, err)
		}
	}

	bills, err := svc.List(0, 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bills) != 0 {
		t.Errorf("store has %d bills after failed creates, want 0", len(bills))
	}
}

func TestService_ListForMonth(t *testing.T) {
	svc := newTestService(t)

	bill, err := svc.Create(7, "2024-03-15 10:00:00", "rent", dec("-500.0"), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// 另一个用户的同月账单不能混进来
	if _, err := svc.Create(8, "2024-03-02 08:00:00", "salary", dec("3000"), false); err != nil {
		t.Fatalf("Create: %v", err)
	}

	march, err := svc.ListForMonth(7, 3)
	if err != nil {
		t.Fatalf("ListForMonth: %v", err)
	}
	if len(march) != 1 || march[0].ID != bill.ID {
		t.Errorf("ListForMonth(7, 3) = %v, want the single rent bill", march)
	}

	april, err := svc.ListForMonth(7, 4)
	if err != nil {
		t.Fatalf("ListForMonth: %v", err)
	}
	if len(april) != 0 {
		t.Errorf("ListForMonth(7, 4) returned %d bills, want 0", len(april))
	}

	if _, err := svc.ListForMonth(7, 13); err == nil {
		t.Error("ListForMonth(7, 13) error = nil, want validation error")
	}
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)

	bill, err := svc.Create(1, "2024-03-15 10:00:00", "rent", dec("-500.0"), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("empty patch keeps bill unchanged", func(t *testing.T) {
		updated, err := svc.Update(bill.ID, BillPatch{})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !updated.Amount.Equal(bill.Amount) || updated.Summary != bill.Summary ||
			updated.Handled != bill.Handled || !updated.BillDate.Equal(bill.BillDate) {
			t.Errorf("empty patch changed the bill: %+v", updated)
		}
	})

	t.Run("partial patch applies only given fields", func(t *testing.T) {
		handled := true
		updated, err := svc.Update(bill.ID, BillPatch{Handled: &handled})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !updated.Handled {
			t.Error("handled = false, want true")
		}
		if !updated.Amount.Equal(dec("-500.0")) || updated.Summary != "rent" {
			t.Errorf("patch touched unrelated fields: %+v", updated)
		}
	})

	t.Run("date patch is re-parsed", func(t *testing.T) {
		dateStr := "2024-04-01 00:00:00"
		updated, err := svc.Update(bill.ID, BillPatch{BillDate: &dateStr})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.BillDate.Month() != 4 {
			t.Errorf("month = %d, want 4", updated.BillDate.Month())
		}

		bad := "2024-04-01"
		if _, err := svc.Update(bill.ID, BillPatch{BillDate: &bad}); err == nil {
			t.Error("Update with bad date error = nil, want validation error")
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		if _, err := svc.Update(99999, BillPatch{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update(99999) error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)

	bill, err := svc.Create(1, "2024-03-15 10:00:00", "rent", dec("-500.0"), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(bill.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted.Amount.Equal(dec("-500.0")) {
		t.Errorf("deleted bill amount = %s, want -500", deleted.Amount)
	}

	if _, err := svc.Get(bill.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Delete(bill.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestService_SummarizeUser(t *testing.T) {
	svc := newTestService(t)

	seed := []struct {
		amount  string
		handled bool
	}{
		{"1000", false},
		{"-200", true},
		{"-50", false},
	}
	for _, s := range seed {
		if _, err := svc.Create(42, "2024-03-15 10:00:00", "x", dec(s.amount), s.handled); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	// 无关用户的账单
	if _, err := svc.Create(43, "2024-03-15 10:00:00", "x", dec("77"), false); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sum, err := svc.SummarizeUser(42)
	if err != nil {
		t.Fatalf("SummarizeUser: %v", err)
	}
	if !sum.Balance.Equal(dec("750")) {
		t.Errorf("balance = %s, want 750", sum.Balance)
	}

	// 没有账单的用户返回全零
	empty, err := svc.SummarizeUser(999)
	if err != nil {
		t.Fatalf("SummarizeUser: %v", err)
	}
	if !empty.Balance.IsZero() || !empty.TotalPositiveAmount.IsZero() {
		t.Errorf("summary for empty user = %+v, want all zero", empty)
	}
}
