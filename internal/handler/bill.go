package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/xiyiji-official/fiance-backend/internal/ledger"
	"github.com/xiyiji-official/fiance-backend/internal/models"
	"github.com/xiyiji-official/fiance-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillHandler 负责账单相关接口
type BillHandler struct {
	Service  *ledger.Service
	PageSize int
}

func NewBillHandler(db *gorm.DB, pageSize int) *BillHandler {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &BillHandler{
		Service:  ledger.NewService(db),
		PageSize: pageSize,
	}
}

// ---------- 请求/响应结构 ----------

type createBillReq struct {
	BillDate string          `json:"bill_date" binding:"required"`
	Summary  string          `json:"summary" binding:"max=255"`
	Amount   decimal.Decimal `json:"amount"`
	Handled  bool            `json:"handled"`
}

type updateBillReq struct {
	BillDate *string          `json:"bill_date"`
	Summary  *string          `json:"summary"`
	Amount   *decimal.Decimal `json:"amount"`
	Handled  *bool            `json:"handled"`
}

type billResp struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	BillDate  string          `json:"bill_date"` // YYYY-MM-DD HH:MM:SS
	Summary   string          `json:"summary"`
	Amount    decimal.Decimal `json:"amount"`
	Handled   bool            `json:"handled"`
	CreatedAt time.Time       `json:"created_at"`
}

func toBillResp(b *models.Bill) billResp {
	return billResp{
		ID:        b.ID,
		UserID:    b.UserID,
		BillDate:  b.BillDate.Format(ledger.DateLayout),
		Summary:   b.Summary,
		Amount:    b.Amount,
		Handled:   b.Handled,
		CreatedAt: b.CreatedAt,
	}
}

func toBillResps(bills []models.Bill) []billResp {
	items := make([]billResp, 0, len(bills))
	for i := range bills {
		items = append(items, toBillResp(&bills[i]))
	}
	return items
}

// ledgerError 把核心层的类型化错误映射为统一返回
func ledgerError(c *gin.Context, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, verr.Error())
	case errors.Is(err, ledger.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "账单不存在")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "操作失败，请重试")
	}
}

// ---------- 记一笔 ----------

// CreateBill 为当前登录用户创建账单
func (h *BillHandler) CreateBill(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var req createBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	if err := util.ValidateSummary(req.Summary); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "摘要过长")
		return
	}

	// 归属统一用当前用户的 ID
	bill, err := h.Service.Create(user.ID, req.BillDate, req.Summary, req.Amount, req.Handled)
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"bill": toBillResp(bill),
	})
}

// ---------- 查询 ----------

// ListBills 分页读取账单列表
func (h *BillHandler) ListBills(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.PageSize)))
	if limit <= 0 || limit > h.PageSize {
		limit = h.PageSize
	}

	bills, err := h.Service.List(skip, limit)
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"items": toBillResps(bills),
		"skip":  skip,
		"limit": limit,
	})
}

// GetBill 按 ID 读取单条账单
func (h *BillHandler) GetBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	bill, err := h.Service.Get(uint(id))
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"bill": toBillResp(bill),
	})
}

// MyMonthBills 按月查询当前用户的账单，?month=1-12
func (h *BillHandler) MyMonthBills(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份参数错误")
		return
	}
	if err := util.ValidateMonth(month); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份必须在 1-12 之间")
		return
	}

	bills, err := h.Service.ListForMonth(user.ID, month)
	if err != nil {
		ledgerError(c, err)
		return
	}

	// 与旧接口保持一致：本月没有账单按 404 处理
	if len(bills) == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "本月无账单明细内容")
		return
	}

	util.Success(c, util.Response{
		"month": month,
		"items": toBillResps(bills),
	})
}

// MySummary 返回当前用户的余额汇总
func (h *BillHandler) MySummary(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	sum, err := h.Service.SummarizeUser(user.ID)
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"summary": sum,
	})
}

// ---------- 修改 ----------

// UpdateBill 部分更新账单（只能修改自己的）
func (h *BillHandler) UpdateBill(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	var req updateBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}
	if req.Summary != nil {
		if err := util.ValidateSummary(*req.Summary); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "摘要过长")
			return
		}
	}

	// 归属校验
	bill, err := h.Service.Get(uint(id))
	if err != nil {
		ledgerError(c, err)
		return
	}
	if bill.UserID != user.ID {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "账单不存在")
		return
	}

	updated, err := h.Service.Update(uint(id), ledger.BillPatch{
		BillDate: req.BillDate,
		Summary:  req.Summary,
		Amount:   req.Amount,
		Handled:  req.Handled,
	})
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"bill": toBillResp(updated),
	})
}

// ---------- 删除 ----------

// DeleteBill 删除账单并返回删除前的内容（只能删除自己的）
func (h *BillHandler) DeleteBill(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	bill, err := h.Service.Get(uint(id))
	if err != nil {
		ledgerError(c, err)
		return
	}
	if bill.UserID != user.ID {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "账单不存在")
		return
	}

	deleted, err := h.Service.Delete(uint(id))
	if err != nil {
		ledgerError(c, err)
		return
	}

	util.Success(c, util.Response{
		"bill": toBillResp(deleted),
	})
}
