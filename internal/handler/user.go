package handler

import (
	"net/http"
	"strconv"

	"github.com/xiyiji-official/fiance-backend/internal/ledger"
	"github.com/xiyiji-official/fiance-backend/internal/models"
	"github.com/xiyiji-official/fiance-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler 负责用户信息接口
type UserHandler struct {
	DB       *gorm.DB
	Service  *ledger.Service
	PageSize int
}

func NewUserHandler(db *gorm.DB, pageSize int) *UserHandler {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &UserHandler{
		DB:       db,
		Service:  ledger.NewService(db),
		PageSize: pageSize,
	}
}

// GetMe 返回当前登录用户信息和余额汇总（需要经过 AuthMiddleware）
// 用户实体本身不变，汇总作为单独的值返回
func (h *UserHandler) GetMe(c *gin.Context) {
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
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "统计失败")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"nickname":   user.Nickname,
			"email":      user.Email,
			"is_active":  user.IsActive,
			"created_at": user.CreatedAt,
		},
		"summary": sum,
	})
}

// ListUsers 分页读取用户列表（只有基础资料，不做余额汇总）
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.PageSize)))
	if limit <= 0 || limit > h.PageSize {
		limit = h.PageSize
	}

	var users []models.User
	if err := h.DB.Order("id ASC").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, gin.H{
			"id":        users[i].ID,
			"name":      users[i].Name,
			"nickname":  users[i].Nickname,
			"email":     users[i].Email,
			"is_active": users[i].IsActive,
		})
	}

	util.Success(c, util.Response{
		"items": items,
		"skip":  skip,
		"limit": limit,
	})
}
