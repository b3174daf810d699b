package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xiyiji-official/fiance-backend/internal/ledger"
	"github.com/xiyiji-official/fiance-backend/internal/models"
	"github.com/xiyiji-official/fiance-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 负责账单导出接口
type ExportHandler struct {
	Service *ledger.Service
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{Service: ledger.NewService(db)}
}

func handledText(handled bool) string {
	if handled {
		return "是"
	}
	return "否"
}

// ExportCSV 导出当前用户的账单为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
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

	bills, err := h.Service.Store.ByOwner(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	// 设置响应头
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"bills_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// 写入表头
	writer.Write([]string{"ID", "日期", "摘要", "金额", "已结算"})

	// 写入数据
	for i := range bills {
		b := &bills[i]
		writer.Write([]string{
			fmt.Sprintf("%d", b.ID),
			b.BillDate.Format(ledger.DateLayout),
			b.Summary,
			b.Amount.String(),
			handledText(b.Handled),
		})
	}
}

// ExportXLSX 导出当前用户的账单为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
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

	bills, err := h.Service.Store.ByOwner(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheetName := "账单明细"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}
	f.SetActiveSheet(index)

	// 设置表头
	headers := []string{"ID", "日期", "摘要", "金额", "已结算"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	// 写入数据
	for idx := range bills {
		b := &bills[idx]
		row := idx + 2

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.BillDate.Format(ledger.DateLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), b.Summary)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), b.Amount.String())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), handledText(b.Handled))
	}

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 10)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"bills_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
	}
}
