// Package pdf 把一份完整的 Submission 确定性地画成复刻纸质日工时表的 PDF。
package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/signature"
)

const disclaimer = "As per CA Labor Code Section 512, an employee with a work period of more than five hours per day must take a meal period of not less than 30 minutes; an employee with a work period of more than ten hours per day must take a second meal period of not less than 30 minutes."

var (
	dayGridHeaders     = []string{"Day", "In", "Out", "Tot", "Cd", "In", "Out", "Tot", "Cd", "In", "Out", "Tot", "Cd", "Total"}
	accountGridHeaders = []string{"Fund", "Loc", "Prog", "Goal", "Func", "Obj", "Res", "Yr", "Mgr", "Alpha", "Hrs", "Rate", "Total"}
)

var pngOptions = gofpdf.ImageOptions{ImageType: "PNG"}

type Renderer struct {
	layout   Layout
	logoPath string
}

// New 创建渲染器。logoPath 指向装饰性 logo 文件，允许为空或不存在。
func New(logoPath string) *Renderer {
	return &Renderer{
		layout:   DefaultLayout(),
		logoPath: logoPath,
	}
}

// Render 把提交渲染成 PDF 字节流。
// 签名无法按声明格式解码时返回 *signature.DecodeError，整次渲染失败；
// logo 缺失只跳过绘制；其余错误原样带出。
func (r *Renderer) Render(sub *domain.Submission) ([]byte, error) {
	doc := gofpdf.New(r.layout.PageOrientation, "pt", r.layout.PageSize, "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineWidth(1)

	pageW, pageH := doc.GetPageSize()
	c := &canvas{
		doc:    doc,
		layout: r.layout,
		pageW:  pageW,
		pageH:  pageH,
		y:      r.layout.MarginTop,
	}

	c.drawHeader(sub, r.logoPath)
	c.drawEmployeeInfo(sub)

	c.drawDayGrid("MONTH 1 (16-31)", domain.Window1Days(), sub)
	c.y += 20
	c.ensure(100)
	c.drawDayGrid("MONTH 2 (1-15)", domain.Window2Days(), sub)

	c.drawAccountGrid(sub)
	c.drawAlphaLegend(sub)
	if err := c.drawSignatures(sub); err != nil {
		return nil, err
	}
	c.drawDisclaimer()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render timesheet pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// canvas 持有一页上自上而下推进的纵向游标，所有绘制方法共用
type canvas struct {
	doc    *gofpdf.Fpdf
	layout Layout
	pageW  float64
	pageH  float64
	y      float64
}

func (c *canvas) setFont(size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	c.doc.SetFont("Helvetica", style, size)
}

func (c *canvas) text(x, y, size float64, bold bool, s string) {
	c.setFont(size, bold)
	c.doc.Text(x, y, s)
}

// cell 画一个带边框的网格单元格，文字垂直居中，空值只画框
func (c *canvas) cell(text string, x, y, w, size float64, bold, center bool) {
	c.doc.Rect(x, y, w, c.layout.RowHeight, "D")
	if text == "" {
		return
	}
	c.setFont(size, bold)
	tx := x + 2
	if center {
		tx = x + (w-c.doc.GetStringWidth(text))/2
	}
	ty := y + (c.layout.RowHeight+size)/2 - 2
	c.doc.Text(tx, ty, text)
}

func (c *canvas) newPage() {
	c.doc.AddPage()
	c.y = c.layout.MarginTop
}

// ensure 保证当前页还剩 need 的纵向空间，不够就换页
func (c *canvas) ensure(need float64) {
	if c.y+need > c.pageH-c.layout.MarginBottom {
		c.newPage()
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[X]"
	}
	return "[ ]"
}

func (c *canvas) drawHeader(sub *domain.Submission, logoPath string) {
	c.drawLogo(logoPath)

	c.text(130, c.y+15, 14, true, "EAST SIDE UNION HIGH SCHOOL DISTRICT")
	c.text(130, c.y+35, 18, true, "DAILY TIMESHEET")

	c.text(430, c.y+15, 9, false, checkbox(sub.EmployeeType == domain.EmployeeTypeClassified)+" CLASSIFIED")
	c.text(500, c.y+15, 9, false, checkbox(sub.EmployeeType == domain.EmployeeTypeCertificated)+" CERTIFICATED")

	c.y += 80
}

// drawLogo 画页眉 logo，文件缺失或不是合法 PNG 时只记日志并跳过
func (c *canvas) drawLogo(path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("读取 logo 文件失败，跳过绘制", "path", path, "error", err)
		return
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		slog.Warn("logo 不是合法的 PNG，跳过绘制", "path", path, "error", err)
		return
	}

	c.doc.RegisterImageOptionsReader("logo", pngOptions, bytes.NewReader(data))
	w := float64(cfg.Width) * c.layout.LogoScale
	h := float64(cfg.Height) * c.layout.LogoScale
	c.doc.ImageOptions("logo", c.layout.LogoX, c.y, w, h, false, pngOptions, 0, "")
}

// labelValue 画一条带下划线的 label/value 字段，下划线位于当前游标处
func (c *canvas) labelValue(label, value string, x, w float64) {
	c.text(x, c.y-10, 8, true, label)
	c.doc.Line(x, c.y, x+w, c.y)
	if value != "" {
		c.text(x, c.y-2, 10, false, value)
	}
}

func (c *canvas) drawEmployeeInfo(sub *domain.Submission) {
	c.labelValue("EMPLOYEE (Legal Name Only)", sub.EmployeeName, 50, 250)
	c.labelValue("EMPLOYEE ID", sub.EmployeeID, 310, 80)
	c.labelValue("FTE", sub.FTE, 400, 60)
	c.labelValue("HOURS/WEEK", sub.HoursPerWeek, 470, 90)
	c.y += 35

	c.labelValue("MONTH 1", sub.Month1, 50, 80)
	c.labelValue("MONTH 2", sub.Month2, 140, 80)
	c.labelValue("YEAR", sub.Year, 230, 60)
	c.labelValue("POSITION", sub.Position, 300, 150)
	c.labelValue("SCHOOL SITE / LOCATION", sub.School, 460, 100)
	c.y += 35

	c.labelValue("EMAIL", sub.Email, 50, 510)
	c.y += 40
}

func (c *canvas) drawDayGridHeader() {
	x := c.layout.MarginLeft
	for i, h := range dayGridHeaders {
		c.cell(h, x, c.y, c.layout.DayColWidths[i], 8, true, true)
		x += c.layout.DayColWidths[i]
	}
	c.y += c.layout.RowHeight
}

func (c *canvas) drawDayGrid(title string, days []int, sub *domain.Submission) {
	c.text(c.layout.MarginLeft, c.y, 10, true, title)
	c.y += 20
	c.drawDayGridHeader()

	for _, day := range days {
		// 剩余空间不够一行时换页并重画表头
		if c.y+c.layout.RowHeight > c.pageH-c.layout.MarginBottom {
			c.newPage()
			c.drawDayGridHeader()
		}

		row := dayRowValues(day, sub.DayEntryFor(day))
		x := c.layout.MarginLeft
		for i, val := range row {
			c.cell(val, x, c.y, c.layout.DayColWidths[i], 8, false, i == 0)
			x += c.layout.DayColWidths[i]
		}
		c.y += c.layout.RowHeight
	}
}

// dayRowValues 展开一行日网格的 14 个单元格，没填写过的天整行留白
func dayRowValues(day int, entry *domain.DayEntry) []string {
	row := make([]string, 0, len(dayGridHeaders))
	row = append(row, strconv.Itoa(day))

	var shifts [domain.ShiftsPerDay]domain.Shift
	dailyTotal := ""
	if entry != nil {
		shifts = entry.Shifts
		dailyTotal = entry.DailyTotal
	}
	for i := range shifts {
		row = append(row, shifts[i].In, shifts[i].Out, shifts[i].Total, shifts[i].Code)
	}
	return append(row, dailyTotal)
}

func (c *canvas) drawAccountGrid(sub *domain.Submission) {
	c.y += 30
	c.ensure(150)
	c.text(c.layout.MarginLeft, c.y, 10, true, "ACCOUNT CODES:")
	c.y += 20

	x := c.layout.MarginLeft
	for i, h := range accountGridHeaders {
		c.cell(h, x, c.y, c.layout.AccountColWidths[i], 8, true, true)
		x += c.layout.AccountColWidths[i]
	}
	c.y += c.layout.RowHeight

	for i := range sub.AccountCodes {
		ac := &sub.AccountCodes[i]
		values := []string{
			ac.Fund, ac.Location, ac.Program, ac.Goal, ac.Function, ac.Object,
			ac.Resource, ac.Year, ac.Manager, ac.Alpha, ac.Hours, ac.PayRate, ac.TotalPay,
		}
		x = c.layout.MarginLeft
		for j, v := range values {
			c.cell(v, x, c.y, c.layout.AccountColWidths[j], 8, false, true)
			x += c.layout.AccountColWidths[j]
		}
		c.y += c.layout.RowHeight
	}

	// 总计框对齐到最后一列
	lastIdx := len(c.layout.AccountColWidths) - 1
	grandTotalX := c.layout.MarginLeft
	for _, w := range c.layout.AccountColWidths[:lastIdx] {
		grandTotalX += w
	}
	c.text(grandTotalX-110, c.y+15, 10, true, "Grand Total Pay:")
	c.cell(sub.GrandTotal, grandTotalX, c.y, c.layout.AccountColWidths[lastIdx], 10, true, true)
	c.y += c.layout.RowHeight
}

func (c *canvas) drawAlphaLegend(sub *domain.Submission) {
	c.y += 30
	c.ensure(120)
	c.text(c.layout.MarginLeft, c.y, 10, true, "Alpha Codes:")
	c.y += 15

	// 固定图例两列排布，和纸质表底部印刷的一致
	for i := 0; i < len(domain.StandardAlphaCodes); i += 2 {
		left := domain.StandardAlphaCodes[i]
		c.text(c.layout.MarginLeft, c.y, 7, false, left.Code+": "+left.Description)
		if i+1 < len(domain.StandardAlphaCodes) {
			right := domain.StandardAlphaCodes[i+1]
			c.text(300, c.y, 7, false, right.Code+": "+right.Description)
		}
		c.y += 10
	}

	c.y += 5
	c.text(50, c.y, 9, false, "L: "+sub.AlphaL)
	c.text(200, c.y, 9, false, "M: "+sub.AlphaM)
	c.text(350, c.y, 9, false, "N: "+sub.AlphaN)
}

func (c *canvas) drawSignatures(sub *domain.Submission) error {
	c.y += 50

	if sub.Signed() {
		sigPNG, err := signature.Prepare(sub.Signature)
		if err != nil {
			return err
		}

		info := c.doc.RegisterImageOptionsReader("signature", pngOptions, bytes.NewReader(sigPNG))
		w := info.Width() * c.layout.SignatureScale
		h := info.Height() * c.layout.SignatureScale
		c.ensure(h + 30)
		c.doc.ImageOptions("signature", c.layout.MarginLeft, c.y, w, h, false, pngOptions, 0, "")
		c.y += h

		c.text(c.layout.MarginLeft, c.y+15, 10, false, "Employee Signature")
		if sub.DateEmployee != "" {
			c.text(300, c.y+15, 10, false, "Date: "+sub.DateEmployee)
		}
		c.y += 15
	} else {
		// 未签名时仍画出签名线和日期，离线工具允许渲染未签名的快照
		c.doc.Line(50, c.y+40, 250, c.y+40)
		c.text(50, c.y+55, 10, false, "Employee Signature")
		if sub.DateEmployee != "" {
			c.text(300, c.y+55, 10, false, "Date: "+sub.DateEmployee)
		}
		c.y += 55
	}

	c.y += 60
	c.ensure(60)
	c.doc.Line(50, c.y, 250, c.y)
	c.text(50, c.y+15, 10, false, "Principal / Supervisor")
	c.text(270, c.y, 10, false, "Date:")
	c.doc.Line(300, c.y, 400, c.y)
	if sub.DatePrincipal != "" {
		c.text(305, c.y-2, 10, false, sub.DatePrincipal)
	}

	c.y += 100
	c.ensure(60)
	c.doc.Line(50, c.y, 250, c.y)
	c.text(50, c.y+15, 10, false, "Program Manager")
	c.text(270, c.y, 10, false, "Date:")
	c.doc.Line(300, c.y, 400, c.y)
	if sub.DateManager != "" {
		c.text(305, c.y-2, 10, false, sub.DateManager)
	}

	return nil
}

// drawDisclaimer 把劳动法免责声明用红字画在最后一页的页底
func (c *canvas) drawDisclaimer() {
	c.ensure(100)
	c.doc.SetTextColor(255, 0, 0)
	c.setFont(8, false)
	c.doc.SetXY(c.layout.MarginLeft, c.pageH-62)
	c.doc.MultiCell(c.pageW-2*c.layout.MarginLeft, 10, disclaimer, "", "L", false)
	c.doc.SetTextColor(0, 0, 0)
}
