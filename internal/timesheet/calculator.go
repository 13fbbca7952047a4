// Package timesheet 负责表单中所有派生字段的计算。
// 所有函数都是纯函数，只依赖传入的快照，Recompute 返回新的 Submission 而不修改入参。
package timesheet

import (
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
)

// ParseClock 解析 24 小时制的 "HH:MM"，返回从零点起的分钟数
func ParseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ShiftMinutes 计算一个班次的时长（分钟）。
// 上下班时间缺一个就算 0；下班不晚于上班也算 0，不支持跨夜班次。
func ShiftMinutes(in, out string) int {
	start, ok := ParseClock(in)
	if !ok {
		return 0
	}
	end, ok := ParseClock(out)
	if !ok {
		return 0
	}
	if d := end - start; d > 0 {
		return d
	}
	return 0
}

// FormatHours 把分钟数转换成保留两位小数的小时数，0 显示为空而不是 "0.00"
func FormatHours(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return strconv.FormatFloat(float64(minutes)/60, 'f', 2, 64)
}

// DayMinutes 是一天最多三个班次的时长之和（分钟）
func DayMinutes(day *domain.DayEntry) int {
	total := 0
	for i := range day.Shifts {
		total += ShiftMinutes(day.Shifts[i].In, day.Shifts[i].Out)
	}
	return total
}

// parseNumber 按派生字段的口径解析数字：空串和非法输入都视为缺失，绝不报错
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AccountRowTotal 计算科目行的应发合计。
// Hours 和 PayRate 任一缺失或非法时返回空串（清空而不是保留旧值），
// 否则返回 hours×rate 保留两位小数。
func AccountRowTotal(hours, payRate string) string {
	h, ok := parseNumber(hours)
	if !ok {
		return ""
	}
	r, ok := parseNumber(payRate)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(h*r, 'f', 2, 64)
}

// GrandTotal 计算三行科目的应发总计，空行按 0 处理；总计为 0 时显示为空
func GrandTotal(rows [domain.AccountCodeRows]domain.AccountCode) string {
	total := 0.0
	for i := range rows {
		if v, ok := parseNumber(rows[i].TotalPay); ok {
			total += v
		}
	}
	if total <= 0 {
		return ""
	}
	return strconv.FormatFloat(total, 'f', 2, 64)
}

// TotalGridMinutes 是两个半月窗口里所有日合计的总分钟数
func TotalGridMinutes(days []domain.DayEntry) int {
	total := 0
	for i := range days {
		total += DayMinutes(&days[i])
	}
	return total
}

// Recompute 根据原始输入重算快照里的每一个派生字段，返回新的 Submission。
// 计算顺序固定：先算每个班次和每天的合计，再把全部日合计单向写入第 0 行科目的
// 工时，最后算每行应发和总计。科目行的任何字段都不会反过来影响日合计。
func Recompute(sub domain.Submission) domain.Submission {
	days := make([]domain.DayEntry, len(sub.Days))
	copy(days, sub.Days)
	for i := range days {
		for j := range days[i].Shifts {
			shift := &days[i].Shifts[j]
			shift.Total = FormatHours(ShiftMinutes(shift.In, shift.Out))
		}
		days[i].DailyTotal = FormatHours(DayMinutes(&days[i]))
	}
	sub.Days = days

	// 时间表里填了任何工时，就由它派生第 0 行科目的 Hours；
	// 完全没填时间表时保留手填的值，不要清掉
	if minutes := TotalGridMinutes(days); minutes > 0 {
		sub.AccountCodes[0].Hours = FormatHours(minutes)
	}

	for i := range sub.AccountCodes {
		row := &sub.AccountCodes[i]
		row.TotalPay = AccountRowTotal(row.Hours, row.PayRate)
	}
	sub.GrandTotal = GrandTotal(sub.AccountCodes)

	return sub
}
