package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/timesheet"
)

// ValidateSubmissionDays 检查日网格的结构是否合法：
// 天数必须落在两个半月窗口之一且不重复，时间必须是 "HH:MM" 或空，
// 考勤代码最多 2 个字符。班次时长本身不在这里校验，下班早于上班按 0 计而不是报错。
func ValidateSubmissionDays(sub *domain.Submission) error {
	seen := make(map[int]bool)

	for _, day := range sub.Days {
		if !domain.InWindow(day.Day) {
			return fmt.Errorf("day %d is outside both timesheet windows", day.Day)
		}
		if seen[day.Day] {
			return fmt.Errorf("day %d appears more than once", day.Day)
		}
		seen[day.Day] = true

		for j, shift := range day.Shifts {
			if shift.In != "" {
				if _, ok := timesheet.ParseClock(shift.In); !ok {
					return fmt.Errorf("day %d shift %d has a malformed clock-in time %q", day.Day, j+1, shift.In)
				}
			}
			if shift.Out != "" {
				if _, ok := timesheet.ParseClock(shift.Out); !ok {
					return fmt.Errorf("day %d shift %d has a malformed clock-out time %q", day.Day, j+1, shift.Out)
				}
			}
			if utf8.RuneCountInString(shift.Code) > 2 {
				return fmt.Errorf("day %d shift %d activity code %q is longer than 2 characters", day.Day, j+1, shift.Code)
			}
		}
	}

	return nil
}
