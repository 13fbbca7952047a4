package timesheet

import (
	"testing"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
)

func TestShiftDurationFormatting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
		want string
	}{
		{name: "regular morning shift", in: "08:00", out: "12:30", want: "4.50"},
		{name: "full day", in: "08:00", out: "16:00", want: "8.00"},
		{name: "out equals in", in: "09:00", out: "09:00", want: ""},
		{name: "out before in yields empty not negative", in: "14:00", out: "08:00", want: ""},
		{name: "missing out", in: "08:00", out: "", want: ""},
		{name: "missing in", in: "", out: "12:00", want: ""},
		{name: "both missing", in: "", out: "", want: ""},
		{name: "malformed in", in: "8am", out: "12:00", want: ""},
		{name: "minute overflow", in: "08:61", out: "12:00", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatHours(ShiftMinutes(tt.in, tt.out))
			if got != tt.want {
				t.Fatalf("FormatHours(ShiftMinutes(%q, %q)) = %q, want %q", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestDailyTotalSumsShifts(t *testing.T) {
	day := domain.DayEntry{
		Day: 16,
		Shifts: [domain.ShiftsPerDay]domain.Shift{
			{In: "08:00", Out: "12:30"}, // 4.50
			{In: "13:00", Out: "16:00"}, // 3.00
		},
	}

	if got := FormatHours(DayMinutes(&day)); got != "7.50" {
		t.Fatalf("daily total = %q, want %q", got, "7.50")
	}
}

func TestAccountRowTotal(t *testing.T) {
	tests := []struct {
		name    string
		hours   string
		payRate string
		want    string
	}{
		{name: "both present", hours: "7.5", payRate: "20", want: "150.00"},
		{name: "rounding", hours: "7.33", payRate: "19.99", want: "146.53"},
		{name: "hours missing clears total", hours: "", payRate: "20", want: ""},
		{name: "rate missing clears total", hours: "7.5", payRate: "", want: ""},
		{name: "non numeric hours", hours: "abc", payRate: "20", want: ""},
		{name: "whitespace only", hours: "  ", payRate: "20", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AccountRowTotal(tt.hours, tt.payRate); got != tt.want {
				t.Fatalf("AccountRowTotal(%q, %q) = %q, want %q", tt.hours, tt.payRate, got, tt.want)
			}
		})
	}
}

func TestGrandTotal(t *testing.T) {
	rows := [domain.AccountCodeRows]domain.AccountCode{
		{TotalPay: "150.00"},
		{TotalPay: ""},
		{TotalPay: "49.50"},
	}
	if got := GrandTotal(rows); got != "199.50" {
		t.Fatalf("grand total = %q, want %q", got, "199.50")
	}

	var blank [domain.AccountCodeRows]domain.AccountCode
	if got := GrandTotal(blank); got != "" {
		t.Fatalf("grand total of blank rows = %q, want empty", got)
	}
}

func TestRecomputeDerivesEverything(t *testing.T) {
	sub := domain.Submission{
		Days: []domain.DayEntry{
			{
				Day: 16,
				Shifts: [domain.ShiftsPerDay]domain.Shift{
					{In: "08:00", Out: "12:30", Total: "stale"},
					{In: "13:00", Out: "16:00"},
				},
				DailyTotal: "stale",
			},
			{
				Day: 3,
				Shifts: [domain.ShiftsPerDay]domain.Shift{
					{In: "09:00", Out: "11:30"},
				},
			},
		},
	}
	sub.AccountCodes[0].PayRate = "20"
	sub.AccountCodes[1].Hours = "2"
	sub.AccountCodes[1].PayRate = "30"
	sub.AccountCodes[2].TotalPay = "stale"

	got := Recompute(sub)

	if got.Days[0].Shifts[0].Total != "4.50" {
		t.Fatalf("shift total = %q, want %q", got.Days[0].Shifts[0].Total, "4.50")
	}
	if got.Days[0].DailyTotal != "7.50" {
		t.Fatalf("daily total = %q, want %q", got.Days[0].DailyTotal, "7.50")
	}
	if got.Days[1].DailyTotal != "2.50" {
		t.Fatalf("daily total = %q, want %q", got.Days[1].DailyTotal, "2.50")
	}

	// 两个窗口的日合计（7.50 + 2.50）单向写入第 0 行工时
	if got.AccountCodes[0].Hours != "10.00" {
		t.Fatalf("auto-populated hours = %q, want %q", got.AccountCodes[0].Hours, "10.00")
	}
	if got.AccountCodes[0].TotalPay != "200.00" {
		t.Fatalf("row 0 total pay = %q, want %q", got.AccountCodes[0].TotalPay, "200.00")
	}
	if got.AccountCodes[1].TotalPay != "60.00" {
		t.Fatalf("row 1 total pay = %q, want %q", got.AccountCodes[1].TotalPay, "60.00")
	}
	// 输入残缺的行被清空而不是保留旧值
	if got.AccountCodes[2].TotalPay != "" {
		t.Fatalf("row 2 total pay = %q, want empty", got.AccountCodes[2].TotalPay)
	}
	if got.GrandTotal != "260.00" {
		t.Fatalf("grand total = %q, want %q", got.GrandTotal, "260.00")
	}

	// 入参快照不能被改动
	if sub.Days[0].Shifts[0].Total != "stale" || sub.Days[0].DailyTotal != "stale" {
		t.Fatalf("Recompute mutated its input")
	}
}

func TestRecomputeLeavesManualHoursWhenGridEmpty(t *testing.T) {
	var sub domain.Submission
	sub.AccountCodes[0].Hours = "5"
	sub.AccountCodes[0].PayRate = "10"

	got := Recompute(sub)

	if got.AccountCodes[0].Hours != "5" {
		t.Fatalf("manual hours = %q, want %q", got.AccountCodes[0].Hours, "5")
	}
	if got.AccountCodes[0].TotalPay != "50.00" {
		t.Fatalf("total pay = %q, want %q", got.AccountCodes[0].TotalPay, "50.00")
	}
}

func TestAccountRowsNeverFeedBackIntoDayTotals(t *testing.T) {
	sub := domain.Submission{
		Days: []domain.DayEntry{
			{
				Day:    20,
				Shifts: [domain.ShiftsPerDay]domain.Shift{{In: "08:00", Out: "10:00"}},
			},
		},
	}
	sub.AccountCodes[0].Hours = "999"
	sub.AccountCodes[0].PayRate = "1"

	got := Recompute(sub)

	if got.Days[0].DailyTotal != "2.00" {
		t.Fatalf("daily total = %q, want %q", got.Days[0].DailyTotal, "2.00")
	}
	// 第 0 行工时被日合计覆盖，而不是反过来
	if got.AccountCodes[0].Hours != "2.00" {
		t.Fatalf("row 0 hours = %q, want %q", got.AccountCodes[0].Hours, "2.00")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "00:00", want: 0, ok: true},
		{input: "08:00", want: 480, ok: true},
		{input: "23:59", want: 1439, ok: true},
		{input: "24:00", ok: false},
		{input: "12:60", ok: false},
		{input: "12", ok: false},
		{input: "", ok: false},
		{input: "ab:cd", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseClock(tt.input)
		if ok != tt.ok {
			t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
