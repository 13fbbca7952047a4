package utils

import (
	"strings"
	"testing"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
)

func TestValidateSubmissionDays(t *testing.T) {
	tests := []struct {
		name    string
		days    []domain.DayEntry
		wantErr string
	}{
		{
			name: "valid days in both windows",
			days: []domain.DayEntry{
				{Day: 16, Shifts: [domain.ShiftsPerDay]domain.Shift{{In: "08:00", Out: "12:00", Code: "A"}}},
				{Day: 31},
				{Day: 1},
				{Day: 15},
			},
		},
		{
			name:    "day outside both windows",
			days:    []domain.DayEntry{{Day: 40}},
			wantErr: "outside both timesheet windows",
		},
		{
			name:    "zero day outside both windows",
			days:    []domain.DayEntry{{Day: 0}},
			wantErr: "outside both timesheet windows",
		},
		{
			name:    "duplicate day",
			days:    []domain.DayEntry{{Day: 16}, {Day: 16}},
			wantErr: "more than once",
		},
		{
			name: "malformed clock-in",
			days: []domain.DayEntry{
				{Day: 16, Shifts: [domain.ShiftsPerDay]domain.Shift{{In: "8am", Out: "12:00"}}},
			},
			wantErr: "malformed clock-in",
		},
		{
			name: "malformed clock-out",
			days: []domain.DayEntry{
				{Day: 16, Shifts: [domain.ShiftsPerDay]domain.Shift{{In: "08:00", Out: "25:00"}}},
			},
			wantErr: "malformed clock-out",
		},
		{
			name: "activity code too long",
			days: []domain.DayEntry{
				{Day: 16, Shifts: [domain.ShiftsPerDay]domain.Shift{{Code: "ABC"}}},
			},
			wantErr: "longer than 2 characters",
		},
		{
			name: "empty times are allowed",
			days: []domain.DayEntry{
				{Day: 16, Shifts: [domain.ShiftsPerDay]domain.Shift{{Code: "K"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &domain.Submission{Days: tt.days}
			err := ValidateSubmissionDays(sub)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateSubmissionDays() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateSubmissionDays() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ValidateSubmissionDays() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		if !strings.HasPrefix(ref, "TS-") {
			t.Fatalf("reference %q missing TS- prefix", ref)
		}
		if len(ref) != len("TS-")+referenceLength {
			t.Fatalf("reference %q has wrong length", ref)
		}
		for _, r := range ref[3:] {
			if !strings.ContainsRune(referenceCharacters, r) {
				t.Fatalf("reference %q contains unexpected character %q", ref, r)
			}
		}
		seen[ref] = true
	}
	// 100 个回执编号全部相同几乎不可能发生
	if len(seen) == 1 {
		t.Fatalf("all generated references are identical")
	}
}
