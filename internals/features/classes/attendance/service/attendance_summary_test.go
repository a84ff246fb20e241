package service

import (
	"testing"

	attendanceModel "belajarshafa_backend/internals/features/classes/attendance/model"
)

func rows(statuses ...string) []attendanceModel.AttendanceModel {
	out := make([]attendanceModel.AttendanceModel, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, attendanceModel.AttendanceModel{AttendanceStatus: s})
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		rows         []attendanceModel.AttendanceModel
		totalMentees int
		want         Summary
	}{
		{
			name:         "campuran status",
			rows:         rows("PRESENT", "PRESENT", "ABSENT", "PERMIT", "SICK"),
			totalMentees: 8,
			want: Summary{
				TotalMentees: 8, PresentCount: 2, AbsentCount: 1, PermitCount: 1, SickCount: 1,
				UnmarkedCount: 3, AttendanceRate: 25,
			},
		},
		{
			name:         "semua hadir",
			rows:         rows("PRESENT", "PRESENT", "PRESENT"),
			totalMentees: 3,
			want:         Summary{TotalMentees: 3, PresentCount: 3, AttendanceRate: 100},
		},
		{
			name:         "tanpa mentee",
			rows:         nil,
			totalMentees: 0,
			want:         Summary{},
		},
		{
			name:         "rate dibulatkan dua desimal",
			rows:         rows("PRESENT"),
			totalMentees: 3,
			want:         Summary{TotalMentees: 3, PresentCount: 1, UnmarkedCount: 2, AttendanceRate: 33.33},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.rows, tt.totalMentees)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
