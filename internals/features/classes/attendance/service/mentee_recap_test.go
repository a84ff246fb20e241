package service

import (
	"testing"

	"github.com/google/uuid"

	attendanceModel "belajarshafa_backend/internals/features/classes/attendance/model"
)

func menteeRows(statuses ...string) []attendanceModel.AttendanceModel {
	out := make([]attendanceModel.AttendanceModel, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, attendanceModel.AttendanceModel{AttendanceStatus: s})
	}
	return out
}

func TestRecapMentee(t *testing.T) {
	tests := []struct {
		name          string
		rows          []attendanceModel.AttendanceModel
		totalSessions int
		want          MenteeRecap
	}{
		{
			name:          "campuran status",
			rows:          menteeRows(attendanceModel.StatusPresent, attendanceModel.StatusPresent, attendanceModel.StatusAbsent, attendanceModel.StatusSick),
			totalSessions: 5,
			want:          MenteeRecap{TotalSessions: 5, PresentCount: 2, AbsentCount: 1, SickCount: 1, AttendanceRate: 40},
		},
		{
			name:          "hadir semua",
			rows:          menteeRows(attendanceModel.StatusPresent, attendanceModel.StatusPresent),
			totalSessions: 2,
			want:          MenteeRecap{TotalSessions: 2, PresentCount: 2, AttendanceRate: 100},
		},
		{
			name:          "kelas belum punya sesi",
			rows:          nil,
			totalSessions: 0,
			want:          MenteeRecap{TotalSessions: 0, AttendanceRate: 0},
		},
		{
			name:          "rate dibulatkan dua desimal",
			rows:          menteeRows(attendanceModel.StatusPresent),
			totalSessions: 3,
			want:          MenteeRecap{TotalSessions: 3, PresentCount: 1, AttendanceRate: 33.33},
		},
		{
			name:          "izin dan sakit tidak menaikkan rate",
			rows:          menteeRows(attendanceModel.StatusPermit, attendanceModel.StatusSick),
			totalSessions: 2,
			want:          MenteeRecap{TotalSessions: 2, PermitCount: 1, SickCount: 1, AttendanceRate: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecapMentee(tt.rows, tt.totalSessions)
			if got != tt.want {
				t.Errorf("RecapMentee() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecapByUser(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	rows := []attendanceModel.AttendanceModel{
		{AttendanceUserID: userA, AttendanceStatus: attendanceModel.StatusPresent},
		{AttendanceUserID: userA, AttendanceStatus: attendanceModel.StatusAbsent},
		{AttendanceUserID: userB, AttendanceStatus: attendanceModel.StatusPresent},
	}

	got := RecapByUser(rows, 2)
	if len(got) != 2 {
		t.Fatalf("RecapByUser() jumlah user = %d, want 2", len(got))
	}
	if a := got[userA]; a.PresentCount != 1 || a.AbsentCount != 1 || a.AttendanceRate != 50 {
		t.Errorf("recap user A = %+v", a)
	}
	if b := got[userB]; b.PresentCount != 1 || b.AttendanceRate != 50 {
		t.Errorf("recap user B = %+v", b)
	}
}
