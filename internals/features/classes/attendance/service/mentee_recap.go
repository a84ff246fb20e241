package service

import (
	"math"

	"github.com/google/uuid"

	attendanceModel "belajarshafa_backend/internals/features/classes/attendance/model"
)

// MenteeRecap merekap riwayat kehadiran satu mentee lintas sesi.
type MenteeRecap struct {
	TotalSessions int
	PresentCount  int
	AbsentCount   int
	PermitCount   int
	SickCount     int
	// persen PRESENT terhadap total sesi, dibulatkan 2 desimal; 0 saat belum ada sesi
	AttendanceRate float64
}

// RecapMentee menghitung rekap dari baris kehadiran milik satu mentee.
func RecapMentee(rows []attendanceModel.AttendanceModel, totalSessions int) MenteeRecap {
	r := MenteeRecap{TotalSessions: totalSessions}
	for _, row := range rows {
		switch row.AttendanceStatus {
		case attendanceModel.StatusPresent:
			r.PresentCount++
		case attendanceModel.StatusAbsent:
			r.AbsentCount++
		case attendanceModel.StatusPermit:
			r.PermitCount++
		case attendanceModel.StatusSick:
			r.SickCount++
		}
	}
	if totalSessions > 0 {
		r.AttendanceRate = math.Round(float64(r.PresentCount)/float64(totalSessions)*10000) / 100
	}
	return r
}

// RecapByUser mengelompokkan baris kehadiran per user lalu merekap masing-masing.
func RecapByUser(rows []attendanceModel.AttendanceModel, totalSessions int) map[uuid.UUID]MenteeRecap {
	grouped := map[uuid.UUID][]attendanceModel.AttendanceModel{}
	for _, row := range rows {
		grouped[row.AttendanceUserID] = append(grouped[row.AttendanceUserID], row)
	}
	out := make(map[uuid.UUID]MenteeRecap, len(grouped))
	for uid, rs := range grouped {
		out[uid] = RecapMentee(rs, totalSessions)
	}
	return out
}
