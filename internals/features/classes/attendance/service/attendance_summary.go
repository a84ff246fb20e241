package service

import (
	"math"

	attendanceModel "belajarshafa_backend/internals/features/classes/attendance/model"
)

// Summary menghitung rekap kehadiran dari baris attendance yang ada.
// totalMentees adalah jumlah mentee terdaftar; yang belum tercatat dihitung unmarked.
type Summary struct {
	TotalMentees  int
	PresentCount  int
	AbsentCount   int
	PermitCount   int
	SickCount     int
	UnmarkedCount int
	// persen PRESENT terhadap total mentee, dibulatkan 2 desimal
	AttendanceRate float64
}

func Summarize(rows []attendanceModel.AttendanceModel, totalMentees int) Summary {
	s := Summary{TotalMentees: totalMentees}
	for _, r := range rows {
		switch r.AttendanceStatus {
		case attendanceModel.StatusPresent:
			s.PresentCount++
		case attendanceModel.StatusAbsent:
			s.AbsentCount++
		case attendanceModel.StatusPermit:
			s.PermitCount++
		case attendanceModel.StatusSick:
			s.SickCount++
		}
	}
	marked := s.PresentCount + s.AbsentCount + s.PermitCount + s.SickCount
	if totalMentees > marked {
		s.UnmarkedCount = totalMentees - marked
	}
	if totalMentees > 0 {
		s.AttendanceRate = math.Round(float64(s.PresentCount)/float64(totalMentees)*10000) / 100
	}
	return s
}
