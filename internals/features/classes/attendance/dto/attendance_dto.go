package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "belajarshafa_backend/internals/features/classes/attendance/model"
)

type CheckInRequest struct {
	AttendanceNotes *string `json:"attendance_notes,omitempty"`
}

type BulkMarkEntry struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=PRESENT ABSENT PERMIT SICK"`
	Notes  *string   `json:"notes,omitempty"`
}

type BulkMarkRequest struct {
	Entries []BulkMarkEntry `json:"entries" validate:"required,min=1,dive"`
}

type UpdateAttendanceRequest struct {
	AttendanceStatus string  `json:"attendance_status" validate:"required,oneof=PRESENT ABSENT PERMIT SICK"`
	AttendanceNotes  *string `json:"attendance_notes,omitempty"`
}

type AttendanceResponse struct {
	AttendanceID          uuid.UUID  `json:"attendance_id"`
	AttendanceSessionID   uuid.UUID  `json:"attendance_session_id"`
	AttendanceUserID      uuid.UUID  `json:"attendance_user_id"`
	AttendanceStatus      string     `json:"attendance_status"`
	AttendanceCheckInTime *time.Time `json:"attendance_check_in_time,omitempty"`
	AttendanceNotes       *string    `json:"attendance_notes,omitempty"`
	AttendanceMarkedBy    uuid.UUID  `json:"attendance_marked_by"`
	AttendanceCreatedAt   time.Time  `json:"attendance_created_at"`
}

func FromAttendanceModel(m attendanceModel.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:          m.AttendanceID,
		AttendanceSessionID:   m.AttendanceSessionID,
		AttendanceUserID:      m.AttendanceUserID,
		AttendanceStatus:      m.AttendanceStatus,
		AttendanceCheckInTime: m.AttendanceCheckInTime,
		AttendanceNotes:       m.AttendanceNotes,
		AttendanceMarkedBy:    m.AttendanceMarkedBy,
		AttendanceCreatedAt:   m.AttendanceCreatedAt,
	}
}

func FromAttendanceModels(ms []attendanceModel.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceModel(m))
	}
	return out
}

// AttendanceMenteeRecap merekap riwayat kehadiran satu mentee lintas sesi.
type AttendanceMenteeRecap struct {
	UserID         uuid.UUID `json:"user_id"`
	TotalSessions  int       `json:"total_sessions"`
	PresentCount   int       `json:"present_count"`
	AbsentCount    int       `json:"absent_count"`
	PermitCount    int       `json:"permit_count"`
	SickCount      int       `json:"sick_count"`
	AttendanceRate float64   `json:"attendance_rate"`
}

// AttendanceSummary merangkum kehadiran per status untuk satu sesi atau satu kelas.
type AttendanceSummary struct {
	TotalMentees   int     `json:"total_mentees"`
	PresentCount   int     `json:"present_count"`
	AbsentCount    int     `json:"absent_count"`
	PermitCount    int     `json:"permit_count"`
	SickCount      int     `json:"sick_count"`
	UnmarkedCount  int     `json:"unmarked_count"`
	AttendanceRate float64 `json:"attendance_rate"`
}
