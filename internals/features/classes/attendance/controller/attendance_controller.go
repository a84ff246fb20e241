// internals/features/classes/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	"belajarshafa_backend/internals/features/classes/attendance/dto"
	attendanceModel "belajarshafa_backend/internals/features/classes/attendance/model"
	"belajarshafa_backend/internals/features/classes/attendance/service"
	classModel "belajarshafa_backend/internals/features/classes/class/model"
	sessionModel "belajarshafa_backend/internals/features/classes/session/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func (ctrl *AttendanceController) loadSessionWithClass(sessionID uuid.UUID) (*sessionModel.SessionModel, *classModel.ClassModel, error) {
	var session sessionModel.SessionModel
	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return nil, nil, err
	}
	var class classModel.ClassModel
	if err := ctrl.DB.
		Preload("Mentors").
		Preload("Mentees").
		First(&class, "class_id = ?", session.SessionClassID).Error; err != nil {
		return nil, nil, err
	}
	return &session, &class, nil
}

func canManageAttendance(c *fiber.Ctx, class *classModel.ClassModel, callerID uuid.UUID) bool {
	roles := authmw.GetRoles(c)
	if authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return true
	}
	return class.HasMentor(callerID)
}

/* ===================== CHECK-IN ===================== */
// POST /api/sessions/:sessionId/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sessionId tidak valid")
	}
	session, class, err := ctrl.loadSessionWithClass(sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	if !class.HasMentee(callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentee kelas ini yang bisa check-in")
	}

	window := service.EvaluateCheckInWindow(
		time.Now(), session.SessionStartTime,
		session.SessionCheckInWindowMinutes, session.SessionCheckInCloseMinutes,
	)
	if !window.Open {
		return helper.JsonError(c, fiber.StatusBadRequest, window.Message)
	}

	var existing attendanceModel.AttendanceModel
	err = ctrl.DB.First(&existing,
		"attendance_session_id = ? AND attendance_user_id = ?", sessionID, callerID).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Anda sudah check-in di sesi ini")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var req dto.CheckInRequest
	_ = c.BodyParser(&req) // body opsional

	now := time.Now()
	att := attendanceModel.AttendanceModel{
		AttendanceSessionID:   sessionID,
		AttendanceUserID:      callerID,
		AttendanceStatus:      attendanceModel.StatusPresent,
		AttendanceCheckInTime: &now,
		AttendanceNotes:       req.AttendanceNotes,
		AttendanceMarkedBy:    callerID,
	}
	if err := ctrl.DB.Create(&att).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.JsonCreated(c, "Check-in berhasil", dto.FromAttendanceModel(att))
}

/* ===================== BULK MARK ===================== */
// POST /api/sessions/:sessionId/attendance
func (ctrl *AttendanceController) BulkMark(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sessionId tidak valid")
	}
	_, class, err := ctrl.loadSessionWithClass(sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	if !canManageAttendance(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh menandai kehadiran")
	}

	var req dto.BulkMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// semua user_id harus mentee kelas ini; validasi selesai dulu sebelum menulis apa pun
	menteeSet := make(map[uuid.UUID]bool, len(class.Mentees))
	for _, m := range class.Mentees {
		menteeSet[m.ID] = true
	}
	var unknown []string
	seen := make(map[uuid.UUID]bool, len(req.Entries))
	for _, e := range req.Entries {
		if seen[e.UserID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id duplikat dalam payload: "+e.UserID.String())
		}
		seen[e.UserID] = true
		if !menteeSet[e.UserID] {
			unknown = append(unknown, e.UserID.String())
		}
	}
	if len(unknown) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"User berikut bukan mentee kelas ini: "+strings.Join(unknown, ", "))
	}

	// upsert per baris; PRESENT dari mentor tidak mengisi check_in_time
	results := make([]attendanceModel.AttendanceModel, 0, len(req.Entries))
	for _, e := range req.Entries {
		var att attendanceModel.AttendanceModel
		err := ctrl.DB.First(&att,
			"attendance_session_id = ? AND attendance_user_id = ?", sessionID, e.UserID).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"attendance_status":    e.Status,
				"attendance_marked_by": callerID,
			}
			if e.Notes != nil {
				updates["attendance_notes"] = *e.Notes
			}
			if err := ctrl.DB.Model(&att).Updates(updates).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kehadiran")
			}
			att.AttendanceStatus = e.Status
		case errors.Is(err, gorm.ErrRecordNotFound):
			att = attendanceModel.AttendanceModel{
				AttendanceSessionID: sessionID,
				AttendanceUserID:    e.UserID,
				AttendanceStatus:    e.Status,
				AttendanceNotes:     e.Notes,
				AttendanceMarkedBy:  callerID,
			}
			if err := ctrl.DB.Create(&att).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
			}
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		results = append(results, att)
	}

	return helper.JsonOK(c, "Kehadiran berhasil ditandai", dto.FromAttendanceModels(results))
}

/* ===================== OVERRIDE ===================== */
// PATCH /api/attendance/:id
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var att attendanceModel.AttendanceModel
	if err := ctrl.DB.First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data kehadiran tidak ditemukan")
	}
	_, class, err := ctrl.loadSessionWithClass(att.AttendanceSessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	if !canManageAttendance(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh mengubah kehadiran")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{
		"attendance_status":    req.AttendanceStatus,
		"attendance_marked_by": callerID,
	}
	if req.AttendanceNotes != nil {
		updates["attendance_notes"] = *req.AttendanceNotes
	}
	if err := ctrl.DB.Model(&att).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah kehadiran")
	}

	if err := ctrl.DB.First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kehadiran")
	}
	return helper.JsonUpdated(c, "Kehadiran berhasil diubah", dto.FromAttendanceModel(att))
}

/* ===================== SESSION ROSTER ===================== */
// GET /api/sessions/:sessionId/attendance
func (ctrl *AttendanceController) BySession(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sessionId tidak valid")
	}
	_, class, err := ctrl.loadSessionWithClass(sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	if !canManageAttendance(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh melihat rekap sesi")
	}

	var attendances []attendanceModel.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_session_id = ?", sessionID).
		Order("attendance_created_at ASC").
		Find(&attendances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	summary := service.Summarize(attendances, len(class.Mentees))
	return helper.JsonOK(c, "ok", fiber.Map{
		"attendances": dto.FromAttendanceModels(attendances),
		"summary": dto.AttendanceSummary{
			TotalMentees:   summary.TotalMentees,
			PresentCount:   summary.PresentCount,
			AbsentCount:    summary.AbsentCount,
			PermitCount:    summary.PermitCount,
			SickCount:      summary.SickCount,
			UnmarkedCount:  summary.UnmarkedCount,
			AttendanceRate: summary.AttendanceRate,
		},
	})
}

/* ===================== CLASS HISTORY ===================== */
// GET /api/classes/:classId/attendance
func (ctrl *AttendanceController) ByClass(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classId tidak valid")
	}
	var class classModel.ClassModel
	if err := ctrl.DB.
		Preload("Mentors").
		Preload("Mentees").
		First(&class, "class_id = ?", classID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageAttendance(c, &class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh melihat riwayat kelas")
	}

	q := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_session_id IN (SELECT session_id FROM class_sessions WHERE session_class_id = ? AND session_deleted_at IS NULL)", classID)

	filterUserID := uuid.Nil
	if userID := strings.TrimSpace(c.Query("user_id")); userID != "" {
		uid, err := uuid.Parse(userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		filterUserID = uid
		q = q.Where("attendance_user_id = ?", uid)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	var attendances []attendanceModel.AttendanceModel
	if err := q.Order("attendance_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&attendances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	// rekap per mentee dihitung dari seluruh baris kelas, bukan halaman aktif
	var totalSessions int64
	if err := ctrl.DB.Table("class_sessions").
		Where("session_class_id = ? AND session_deleted_at IS NULL", classID).
		Count(&totalSessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}
	var allRows []attendanceModel.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_session_id IN (SELECT session_id FROM class_sessions WHERE session_class_id = ? AND session_deleted_at IS NULL)", classID).
		Find(&allRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	perUser := service.RecapByUser(allRows, int(totalSessions))
	recaps := make([]dto.AttendanceMenteeRecap, 0, len(class.Mentees))
	for _, m := range class.Mentees {
		if filterUserID != uuid.Nil && m.ID != filterUserID {
			continue
		}
		r := perUser[m.ID]
		recaps = append(recaps, dto.AttendanceMenteeRecap{
			UserID:         m.ID,
			TotalSessions:  int(totalSessions),
			PresentCount:   r.PresentCount,
			AbsentCount:    r.AbsentCount,
			PermitCount:    r.PermitCount,
			SickCount:      r.SickCount,
			AttendanceRate: r.AttendanceRate,
		})
	}

	return helper.JsonList(c, "ok", fiber.Map{
		"attendances": dto.FromAttendanceModels(attendances),
		"recaps":      recaps,
	}, helper.BuildMeta(total, p))
}

/* ===================== MY ATTENDANCE ===================== */
// GET /api/attendance/me
func (ctrl *AttendanceController) Me(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_user_id = ?", callerID)

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	var attendances []attendanceModel.AttendanceModel
	if err := q.Order("attendance_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&attendances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	// rekap pribadi: pembagi = seluruh sesi hidup di kelas tempat caller jadi mentee
	var totalSessions int64
	if err := ctrl.DB.Table("class_sessions").
		Where("session_class_id IN (SELECT class_id FROM class_mentees WHERE user_id = ?)", callerID).
		Where("session_deleted_at IS NULL").
		Count(&totalSessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}
	var allRows []attendanceModel.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_user_id = ?", callerID).
		Where("attendance_session_id IN (SELECT session_id FROM class_sessions WHERE session_deleted_at IS NULL)").
		Find(&allRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	r := service.RecapMentee(allRows, int(totalSessions))

	return helper.JsonList(c, "ok", fiber.Map{
		"attendances": dto.FromAttendanceModels(attendances),
		"recap": dto.AttendanceMenteeRecap{
			UserID:         callerID,
			TotalSessions:  r.TotalSessions,
			PresentCount:   r.PresentCount,
			AbsentCount:    r.AbsentCount,
			PermitCount:    r.PermitCount,
			SickCount:      r.SickCount,
			AttendanceRate: r.AttendanceRate,
		},
	}, helper.BuildMeta(total, p))
}
