// internals/features/classes/session/controller/session_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/constants"
	classModel "belajarshafa_backend/internals/features/classes/class/model"
	"belajarshafa_backend/internals/features/classes/session/dto"
	sessionModel "belajarshafa_backend/internals/features/classes/session/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

func (ctrl *SessionController) loadClass(id uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	if err := ctrl.DB.
		Preload("Mentors").
		Preload("Mentees").
		First(&class, "class_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func canManageSessions(c *fiber.Ctx, class *classModel.ClassModel, callerID uuid.UUID) bool {
	roles := authmw.GetRoles(c)
	if authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return true
	}
	return class.HasMentor(callerID)
}

// validateSessionFields memastikan end > start dan field wajib per tipe terisi.
func validateSessionFields(sessionType string, start, end time.Time, meetingURL, location *string) error {
	if !end.After(start) {
		return fiber.NewError(fiber.StatusBadRequest, "session_end_time harus setelah session_start_time")
	}
	switch sessionType {
	case sessionModel.SessionTypeOnline:
		if meetingURL == nil || strings.TrimSpace(*meetingURL) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Sesi ONLINE wajib menyertakan session_meeting_url")
		}
	case sessionModel.SessionTypeOffline:
		if location == nil || strings.TrimSpace(*location) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Sesi OFFLINE wajib menyertakan session_location")
		}
	}
	return nil
}

/* ===================== CREATE ===================== */
// POST /api/classes/:classId/sessions
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classId tidak valid")
	}
	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageSessions(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh membuat sesi")
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validateSessionFields(req.SessionType, req.SessionStartTime, req.SessionEndTime, req.SessionMeetingURL, req.SessionLocation); err != nil {
		return err
	}

	session := sessionModel.SessionModel{
		SessionClassID:     classID,
		SessionTitle:       strings.TrimSpace(req.SessionTitle),
		SessionDescription: req.SessionDescription,
		SessionStartTime:   req.SessionStartTime,
		SessionEndTime:     req.SessionEndTime,
		SessionType:        req.SessionType,
		SessionMeetingURL:  req.SessionMeetingURL,
		SessionLocation:    req.SessionLocation,
		SessionCreatedBy:   callerID,

		SessionCheckInWindowMinutes: 15,
		SessionCheckInCloseMinutes:  30,
	}
	if req.SessionCheckInWindowMinutes != nil {
		session.SessionCheckInWindowMinutes = *req.SessionCheckInWindowMinutes
	}
	if req.SessionCheckInCloseMinutes != nil {
		session.SessionCheckInCloseMinutes = *req.SessionCheckInCloseMinutes
	}

	if err := ctrl.DB.Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}
	return helper.JsonCreated(c, "Sesi berhasil dibuat", dto.FromSessionModel(session))
}

/* ===================== LIST BY CLASS ===================== */
// GET /api/classes/:classId/sessions
func (ctrl *SessionController) ListByClass(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classId tidak valid")
	}
	class, err := ctrl.loadClass(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	isMember := class.HasMentor(callerID) || class.HasMentee(callerID)
	if !isMember && !authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan anggota kelas ini")
	}

	q := ctrl.DB.Model(&sessionModel.SessionModel{}).Where("session_class_id = ?", classID)

	// filter opsional: upcoming=true hanya sesi yang belum lewat
	if c.Query("upcoming") == "true" {
		q = q.Where("session_end_time >= NOW()")
	}

	p := helper.ParseFiber(c, "start_time", "asc", helper.DefaultOpts)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}

	var sessions []sessionModel.SessionModel
	if err := q.Order("session_start_time ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return helper.JsonList(c, "ok", dto.FromSessionModels(sessions), helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/sessions/:id
func (ctrl *SessionController) GetByID(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	roles := authmw.GetRoles(c)

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var session sessionModel.SessionModel
	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	class, err := ctrl.loadClass(session.SessionClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	isMember := class.HasMentor(callerID) || class.HasMentee(callerID)
	if !isMember && !authmw.HasAnyRole(roles, constants.RoleManager, constants.RoleAdmin) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan anggota kelas ini")
	}

	return helper.JsonOK(c, "ok", dto.FromSessionModel(session))
}

/* ===================== UPDATE ===================== */
// PATCH /api/sessions/:id
func (ctrl *SessionController) Update(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var session sessionModel.SessionModel
	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	class, err := ctrl.loadClass(session.SessionClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageSessions(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh mengubah sesi")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// hasil akhir divalidasi ulang sebagai satu kesatuan
	finalType := session.SessionType
	if req.SessionType != nil {
		finalType = *req.SessionType
	}
	finalStart := session.SessionStartTime
	if req.SessionStartTime != nil {
		finalStart = *req.SessionStartTime
	}
	finalEnd := session.SessionEndTime
	if req.SessionEndTime != nil {
		finalEnd = *req.SessionEndTime
	}
	finalMeetingURL := session.SessionMeetingURL
	if req.SessionMeetingURL != nil {
		finalMeetingURL = req.SessionMeetingURL
	}
	finalLocation := session.SessionLocation
	if req.SessionLocation != nil {
		finalLocation = req.SessionLocation
	}
	if err := validateSessionFields(finalType, finalStart, finalEnd, finalMeetingURL, finalLocation); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.SessionTitle != nil {
		updates["session_title"] = strings.TrimSpace(*req.SessionTitle)
	}
	if req.SessionDescription != nil {
		updates["session_description"] = *req.SessionDescription
	}
	if req.SessionStartTime != nil {
		updates["session_start_time"] = *req.SessionStartTime
	}
	if req.SessionEndTime != nil {
		updates["session_end_time"] = *req.SessionEndTime
	}
	if req.SessionType != nil {
		updates["session_type"] = *req.SessionType
	}
	if req.SessionMeetingURL != nil {
		updates["session_meeting_url"] = *req.SessionMeetingURL
	}
	if req.SessionLocation != nil {
		updates["session_location"] = *req.SessionLocation
	}
	if req.SessionCheckInWindowMinutes != nil {
		updates["session_check_in_window_minutes"] = *req.SessionCheckInWindowMinutes
	}
	if req.SessionCheckInCloseMinutes != nil {
		updates["session_check_in_close_minutes"] = *req.SessionCheckInCloseMinutes
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromSessionModel(session))
	}

	if err := ctrl.DB.Model(&session).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah sesi")
	}

	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat sesi")
	}
	return helper.JsonUpdated(c, "Sesi berhasil diubah", dto.FromSessionModel(session))
}

/* ===================== DELETE ===================== */
// DELETE /api/sessions/:id  (soft delete)
func (ctrl *SessionController) Delete(c *fiber.Ctx) error {
	callerID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var session sessionModel.SessionModel
	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	class, err := ctrl.loadClass(session.SessionClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if !canManageSessions(c, class, callerID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya mentor kelas atau manager yang boleh menghapus sesi")
	}

	if err := ctrl.DB.Delete(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	return helper.JsonDeleted(c, "Sesi berhasil dihapus", fiber.Map{"session_id": sessionID})
}
