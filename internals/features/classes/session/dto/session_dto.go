package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "belajarshafa_backend/internals/features/classes/session/model"
)

type CreateSessionRequest struct {
	SessionTitle       string  `json:"session_title" validate:"required,min=3,max=200"`
	SessionDescription *string `json:"session_description,omitempty"`

	SessionStartTime time.Time `json:"session_start_time" validate:"required"`
	SessionEndTime   time.Time `json:"session_end_time" validate:"required"`

	SessionType       string  `json:"session_type" validate:"required,oneof=ONLINE OFFLINE"`
	SessionMeetingURL *string `json:"session_meeting_url,omitempty"`
	SessionLocation   *string `json:"session_location,omitempty"`

	SessionCheckInWindowMinutes *int `json:"session_check_in_window_minutes,omitempty" validate:"omitempty,min=0,max=720"`
	SessionCheckInCloseMinutes  *int `json:"session_check_in_close_minutes,omitempty" validate:"omitempty,min=0,max=720"`
}

type UpdateSessionRequest struct {
	SessionTitle       *string    `json:"session_title,omitempty" validate:"omitempty,min=3,max=200"`
	SessionDescription *string    `json:"session_description,omitempty"`
	SessionStartTime   *time.Time `json:"session_start_time,omitempty"`
	SessionEndTime     *time.Time `json:"session_end_time,omitempty"`
	SessionType        *string    `json:"session_type,omitempty" validate:"omitempty,oneof=ONLINE OFFLINE"`
	SessionMeetingURL  *string    `json:"session_meeting_url,omitempty"`
	SessionLocation    *string    `json:"session_location,omitempty"`

	SessionCheckInWindowMinutes *int `json:"session_check_in_window_minutes,omitempty" validate:"omitempty,min=0,max=720"`
	SessionCheckInCloseMinutes  *int `json:"session_check_in_close_minutes,omitempty" validate:"omitempty,min=0,max=720"`
}

type SessionResponse struct {
	SessionID          uuid.UUID `json:"session_id"`
	SessionClassID     uuid.UUID `json:"session_class_id"`
	SessionTitle       string    `json:"session_title"`
	SessionDescription *string   `json:"session_description,omitempty"`
	SessionStartTime   time.Time `json:"session_start_time"`
	SessionEndTime     time.Time `json:"session_end_time"`
	SessionType        string    `json:"session_type"`
	SessionMeetingURL  *string   `json:"session_meeting_url,omitempty"`
	SessionLocation    *string   `json:"session_location,omitempty"`

	SessionCheckInWindowMinutes int `json:"session_check_in_window_minutes"`
	SessionCheckInCloseMinutes  int `json:"session_check_in_close_minutes"`

	SessionCreatedBy uuid.UUID `json:"session_created_by"`
	SessionCreatedAt time.Time `json:"session_created_at"`
}

func FromSessionModel(m sessionModel.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:                   m.SessionID,
		SessionClassID:              m.SessionClassID,
		SessionTitle:                m.SessionTitle,
		SessionDescription:          m.SessionDescription,
		SessionStartTime:            m.SessionStartTime,
		SessionEndTime:              m.SessionEndTime,
		SessionType:                 m.SessionType,
		SessionMeetingURL:           m.SessionMeetingURL,
		SessionLocation:             m.SessionLocation,
		SessionCheckInWindowMinutes: m.SessionCheckInWindowMinutes,
		SessionCheckInCloseMinutes:  m.SessionCheckInCloseMinutes,
		SessionCreatedBy:            m.SessionCreatedBy,
		SessionCreatedAt:            m.SessionCreatedAt,
	}
}

func FromSessionModels(ms []sessionModel.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromSessionModel(m))
	}
	return out
}
