package controller

import (
	"testing"
	"time"

	sessionModel "belajarshafa_backend/internals/features/classes/session/model"
)

func strptr(s string) *string { return &s }

func TestValidateSessionFields(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	tests := []struct {
		name        string
		sessionType string
		start       time.Time
		end         time.Time
		meetingURL  *string
		location    *string
		wantErr     bool
	}{
		{name: "online lengkap", sessionType: sessionModel.SessionTypeOnline, start: start, end: end, meetingURL: strptr("https://meet.example.com/abc"), wantErr: false},
		{name: "online tanpa meeting_url", sessionType: sessionModel.SessionTypeOnline, start: start, end: end, wantErr: true},
		{name: "online meeting_url kosong", sessionType: sessionModel.SessionTypeOnline, start: start, end: end, meetingURL: strptr("  "), wantErr: true},
		{name: "offline lengkap", sessionType: sessionModel.SessionTypeOffline, start: start, end: end, location: strptr("Ruang 3A"), wantErr: false},
		{name: "offline tanpa location", sessionType: sessionModel.SessionTypeOffline, start: start, end: end, wantErr: true},
		{name: "end sebelum start", sessionType: sessionModel.SessionTypeOffline, start: start, end: start.Add(-time.Hour), location: strptr("Ruang 3A"), wantErr: true},
		{name: "end sama dengan start", sessionType: sessionModel.SessionTypeOffline, start: start, end: start, location: strptr("Ruang 3A"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSessionFields(tt.sessionType, tt.start, tt.end, tt.meetingURL, tt.location)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSessionFields() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
