package service

import (
	"strings"
	"testing"
	"time"
)

func TestEvaluateCheckInWindow(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		wantOpen bool
		wantMsg  string
	}{
		{name: "20 menit sebelum mulai", now: start.Add(-20 * time.Minute), wantOpen: false, wantMsg: "tersedia dalam 5 menit"},
		{name: "tepat saat jendela dibuka", now: start.Add(-15 * time.Minute), wantOpen: true},
		{name: "10 menit sebelum mulai", now: start.Add(-10 * time.Minute), wantOpen: true},
		{name: "tepat saat mulai", now: start, wantOpen: true},
		{name: "tepat saat jendela ditutup", now: start.Add(30 * time.Minute), wantOpen: true},
		{name: "31 menit setelah mulai", now: start.Add(31 * time.Minute), wantOpen: false, wantMsg: "sudah ditutup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCheckInWindow(tt.now, start, 15, 30)
			if got.Open != tt.wantOpen {
				t.Fatalf("Open = %v, want %v (message: %q)", got.Open, tt.wantOpen, got.Message)
			}
			if tt.wantMsg != "" && !strings.Contains(got.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want mengandung %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestEvaluateCheckInWindowCustomWindow(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// jendela 0/0: hanya tepat di waktu mulai
	if got := EvaluateCheckInWindow(start, start, 0, 0); !got.Open {
		t.Errorf("jendela 0/0 di waktu mulai harus terbuka, got %+v", got)
	}
	if got := EvaluateCheckInWindow(start.Add(time.Minute), start, 0, 0); got.Open {
		t.Errorf("jendela 0/0 satu menit setelah mulai harus tertutup")
	}
}
