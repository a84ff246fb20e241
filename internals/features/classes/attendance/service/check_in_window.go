package service

import (
	"fmt"
	"math"
	"time"
)

// WindowResult menjelaskan status jendela check-in sebuah sesi pada saat tertentu.
type WindowResult struct {
	Open    bool
	Message string
}

// EvaluateCheckInWindow menilai apakah check-in diperbolehkan pada waktu now.
// Jendela: [start - windowMinutes, start + closeMinutes].
func EvaluateCheckInWindow(now, start time.Time, windowMinutes, closeMinutes int) WindowResult {
	opensAt := start.Add(-time.Duration(windowMinutes) * time.Minute)
	closesAt := start.Add(time.Duration(closeMinutes) * time.Minute)

	if now.Before(opensAt) {
		minutes := int(math.Ceil(opensAt.Sub(now).Minutes()))
		return WindowResult{
			Open:    false,
			Message: fmt.Sprintf("Check-in belum dibuka, tersedia dalam %d menit", minutes),
		}
	}
	if now.After(closesAt) {
		return WindowResult{
			Open:    false,
			Message: "Waktu check-in sudah ditutup",
		}
	}
	return WindowResult{Open: true}
}
