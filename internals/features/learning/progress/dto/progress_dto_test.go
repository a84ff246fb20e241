package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	progressModel "belajarshafa_backend/internals/features/learning/progress/model"
)

func TestFromMaterialProgressModel(t *testing.T) {
	accessed := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	m := progressModel.MaterialProgressModel{
		ProgressID:              uuid.New(),
		ProgressEnrollmentID:    uuid.New(),
		ProgressMaterialID:      uuid.New(),
		ProgressWatchedDuration: 420,
		ProgressIsCompleted:     true,
		ProgressLastAccessedAt:  &accessed,
	}

	got := FromMaterialProgressModel(m, 75)
	if got.ProgressID != m.ProgressID || got.ProgressMaterialID != m.ProgressMaterialID {
		t.Errorf("identitas tidak terbawa: %+v", got)
	}
	if got.ProgressWatchedDuration != 420 || !got.ProgressIsCompleted {
		t.Errorf("field progress tidak terbawa: %+v", got)
	}
	if got.ProgressLastAccessedAt == nil || !got.ProgressLastAccessedAt.Equal(accessed) {
		t.Errorf("ProgressLastAccessedAt = %v, want %v", got.ProgressLastAccessedAt, accessed)
	}
	if got.CourseProgressPercent != 75 {
		t.Errorf("CourseProgressPercent = %d, want 75", got.CourseProgressPercent)
	}
}
