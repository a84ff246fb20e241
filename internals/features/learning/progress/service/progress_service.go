// internals/features/learning/progress/service/progress_service.go
package service

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "belajarshafa_backend/internals/features/learning/enrollment/model"
)

// ProgressPercent menghitung persen selesai, dibulatkan ke integer terdekat
// dan dijepit ke rentang 0..100. Kursus tanpa materi dihitung 0.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// EnsureEnrolled mengembalikan enrollment user pada kursus, membuatnya di 0%
// kalau belum ada. Langkah ini disengaja eksplisit supaya progress pertama
// tidak gagal hanya karena user belum pernah enroll.
func EnsureEnrolled(db *gorm.DB, userID, courseID uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	var enrollment enrollmentModel.EnrollmentModel
	err := db.First(&enrollment,
		"enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).Error
	if err == nil {
		return &enrollment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment = enrollmentModel.EnrollmentModel{
		EnrollmentUserID:   userID,
		EnrollmentCourseID: courseID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// RecalculateCourseProgress menghitung ulang persen enrollment dari
// material_progress. completed_at dicap sekali saat pertama kali 100% dan
// tidak pernah dihapus walau persen turun (misal materi baru ditambahkan).
func RecalculateCourseProgress(db *gorm.DB, enrollment *enrollmentModel.EnrollmentModel) error {
	var total int64
	if err := db.Raw(`
		SELECT COUNT(*) FROM course_materials m
		JOIN course_topics t ON t.topic_id = m.material_topic_id
		WHERE t.topic_course_id = ?
		  AND t.topic_deleted_at IS NULL AND m.material_deleted_at IS NULL`,
		enrollment.EnrollmentCourseID,
	).Scan(&total).Error; err != nil {
		return err
	}

	// pembilang dan penyebut pakai saringan materi hidup yang sama, supaya
	// progress materi yang sudah dihapus tidak ikut terhitung
	var completed int64
	if err := db.Raw(`
		SELECT COUNT(*) FROM material_progress p
		JOIN course_materials m ON m.material_id = p.progress_material_id
		JOIN course_topics t ON t.topic_id = m.material_topic_id
		WHERE p.progress_enrollment_id = ?
		  AND p.progress_is_completed = true
		  AND t.topic_course_id = ?
		  AND t.topic_deleted_at IS NULL AND m.material_deleted_at IS NULL`,
		enrollment.EnrollmentID, enrollment.EnrollmentCourseID,
	).Scan(&completed).Error; err != nil {
		return err
	}

	percent := ProgressPercent(int(completed), int(total))
	updates := map[string]interface{}{
		"enrollment_progress_percent": percent,
	}
	if percent >= 100 && enrollment.EnrollmentCompletedAt == nil {
		now := time.Now()
		updates["enrollment_completed_at"] = now
		enrollment.EnrollmentCompletedAt = &now
	}
	if err := db.Model(enrollment).Updates(updates).Error; err != nil {
		return err
	}
	enrollment.EnrollmentProgressPercent = percent
	return nil
}
