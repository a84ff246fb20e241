// internals/features/classes/class/service/join_code.go
package service

import (
	"crypto/rand"
	"errors"
	"regexp"

	"gorm.io/gorm"
)

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength  = 8

	maxCodeAttempts = 10
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

var ErrCodeExhausted = errors.New("gagal menghasilkan kode kelas unik")

// GenerateCode menghasilkan kode acak [A-Z0-9] sepanjang n via crypto/rand.
// Rejection sampling per byte supaya distribusi karakter seragam.
func GenerateCode(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, 1)
	// 252 = 36*7; byte di atasnya dibuang agar modulo tidak bias
	const limit = byte(len(codeCharset) * (256 / len(codeCharset)))
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		if buf[0] >= limit {
			continue
		}
		out = append(out, codeCharset[int(buf[0])%len(codeCharset)])
	}
	return string(out), nil
}

// ValidCode cek format kode yang tersimpan.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// NewUniqueCode mencoba maksimal 10 kali menghasilkan kode yang belum terpakai.
func NewUniqueCode(db *gorm.DB) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := GenerateCode(CodeLength)
		if err != nil {
			return "", err
		}
		var n int64
		if err := db.Table("classes").Where("class_code = ?", code).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}
