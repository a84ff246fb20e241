// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   OSSService: klien object storage berbasis ENV
   OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET
   OSS_PUBLIC_BASE_URL opsional (CDN); default https://<bucket>.<endpoint>
======================================================================= */

type OSSService struct {
	Bucket        *alioss.Bucket
	BucketName    string
	Endpoint      string
	PublicBaseURL string
}

func getenv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getenv("OSS_ENDPOINT")
	keyID := getenv("OSS_ACCESS_KEY_ID")
	keySecret := getenv("OSS_ACCESS_KEY_SECRET")
	bucketName := getenv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("konfigurasi OSS belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat klien OSS: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka bucket %s: %w", bucketName, err)
	}

	base := getenv("OSS_PUBLIC_BASE_URL")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}

	return &OSSService{
		Bucket:        bucket,
		BucketName:    bucketName,
		Endpoint:      endpoint,
		PublicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// PublicURL mengubah object key menjadi URL publik.
func (s *OSSService) PublicURL(key string) string {
	return s.PublicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// RandomKey membangun object key acak di bawah dir, mempertahankan ekstensi.
// Bentuk: <dir>/<yyyymmdd>-<hex16><ext>
func RandomKey(dir, originalFilename string) (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s%s",
		strings.Trim(dir, "/"),
		time.Now().Format("20060102"),
		hex.EncodeToString(b),
		ext,
	), nil
}

// UploadBytes menaruh data di key dengan content type tertentu.
func (s *OSSService) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opts := []alioss.Option{alioss.ContentType(contentType)}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("gagal upload ke OSS: %w", err)
	}
	return s.PublicURL(key), nil
}

// DeleteByPublicURL menghapus objek berdasarkan URL publiknya.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.TrimPrefix(publicURL, s.PublicBaseURL+"/")
	if key == publicURL || key == "" {
		return fmt.Errorf("URL bukan milik bucket ini")
	}
	return s.Bucket.DeleteObject(key)
}
