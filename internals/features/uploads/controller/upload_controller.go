// internals/features/uploads/controller/upload_controller.go
package controller

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "belajarshafa_backend/internals/helpers"
	"belajarshafa_backend/internals/helpers/oss"
)

const (
	maxDocumentSize = 10 * 1024 * 1024
	maxImageSize    = 5 * 1024 * 1024

	documentDir = "course-materials"
	imageDir    = "course-thumbnails"
)

var documentExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".ppt": true, ".pptx": true, ".xls": true, ".xlsx": true,
	".zip": true,
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type UploadController struct {
	OSS *oss.OSSService
}

func NewUploadController(svc *oss.OSSService) *UploadController {
	return &UploadController{OSS: svc}
}

func readFormFile(c *fiber.Ctx, field string, maxSize int64) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan di field '"+field+"'")
	}
	if fh.Size > maxSize {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Ukuran file melebihi batas")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuka file")
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca file")
	}
	if int64(len(all)) > maxSize {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Ukuran file melebihi batas")
	}
	return all, fh.Filename, nil
}

/* ===================== DOCUMENT ===================== */
// POST /api/upload/document  (multipart field "file", maks 10MB)
func (ctrl *UploadController) UploadDocument(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Object storage belum dikonfigurasi")
	}

	all, filename, err := readFormFile(c, "file", maxDocumentSize)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !documentExts[ext] {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Tipe dokumen tidak didukung (pdf/doc/docx/ppt/pptx/xls/xlsx/zip)")
	}

	key, err := oss.RandomKey(documentDir, filename)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat nama file")
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := ctrl.OSS.UploadBytes(c.Context(), key, all, contentType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload ke object storage")
	}
	return helper.JsonCreated(c, "Dokumen berhasil diupload", fiber.Map{
		"url": url,
		"key": key,
	})
}

/* ===================== IMAGE ===================== */
// POST /api/upload/image  (multipart field "file", maks 5MB, re-encode WebP)
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Object storage belum dikonfigurasi")
	}

	all, filename, err := readFormFile(c, "file", maxImageSize)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Tipe gambar tidak didukung (jpg/jpeg/png/webp)")
	}

	encoded, err := oss.ReencodeToWebP(all, filename)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File bukan gambar yang valid")
	}

	webpName := strings.TrimSuffix(filename, ext) + ".webp"
	key, err := oss.RandomKey(imageDir, webpName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat nama file")
	}

	url, err := ctrl.OSS.UploadBytes(c.Context(), key, encoded, "image/webp")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload ke object storage")
	}
	return helper.JsonCreated(c, "Gambar berhasil diupload", fiber.Map{
		"url": url,
		"key": key,
	})
}
