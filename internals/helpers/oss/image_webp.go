// internals/helpers/oss/image_webp.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

/* =======================================================================
   Pipeline gambar: decode (jpeg/png/webp) -> downscale -> encode WebP
   IMAGE_WEBP_MAX_W / IMAGE_WEBP_MAX_H / IMAGE_WEBP_QUALITY dari ENV
======================================================================= */

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

// DecodeImage membaca jpeg/png/webp dari bytes; sniff MIME dulu, ekstensi
// sebagai fallback.
func DecodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("file kosong")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format gambar tidak didukung: %s", ct)
}

// ReencodeToWebP melakukan downscale (keep aspect) lalu encode lossy WebP.
func ReencodeToWebP(all []byte, filename string) ([]byte, error) {
	img, err := DecodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	maxW := envInt("IMAGE_WEBP_MAX_W", 1600)
	maxH := envInt("IMAGE_WEBP_MAX_H", 1600)
	quality := envFloat("IMAGE_WEBP_QUALITY", 80)

	b := img.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, fmt.Errorf("gagal encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}
