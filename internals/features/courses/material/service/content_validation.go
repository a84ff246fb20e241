// internals/features/courses/material/service/content_validation.go
package service

import (
	"errors"
	"net/url"
	"strings"

	materialModel "belajarshafa_backend/internals/features/courses/material/model"
)

var (
	ErrVideoURL     = errors.New("materi VIDEO wajib memakai URL youtube.com atau youtu.be")
	ErrDocumentURL  = errors.New("materi DOCUMENT wajib menyertakan content_url")
	ErrArticleText  = errors.New("materi ARTICLE wajib menyertakan content_text")
	ErrExternalLink = errors.New("materi EXTERNAL_LINK wajib memakai URL absolut yang valid")
	ErrUnknownType  = errors.New("material_type tidak dikenal")
)

func isYouTubeHost(host string) bool {
	host = strings.ToLower(host)
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com") || host == "youtu.be"
}

// ValidateContent memeriksa konten materi sesuai tipenya.
func ValidateContent(materialType string, contentURL, contentText *string) error {
	switch materialType {
	case materialModel.TypeVideo:
		if contentURL == nil || strings.TrimSpace(*contentURL) == "" {
			return ErrVideoURL
		}
		u, err := url.ParseRequestURI(strings.TrimSpace(*contentURL))
		if err != nil || !isYouTubeHost(u.Hostname()) {
			return ErrVideoURL
		}
	case materialModel.TypeDocument:
		if contentURL == nil || strings.TrimSpace(*contentURL) == "" {
			return ErrDocumentURL
		}
	case materialModel.TypeArticle:
		if contentText == nil || strings.TrimSpace(*contentText) == "" {
			return ErrArticleText
		}
	case materialModel.TypeExternalLink:
		if contentURL == nil || strings.TrimSpace(*contentURL) == "" {
			return ErrExternalLink
		}
		if _, err := url.ParseRequestURI(strings.TrimSpace(*contentURL)); err != nil {
			return ErrExternalLink
		}
	default:
		return ErrUnknownType
	}
	return nil
}
