package service

import (
	"testing"
)

func strptr(s string) *string { return &s }

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name         string
		materialType string
		contentURL   *string
		contentText  *string
		wantErr      error
	}{
		{name: "video youtube.com", materialType: "VIDEO", contentURL: strptr("https://www.youtube.com/watch?v=abc123"), wantErr: nil},
		{name: "video youtu.be", materialType: "VIDEO", contentURL: strptr("https://youtu.be/abc123"), wantErr: nil},
		{name: "video vimeo ditolak", materialType: "VIDEO", contentURL: strptr("https://vimeo.com/12345"), wantErr: ErrVideoURL},
		{name: "video tanpa url", materialType: "VIDEO", wantErr: ErrVideoURL},
		{name: "video url rusak", materialType: "VIDEO", contentURL: strptr("youtube.com/watch"), wantErr: ErrVideoURL},

		{name: "document dengan url", materialType: "DOCUMENT", contentURL: strptr("https://files.example.com/modul.pdf"), wantErr: nil},
		{name: "document url kosong", materialType: "DOCUMENT", contentURL: strptr("   "), wantErr: ErrDocumentURL},

		{name: "article dengan teks", materialType: "ARTICLE", contentText: strptr("Isi artikel."), wantErr: nil},
		{name: "article teks kosong", materialType: "ARTICLE", contentText: strptr(""), wantErr: ErrArticleText},

		{name: "external link valid", materialType: "EXTERNAL_LINK", contentURL: strptr("https://example.com/resource"), wantErr: nil},
		{name: "external link relatif", materialType: "EXTERNAL_LINK", contentURL: strptr("/relative/path"), wantErr: nil},
		{name: "external link rusak", materialType: "EXTERNAL_LINK", contentURL: strptr("bukan url"), wantErr: ErrExternalLink},

		{name: "tipe tidak dikenal", materialType: "QUIZ", wantErr: ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.materialType, tt.contentURL, tt.contentText)
			if err != tt.wantErr {
				t.Errorf("ValidateContent() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
