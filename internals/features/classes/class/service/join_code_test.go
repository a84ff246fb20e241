package service

import (
	"strings"
	"testing"
)

func TestGenerateCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateCode(CodeLength)
		if err != nil {
			t.Fatalf("GenerateCode error: %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("panjang kode = %d, want %d (%q)", len(code), CodeLength, code)
		}
		if !ValidCode(code) {
			t.Fatalf("kode %q tidak lolos ValidCode", code)
		}
		for _, ch := range code {
			if !strings.ContainsRune(codeCharset, ch) {
				t.Fatalf("karakter %q di luar charset", ch)
			}
		}
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "valid", code: "AB12CD34", want: true},
		{name: "lowercase", code: "ab12cd34", want: false},
		{name: "terlalu pendek", code: "AB12CD3", want: false},
		{name: "terlalu panjang", code: "AB12CD345", want: false},
		{name: "simbol", code: "AB12CD3!", want: false},
		{name: "kosong", code: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCode(tt.code); got != tt.want {
				t.Errorf("ValidCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
