package helper

import "testing"

func TestParamsLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantLimit  int
		wantOffset int
	}{
		{name: "halaman pertama", page: 1, perPage: 25, wantLimit: 25, wantOffset: 0},
		{name: "halaman ketiga", page: 3, perPage: 10, wantLimit: 10, wantOffset: 20},
		{name: "per_page besar", page: 2, perPage: 200, wantLimit: 200, wantOffset: 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Page: tt.page, PerPage: tt.perPage}
			if got := p.Limit(); got != tt.wantLimit {
				t.Errorf("Limit() = %d, want %d", got, tt.wantLimit)
			}
			if got := p.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "class_created_at",
		"name":       "class_name",
	}

	tests := []struct {
		name    string
		params  Params
		want    string
		wantErr bool
	}{
		{name: "kolom whitelist asc", params: Params{SortBy: "name", SortOrder: "asc"}, want: "class_name ASC"},
		{name: "kolom whitelist desc", params: Params{SortBy: "created_at", SortOrder: "desc"}, want: "class_created_at DESC"},
		{name: "kolom liar jatuh ke default", params: Params{SortBy: "password; DROP TABLE users", SortOrder: "desc"}, want: "class_created_at DESC"},
		{name: "sort_by kosong pakai default", params: Params{SortOrder: "asc"}, want: "class_created_at ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.SafeOrderClause(allowed, "created_at")
			if (err != nil) != tt.wantErr {
				t.Fatalf("SafeOrderClause() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SafeOrderClause() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := (Params{SortBy: "x"}).SafeOrderClause(map[string]string{}, "created_at"); err == nil {
		t.Error("whitelist kosong harus error")
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if meta.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("HasNext/HasPrev = %v/%v, want true/true", meta.HasNext, meta.HasPrev)
	}
	if meta.NextPage == nil || *meta.NextPage != 3 {
		t.Errorf("NextPage = %v, want 3", meta.NextPage)
	}
	if meta.PrevPage == nil || *meta.PrevPage != 1 {
		t.Errorf("PrevPage = %v, want 1", meta.PrevPage)
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("meta kosong tidak sesuai: %+v", empty)
	}
}
