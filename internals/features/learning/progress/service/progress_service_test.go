package service

import "testing"

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "setengah selesai", completed: 2, total: 4, want: 50},
		{name: "semua selesai", completed: 4, total: 4, want: 100},
		{name: "belum ada yang selesai", completed: 0, total: 4, want: 0},
		{name: "kursus tanpa materi", completed: 0, total: 0, want: 0},
		{name: "sepertiga dibulatkan", completed: 1, total: 3, want: 33},
		{name: "dua pertiga dibulatkan", completed: 2, total: 3, want: 67},
		{name: "satu dari tujuh", completed: 1, total: 7, want: 14},
		{name: "selesai melebihi total dijepit ke 100", completed: 3, total: 2, want: 100},
		{name: "selesai negatif dijepit ke 0", completed: -1, total: 4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressPercent(tt.completed, tt.total); got != tt.want {
				t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}
