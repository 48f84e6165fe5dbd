package chat

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"ascii", "Hello World", "hello world"},
		{"vietnamese", "Phở Bò", "pho bo"},
		{"stacked marks", "Bánh Xèo Ngọt", "banh xeo ngot"},
		{"d stroke kept", "Đường", "đuong"},
		{"punctuation kept", "Gỏi cuốn, chấm!", "goi cuon, cham!"},
		{"decomposed input", "Pho\u031b\u0309", "pho"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Phở Bò", "Cơm Tấm Sườn", "  x  "} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}
