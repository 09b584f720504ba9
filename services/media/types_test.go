package media

import "testing"

func TestKindFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        Kind
		wantErr     bool
	}{
		{"image/jpeg", KindPhoto, false},
		{"image/png", KindPhoto, false},
		{"video/mp4", KindVideo, false},
		{"application/pdf", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := KindFromContentType(tt.contentType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("KindFromContentType(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("KindFromContentType(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}
