package mediakit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "avatar.png", "avatar.png"},
		{"spaces and case", "My Avatar.PNG", "my-avatar.png"},
		{"diacritics folded", "héllo wörld.jpg", "hello-world.jpg"},
		{"path stripped", "../../etc/passwd.png", "passwd.png"},
		{"windows path stripped", `C:\Users\me\pic.jpg`, "pic.jpg"},
		{"empty", "", "file"},
		{"dots only", "..", "file"},
		{"symbols dropped, separators collapse", "a__b!!c.png", "a-bc.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}
