package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		base string
		want string
	}{
		{"empty ref", "", "https://h.example", ""},
		{"server upload", "uploads/x.png", "https://h.example", "https://h.example/uploads/x.png"},
		{"upload with trailing slash base", "uploads/x.png", "https://h.example/", "https://h.example/uploads/x.png"},
		{"bundled seed asset", "json/images/a.png", "https://h.example", "/images/a.png"},
		{"seed asset prefix is case insensitive", "JSON/images/a.png", "https://h.example", "/images/a.png"},
		{"absolute url unchanged", "https://ext.example/a.png", "https://h.example", "https://ext.example/a.png"},
		{"app-relative url unchanged", "/images/b.png", "https://h.example", "/images/b.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImageURL(tt.ref, tt.base))
		})
	}
}
