package xcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name   string
		want   RGBA8
		wantOK bool
	}{
		{"cornflowerblue", RGBA8{100, 149, 237, 255}, true},
		{"CornflowerBlue", RGBA8{100, 149, 237, 255}, true},
		{"BLACK", RGBA8{0, 0, 0, 255}, true},
		{"yellow", RGBA8{255, 255, 0, 255}, true},
		{"not-a-color", RGBA8{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Named(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
