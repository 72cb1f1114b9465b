package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Go 1.22 Released!", "go-1-22-released"},
		{"  spaced  out  ", "spaced-out"},
		{"UPPER", "upper"},
		{"---", ""},
		{"", ""},
		{"already-slugged", "already-slugged"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
