package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "known route", path: "/summary", want: "/summary"},
		{name: "query stripped", path: "/summary?url=https://example.com", want: "/summary"},
		{name: "trailing slash", path: "/text-summary/", want: "/text-summary"},
		{name: "feed route", path: "/feed-summary", want: "/feed-summary"},
		{name: "readme route", path: "/nlp-readme", want: "/nlp-readme"},
		{name: "health route", path: "/health", want: "/health"},
		{name: "swagger root", path: "/swagger/", want: "/swagger"},
		{name: "swagger asset", path: "/swagger/index.html", want: "/swagger"},
		{name: "unknown route", path: "/wp-admin/login.php", want: "/other"},
		{name: "root", path: "/", want: "/other"},
		{name: "empty", path: "", want: "/other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}
