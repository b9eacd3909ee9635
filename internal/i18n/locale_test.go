package i18n_test

import (
	"testing"

	"github.com/louiscollinsjr/miere-app/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"en-US", "en"},
		{"RO-ro", "ro"},
		{"ro", "ro"},
		{"fr-FR", "en"},
		{"", "en"},
		{"EN", "en"},
		{"ro-RO-u-something", "ro"},
		{"de", "en"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, i18n.Normalize(tc.tag), "tag %q", tc.tag)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, i18n.Supported("en"))
	assert.True(t, i18n.Supported("ro"))
	assert.False(t, i18n.Supported("fr"))
	assert.False(t, i18n.Supported("EN"))
}
