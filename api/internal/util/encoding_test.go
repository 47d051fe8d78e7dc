package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"fenced", "```\nhello\n```", "hello"},
		{"json fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  answer  ", "answer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	enc := base64.StdEncoding.EncodeToString(payload)

	t.Run("plain base64", func(t *testing.T) {
		got, mime, err := DecodeBase64MaybeDataURL(enc)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
		assert.Empty(t, mime)
	})

	t.Run("data url carries mime", func(t *testing.T) {
		got, mime, err := DecodeBase64MaybeDataURL("data:image/jpeg;base64," + enc)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("not base64", func(t *testing.T) {
		_, _, err := DecodeBase64MaybeDataURL("???nope???")
		assert.Error(t, err)
	})
}

func TestPickMIME(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}

	assert.Equal(t, "image/png", PickMIME("image/png", "image/jpeg", jpeg))
	assert.Equal(t, "image/jpeg", PickMIME("", "image/jpeg", nil))
	assert.Equal(t, "image/jpeg", PickMIME("", "", jpeg))
	assert.Equal(t, "image/jpeg", PickMIME("", "", nil))
}
