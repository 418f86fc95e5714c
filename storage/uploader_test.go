package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		endpoint string
		secure   bool
		wantErr  bool
	}{
		{name: "bare host port", raw: "minio:9000", endpoint: "minio:9000", secure: false},
		{name: "http scheme", raw: "http://minio:9000", endpoint: "minio:9000", secure: false},
		{name: "https scheme", raw: "https://storage.example.com", endpoint: "storage.example.com", secure: true},
		{name: "surrounding whitespace", raw: "  minio:9000  ", endpoint: "minio:9000", secure: false},
		{name: "empty", raw: "", wantErr: true},
		{name: "path not allowed", raw: "https://storage.example.com/bucket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, secure, err := normaliseEndpoint(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.endpoint, endpoint)
			assert.Equal(t, tt.secure, secure)
		})
	}
}

func TestObjectName(t *testing.T) {
	name := objectName("Logo.PNG")
	assert.True(t, strings.HasSuffix(name, ".png"), "extension kept, lowercased")

	_, err := uuid.Parse(strings.TrimSuffix(name, ".png"))
	assert.NoError(t, err, "object name is uuid-based")

	assert.NotEqual(t, name, objectName("Logo.PNG"), "names do not collide")
	assert.False(t, strings.Contains(objectName("no-extension"), "."))
}

func TestPublicURL(t *testing.T) {
	u := &Uploader{bucket: "folio", baseURL: "https://storage.example.com"}
	assert.Equal(t, "https://storage.example.com/folio/abc.png", u.publicURL("abc.png"))
}
