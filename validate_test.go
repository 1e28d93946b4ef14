package filedepot_test

import (
	"testing"

	filedepot "github.com/filedepot/filedepot"
	"github.com/stretchr/testify/assert"
)

func TestIsAllowedUploadType(t *testing.T) {
	allowed := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	for _, ct := range allowed {
		assert.True(t, filedepot.IsAllowedUploadType(ct), ct)
	}

	denied := []string{"text/plain", "application/json", "video/mp4", "", "IMAGE/PNG"}
	for _, ct := range denied {
		assert.False(t, filedepot.IsAllowedUploadType(ct), ct)
	}
}

func TestIsAllowedUpdateType(t *testing.T) {
	assert.True(t, filedepot.IsAllowedUpdateType("image/png"))
	assert.True(t, filedepot.IsAllowedUpdateType("image/gif"))

	// Documents are upload-only
	assert.False(t, filedepot.IsAllowedUpdateType("application/pdf"))
	assert.False(t, filedepot.IsAllowedUpdateType("application/msword"))
	assert.False(t, filedepot.IsAllowedUpdateType("text/plain"))
}
