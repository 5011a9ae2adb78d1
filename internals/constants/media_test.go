package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedAvatarExt(t *testing.T) {
	assert.True(t, IsAllowedAvatarExt("photo.png"))
	assert.True(t, IsAllowedAvatarExt("photo.JPG"))
	assert.True(t, IsAllowedAvatarExt(""), "no name means no extension on the key")
	assert.True(t, IsAllowedAvatarExt("photo"))
	assert.False(t, IsAllowedAvatarExt("document.pdf"))
	assert.False(t, IsAllowedAvatarExt("archive.zip"))
}

func TestIsAllowedAvatarContentType(t *testing.T) {
	assert.True(t, IsAllowedAvatarContentType("image/png"))
	assert.True(t, IsAllowedAvatarContentType("IMAGE/JPEG"))
	assert.True(t, IsAllowedAvatarContentType("image/webp; charset=binary"))
	assert.True(t, IsAllowedAvatarContentType(""))
	assert.False(t, IsAllowedAvatarContentType("application/pdf"))
	assert.False(t, IsAllowedAvatarContentType("text/html"))
}
