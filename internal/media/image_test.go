package media

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1600, 900))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	thumb, err := MakeThumbnail(&buf, ThumbMaxWidth, ThumbMaxHeight)
	require.NoError(t, err)

	decoded, format, err := image.Decode(thumb)
	require.NoError(t, err)

	assert.Equal(t, "jpeg", format)
	bounds := decoded.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), ThumbMaxWidth)
	assert.LessOrEqual(t, bounds.Dy(), ThumbMaxHeight)

	// Aspect ratio is preserved: 16:9 input fits width-bound.
	assert.Equal(t, ThumbMaxWidth, bounds.Dx())
}

func TestMakeThumbnailRejectsGarbage(t *testing.T) {
	_, err := MakeThumbnail(strings.NewReader("not an image"), ThumbMaxWidth, ThumbMaxHeight)
	assert.Error(t, err)
}
