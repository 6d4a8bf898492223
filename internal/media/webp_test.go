package media

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebPDownscales(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 2400, 600)))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "webp", format)
	assert.Equal(t, MaxSide, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestToWebPKeepsSmallImages(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 64, 32)))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestToWebPRejectsGarbage(t *testing.T) {
	_, err := ToWebP(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

// pngHeader returns a PNG signature and IHDR chunk declaring w x h pixels
// with no image data behind it.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA

	chunk := append([]byte("IHDR"), ihdr...)
	var buf bytes.Buffer
	buf.Write([]byte("\x89PNG\r\n\x1a\n"))
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestToWebPRejectsHugeDeclaredDimensions(t *testing.T) {
	raw := pngHeader(30000, 30000)
	require.Less(t, len(raw), 100)

	_, err := ToWebP(bytes.NewReader(raw))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge), "got %v", err)
}
