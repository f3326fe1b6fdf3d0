package restore

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/kovak/internal/entry"
)

// recorder captures the modality and payload of the last clipboard write.
type recorder struct {
	kind   string
	text   string
	pixels []byte
	urls   []string
}

func (r *recorder) Name() string { return "recorder" }

func (r *recorder) Read() (entry.Snapshot, error) { return entry.Snapshot{}, nil }

func (r *recorder) WriteText(text string) error {
	r.kind, r.text = "text", text
	return nil
}

func (r *recorder) WriteImage(pixels []byte) error {
	r.kind, r.pixels = "image", pixels
	return nil
}

func (r *recorder) WriteURLs(urls []string) error {
	r.kind, r.urls = "urls", urls
	return nil
}

func (r *recorder) Close() {}

func testImageEntry(t *testing.T) entry.Entry {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	e, err := entry.NewImage(buf.Bytes())
	require.NoError(t, err)
	return e
}

func TestRestoreImageByLabel(t *testing.T) {
	imgEntry := testImageEntry(t)
	entries := []entry.Entry{entry.NewText("unrelated"), imgEntry}

	r := &recorder{}
	require.NoError(t, Restore(r, entries, imgEntry.Display))
	assert.Equal(t, "image", r.kind)
	assert.Equal(t, imgEntry.Pixels, r.pixels)
}

func TestRestoreImageWithEmptyPixelsFallsThrough(t *testing.T) {
	imgEntry := testImageEntry(t)
	imgEntry.Pixels = nil

	r := &recorder{}
	require.NoError(t, Restore(r, []entry.Entry{imgEntry}, imgEntry.Display))
	// Label is not a real path, so the raw-text fallback applies.
	assert.Equal(t, "text", r.kind)
	assert.Equal(t, imgEntry.Display, r.text)
}

func TestRestoreURLList(t *testing.T) {
	e := entry.NewURLList([]string{"https://a.dev", "https://b.dev"})

	r := &recorder{}
	require.NoError(t, Restore(r, []entry.Entry{e}, e.Display))
	assert.Equal(t, "urls", r.kind)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, r.urls)
}

func TestRestoreTextEntry(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Restore(r, []entry.Entry{entry.NewText("some snippet")}, "some snippet"))
	assert.Equal(t, "text", r.kind)
	assert.Equal(t, "some snippet", r.text)
}

func TestRestoreExistingImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	r := &recorder{}
	require.NoError(t, Restore(r, nil, path))
	assert.Equal(t, "image", r.kind)
	assert.NotEmpty(t, r.pixels)
}

func TestRestoreExistingPlainFileBecomesFileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := &recorder{}
	require.NoError(t, Restore(r, nil, path))
	assert.Equal(t, "urls", r.kind)
	require.Len(t, r.urls, 1)
	assert.Equal(t, "file://"+filepath.ToSlash(path), r.urls[0])
}

func TestRestoreFallbackIsPlainText(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Restore(r, nil, "not a real path"))
	assert.Equal(t, "text", r.kind)
	assert.Equal(t, "not a real path", r.text)
}
