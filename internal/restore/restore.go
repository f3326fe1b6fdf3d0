// Package restore writes a previously recorded history row back onto the
// system clipboard in its original modality.
package restore

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // restore .bmp files as images

	"go.klb.dev/kovak/internal/clip"
	"go.klb.dev/kovak/internal/entry"
)

// rasterExts are the file extensions restored as image payloads when the
// selected row turns out to be a path on disk.
var rasterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

// Restore resolves text, the display text of a clicked row, against the
// recorded entries and writes the matching payload to the clipboard.
//
// Resolve order: image entry by label (with non-empty pixels), URL-list
// entry by display, text entry by exact content, then a path to an existing
// regular file (raster extensions load as images, anything else becomes a
// file URL), and finally the raw text itself. The last step guarantees
// every row is always copyable in some form.
func Restore(backend clip.Backend, entries []entry.Entry, text string) error {
	for _, e := range entries {
		if e.Kind == entry.KindImage && e.Display == text && len(e.Pixels) > 0 {
			return backend.WriteImage(e.Pixels)
		}
	}

	for _, e := range entries {
		if e.Kind == entry.KindURLList && e.Display == text {
			return backend.WriteURLs(splitURLList(text))
		}
	}

	for _, e := range entries {
		if e.Kind == entry.KindText && e.Display == text {
			return backend.WriteText(text)
		}
	}

	if info, err := os.Stat(text); err == nil && info.Mode().IsRegular() {
		if rasterExts[strings.ToLower(filepath.Ext(text))] {
			pixels, err := loadImageFile(text)
			if err == nil {
				return backend.WriteImage(pixels)
			}
			// Unreadable or corrupt image file: fall through to a file URL.
		}
		return backend.WriteURLs([]string{fileURL(text)})
	}

	return backend.WriteText(text)
}

// splitURLList undoes the ", " display join. Elements that no longer parse
// as URLs are reinterpreted as local file paths.
func splitURLList(display string) []string {
	parts := strings.Split(display, ", ")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		u, err := url.Parse(p)
		if err != nil || u.Scheme == "" {
			p = fileURL(p)
		}
		urls = append(urls, p)
	}
	return urls
}

// loadImageFile reads an image file and returns its normalized PNG bytes.
func loadImageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	e, err := entry.NewImage(data)
	if err != nil {
		return nil, err
	}
	return e.Pixels, nil
}

// fileURL turns a local path into a file:// URL.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
