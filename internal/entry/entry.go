// Package entry defines the clipboard entry model.
//
// An Entry is a tagged union over the three things Kovak records: plain
// text, a list of URLs, and an image. Every consumer (classification,
// history dedup, restore) switches exhaustively on Kind rather than poking
// at positional fields.
package entry

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // register decoders for restore-from-file
	_ "image/jpeg"
	"image/png"
	"net/url"
	"strings"
)

// Kind identifies the entry variant.
type Kind string

const (
	KindText    Kind = "text"
	KindURLList Kind = "urls"
	KindImage   Kind = "image"
)

// Entry is one recorded clipboard snapshot.
//
// Display carries the identifying payload for every variant: the raw text,
// the ", "-joined URL list, or the hash-derived image label. Pixels is only
// set for KindImage and holds the normalized PNG encoding.
type Entry struct {
	Kind    Kind   `json:"kind"`
	Display string `json:"display"`
	Pixels  []byte `json:"pixels,omitempty"`
}

// NewText returns a plain-text entry.
func NewText(text string) Entry {
	return Entry{Kind: KindText, Display: text}
}

// NewURLList returns a URL-list entry with the ", "-joined display string.
func NewURLList(urls []string) Entry {
	return Entry{Kind: KindURLList, Display: strings.Join(urls, ", ")}
}

// NewImage builds an image entry from an encoded image. The pixels are
// decoded, normalized to NRGBA, and re-encoded as PNG so that the same
// pixel content always produces the same bytes regardless of the source
// encoding. The display label embeds an md5 of the normalized bytes.
func NewImage(encoded []byte) (Entry, error) {
	img, _, err := image.Decode(bytes.NewReader(encoded))
	if err != nil {
		return Entry{}, fmt.Errorf("decode image: %w", err)
	}
	normalized := image.NewNRGBA(img.Bounds())
	draw.Draw(normalized, normalized.Bounds(), img, img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, normalized); err != nil {
		return Entry{}, fmt.Errorf("encode image: %w", err)
	}
	pixels := buf.Bytes()

	return Entry{
		Kind:    KindImage,
		Display: fmt.Sprintf("Image which has no path (hash: %x)", md5.Sum(pixels)),
		Pixels:  pixels,
	}, nil
}

// Equal reports structural equality: same variant, same identifying
// payload. Image pixels are not compared: entries with the same label are
// the same entry even if their source encodings differed.
func (e Entry) Equal(o Entry) bool {
	return e.Kind == o.Kind && e.Display == o.Display
}

// Snapshot is the raw clipboard content observed at a single poll tick,
// before classification.
type Snapshot struct {
	Image []byte // encoded image, nil if the clipboard holds no image
	Text  string // text content, "" if the clipboard holds no text
}

// Empty reports whether the snapshot carries no actionable content.
func (s Snapshot) Empty() bool {
	return len(s.Image) == 0 && s.Text == ""
}

// Classify turns a snapshot into an Entry, applying the priority order
// image → URL list → plain text. The second return is false when the
// snapshot holds nothing classifiable (the poll tick is skipped).
func Classify(s Snapshot) (Entry, bool) {
	if len(s.Image) > 0 {
		e, err := NewImage(s.Image)
		if err == nil {
			return e, true
		}
		// Undecodable image data: fall through to the text probes.
	}
	if urls, ok := parseURLList(s.Text); ok {
		return NewURLList(urls), true
	}
	if s.Text != "" {
		return NewText(s.Text), true
	}
	return Entry{}, false
}

// parseURLList reports whether text is one or more URLs, one per line.
// Every non-empty line must parse as an absolute URL; file URLs count.
func parseURLList(text string) ([]string, bool) {
	var urls []string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		u, err := url.Parse(line)
		if err != nil || u.Scheme == "" {
			return nil, false
		}
		if u.Host == "" && u.Scheme != "file" {
			return nil, false
		}
		urls = append(urls, u.String())
	}
	if len(urls) == 0 {
		return nil, false
	}
	return urls, true
}
