package spritecut

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Sheet is the source image being cut. The GPU texture is created lazily on
// first draw so a Sheet can be built and inspected without a running game.
type Sheet struct {
	// Path is where the image was loaded from, if anywhere.
	Path string

	src image.Image
	tex *ebiten.Image
}

// NewSheet wraps an already decoded image.
func NewSheet(src image.Image, path string) *Sheet {
	return &Sheet{Path: path, src: src}
}

// DecodeSheet decodes PNG, JPEG, GIF, BMP or WebP data.
func DecodeSheet(r io.Reader, path string) (*Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("spritecut: decode %s: %w", path, err)
	}
	return NewSheet(img, path), nil
}

// LoadSheet reads and decodes the image at path.
func LoadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spritecut: open image: %w", err)
	}
	defer f.Close()
	return DecodeSheet(f, path)
}

// LoadSheetFS decodes the first image file found in fsys, which is how
// dropped files are delivered.
func LoadSheetFS(fsys fs.FS) (*Sheet, error) {
	var found string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || found != "" {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp":
			found = p
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("spritecut: scan dropped files: %w", err)
	}
	if found == "" {
		return nil, fmt.Errorf("spritecut: no image among dropped files")
	}
	f, err := fsys.Open(found)
	if err != nil {
		return nil, fmt.Errorf("spritecut: open dropped image: %w", err)
	}
	defer f.Close()
	return DecodeSheet(f, found)
}

// Image returns the decoded image, or nil.
func (s *Sheet) Image() image.Image {
	if s == nil {
		return nil
	}
	return s.src
}

// Size returns the image dimensions, zero when nothing usable is loaded.
func (s *Sheet) Size() (w, h int) {
	if s == nil || s.src == nil {
		return 0, 0
	}
	b := s.src.Bounds()
	return b.Dx(), b.Dy()
}

// Loaded reports whether the sheet has a drawable image.
func (s *Sheet) Loaded() bool {
	w, h := s.Size()
	return w > 0 && h > 0
}

// texture returns the GPU copy of the image, creating it on first use.
func (s *Sheet) texture() *ebiten.Image {
	if !s.Loaded() {
		return nil
	}
	if s.tex == nil {
		s.tex = ebiten.NewImageFromImage(s.src)
	}
	return s.tex
}

// dispose releases the GPU copy.
func (s *Sheet) dispose() {
	if s != nil && s.tex != nil {
		s.tex.Deallocate()
		s.tex = nil
	}
}
