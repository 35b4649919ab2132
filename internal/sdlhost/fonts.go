package sdlhost

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/massrename/internal/errs"
)

// systemFonts are tried in order when none of the given paths exists.
func systemFonts() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	case "windows":
		return []string{
			`C:\Windows\Fonts\segoeui.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/noto/NotoSans-Regular.ttf",
			"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
			"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		}
	}
}

// FindFont returns the first font file that exists: paths in order, then
// the platform's usual fonts. Empty paths are skipped.
func FindFont(paths ...string) (string, error) {
	candidates := slices.Concat(paths, systemFonts())
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errs.NewInfrastructureError("find_font", errs.ErrNoFont)
}

// fontSet opens one face per pixel size on demand.
type fontSet struct {
	path  string
	fonts map[int]*ttf.Font
}

func newFontSet(path string, sizes ...int) (*fontSet, error) {
	fs := &fontSet{path: path, fonts: make(map[int]*ttf.Font)}
	for _, size := range sizes {
		if _, err := fs.get(size); err != nil {
			fs.close()
			return nil, err
		}
	}
	return fs, nil
}

func (fs *fontSet) get(size int) (*ttf.Font, error) {
	if f, ok := fs.fonts[size]; ok {
		return f, nil
	}

	f, err := ttf.OpenFont(fs.path, size)
	if err != nil {
		return nil, errs.NewInfrastructureError("load_font", fmt.Errorf("%s at %dpx: %w", fs.path, size, err))
	}
	fs.fonts[size] = f
	return f, nil
}

func (fs *fontSet) close() {
	for _, f := range fs.fonts {
		f.Close()
	}
	clear(fs.fonts)
}
