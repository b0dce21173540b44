package direct

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

const (
	fallbackTermWidth = 80
	halfBlock         = "▀"
)

// ImageOptions controls image output.
type ImageOptions struct {
	// MaxWidth caps the output width in columns. Zero means no cap.
	MaxWidth int
	// TermWidth reports the terminal width. Nil queries stdout.
	TermWidth func() int
	// Profile is the color set cells are written in. The zero value is
	// truecolor.
	Profile termenv.Profile
}

func (o ImageOptions) termWidth() int {
	if o.TermWidth != nil {
		if w := o.TermWidth(); w > 0 {
			return w
		}
		return fallbackTermWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackTermWidth
}

// Image decodes the image at path and prints it with one half-block cell
// per two vertical pixels.
func Image(w io.Writer, path string, opts ImageOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return fmt.Errorf("image display failed: unsupported image encoding")
		}
		return fmt.Errorf("image display failed: %w", err)
	}

	width := FitWidth(img.Bounds().Dx(), opts.termWidth(), opts.MaxWidth)
	return RenderImage(w, img, width, opts.Profile)
}

// FitWidth picks the output width: the image width, capped by the terminal
// and by maxWidth when set. Images are never scaled up.
func FitWidth(imageWidth, termWidth, maxWidth int) int {
	width := imageWidth
	if termWidth > 0 && width > termWidth {
		width = termWidth
	}
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return max(width, 1)
}

// RenderImage scales img to width columns, keeping its aspect ratio, and
// writes one row of half-block cells per two pixel rows. Colors are
// downgraded to fit profile.
func RenderImage(w io.Writer, img image.Image, width int, profile termenv.Profile) error {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return errors.New("image display failed: empty image")
	}
	width = max(width, 1)
	height := max(bounds.Dy()*width/bounds.Dx(), 1)

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)
	base := renderer.NewStyle()

	bw := bufio.NewWriter(w)
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			cell := base.Foreground(hexColor(scaled.RGBAAt(x, y)))
			// An odd last pixel row keeps the terminal background below it.
			if y+1 < height {
				cell = cell.Background(hexColor(scaled.RGBAAt(x, y+1)))
			}
			_, _ = bw.WriteString(cell.Render(halfBlock))
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
