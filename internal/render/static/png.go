package static

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// bezier control distance for a quarter circle
const kappa = 0.5522847498

// RenderPNG rasterizes the scene and encodes it as PNG
func RenderPNG(w io.Writer, s *Scene) error {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	// borders and the map frame share one stroke pass
	z := vector.NewRasterizer(s.Width, s.Height)
	for _, line := range s.Lines {
		strokePolyline(z, line, s.LineWidth)
	}
	f := s.Frame
	strokePolyline(z, []Pixel{
		{f.X, f.Y}, {f.X + f.W, f.Y}, {f.X + f.W, f.Y + f.H}, {f.X, f.Y + f.H}, {f.X, f.Y},
	}, s.LineWidth)
	z.Draw(img, img.Bounds(), image.NewUniform(colorBorder), image.Point{})

	if len(s.Dots) > 0 {
		z.Reset(s.Width, s.Height)
		for _, d := range s.Dots {
			fillCircle(z, d, s.DotRadius)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(colorHotel), image.Point{})
	}

	if s.Title != "" {
		if err := drawTitle(img, s); err != nil {
			return err
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// strokePolyline adds one quad per segment. All quads wind the same way so
// overlapping segments accumulate instead of cancelling.
func strokePolyline(z *vector.Rasterizer, line []Pixel, width float64) {
	half := width / 2
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// normal scaled to half the stroke width
		nx, ny := -dy/length*half, dx/length*half

		z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		z.ClosePath()
	}
}

func fillCircle(z *vector.Rasterizer, c Pixel, r float64) {
	k := r * kappa
	x, y := c.X, c.Y

	z.MoveTo(float32(x+r), float32(y))
	z.CubeTo(float32(x+r), float32(y+k), float32(x+k), float32(y+r), float32(x), float32(y+r))
	z.CubeTo(float32(x-k), float32(y+r), float32(x-r), float32(y+k), float32(x-r), float32(y))
	z.CubeTo(float32(x-r), float32(y-k), float32(x-k), float32(y-r), float32(x), float32(y-r))
	z.CubeTo(float32(x+k), float32(y-r), float32(x+r), float32(y-k), float32(x+r), float32(y))
	z.ClosePath()
}

func drawTitle(img *image.RGBA, s *Scene) error {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse title font: %w", err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    s.TitleSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create title face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorTitle),
		Face: face,
	}
	width := d.MeasureString(s.Title).Round()
	d.Dot = fixed.P((s.Width-width)/2, int(s.TitleBaseline))
	d.DrawString(s.Title)

	return nil
}
