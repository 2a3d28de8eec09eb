package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/countdown/internal/config"
	"github.com/iburimskiy/countdown/internal/display"
)

// Font is the face the timer is rasterized with.
type Font struct {
	face *text.GoTextFace
}

func LoadFont() (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return &Font{face: &text.GoTextFace{Source: src, Size: config.FontSize}}, nil
}

func (f *Font) FontMetrics() display.FontMetrics {
	return metricsOf(f.face.Metrics())
}

// Measure returns the unscaled size of s in pixels.
func (f *Font) Measure(s string) (float64, float64) {
	return text.Measure(s, f.face, 0)
}

// metricsOf converts ebiten's positive descent into the signed convention
// used by the layout code.
func metricsOf(m text.Metrics) display.FontMetrics {
	return display.FontMetrics{
		Height:  m.HAscent + m.HDescent,
		Ascent:  m.HAscent,
		Descent: -m.HDescent,
	}
}
