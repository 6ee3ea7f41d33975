package gantt

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	headerColor = Color{R: 0.88, G: 0.88, B: 0.9, A: 1}
	gridColor   = Color{R: 0, G: 0, B: 0, A: 0.12}
	handleColor = Color{R: 0, G: 0, B: 0, A: 0.25}
	textColor   = Color{R: 0.15, G: 0.15, B: 0.15, A: 1}
)

// Draw renders the timeline header and the bar track. Bars at rest are
// positioned from their percentage geometry; a bar mid-drag renders from its
// live pixel geometry.
func (c *Chart) Draw(screen *ebiten.Image) {
	screen.Fill(c.ClearColor.toRGBA())

	var scroll float64
	tb, hasBand := c.timeline.(*TimelineBand)
	if hasBand {
		scroll = tb.ScrollLeft()
	}

	tw := c.trackWidth()
	top := c.headerHeight()
	for _, b := range c.bars {
		r := b.rect(tw, top, c.rowHeight)
		r.X -= scroll
		c.drawBar(screen, b, r)
	}

	if hasBand {
		c.drawHeader(screen, tb)
	}
}

func (c *Chart) drawBar(screen *ebiten.Image, b *bar, r Rect) {
	fill := b.color
	switch {
	case b.invalid:
		fill = c.InvalidColor
	case b.bgCleared:
		fill = c.DragColor
	}
	fillRect(screen, r, fill)

	if b.affordance == affordanceResizing {
		fillRect(screen, Rect{X: r.X, Y: r.Y, Width: resizeMargin, Height: r.Height}, handleColor)
		fillRect(screen, Rect{X: r.Right() - resizeMargin, Y: r.Y, Width: resizeMargin, Height: r.Height}, handleColor)
	}
	if b.affordance != affordanceNone && c.highlightAlpha > 0 {
		fillRect(screen, r, Color{R: 1, G: 1, B: 1, A: c.highlightAlpha})
	}

	if b.step.Caption != "" {
		c.drawText(screen, b.step.Caption, r.X+4, r.Y+(r.Height-13)/2)
	}
}

// drawHeader renders the tick band and grid lines. Drawn after the bars so
// the band covers any bar dragged under it.
func (c *Chart) drawHeader(screen *ebiten.Image, tb *TimelineBand) {
	w := float64(screen.Bounds().Dx())
	fillRect(screen, Rect{Width: w, Height: tb.Height}, headerColor)

	tw := c.trackWidth()
	for _, tick := range tb.ticks() {
		x := tb.LeftPercentageForTime(tick)/100*tw - tb.ScrollLeft()
		if x < -tb.resolution.minTickWidth() || x > w {
			continue
		}
		fillRect(screen, Rect{X: x, Y: 0, Width: 1, Height: tb.Height + c.contentHeight}, gridColor)
		c.drawText(screen, tick.Format(tb.resolution.labelFormat()), x+4, 5)
	}
}

// drawText renders a label with the configured caption face, falling back to
// the built-in debug face when none is set.
func (c *Chart) drawText(dst *ebiten.Image, s string, x, y float64) {
	if c.CaptionFace != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(textColor.toRGBA())
		text.Draw(dst, s, c.CaptionFace, op)
		return
	}
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}

// fillRect draws a solid rectangle by scaling the shared 1x1 white pixel.
func fillRect(dst *ebiten.Image, r Rect, col Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(col.toRGBA())
	dst.DrawImage(WhitePixel, op)
}
