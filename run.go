package gantt

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Chart to the ebiten.Game interface.
type game struct {
	chart *Chart
	w, h  int
}

func (g *game) Update() error {
	g.chart.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.chart.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.chart.NotifyWidthChanged(float64(outsideWidth))
		g.chart.NotifyHeightChanged(float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the chart until the window closes.
// For full control implement ebiten.Game yourself and call Chart.Update,
// Chart.Draw, and the Notify*Changed methods directly.
func Run(chart *Chart, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	chart.NotifyWidthChanged(float64(cfg.Width))
	chart.NotifyHeightChanged(float64(cfg.Height))
	return ebiten.RunGame(&game{chart: chart, w: cfg.Width, h: cfg.Height})
}
