// Package chart renders the four-panel analysis image: installations
// per state, capacity histogram, installations per facility type, and
// units vs capacity. A panel with no usable data renders empty rather
// than failing the whole image.
package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/galeworks/windreport/internal/dataset"
	"github.com/galeworks/windreport/internal/stats"
	"github.com/galeworks/windreport/internal/utils"
)

// Options controls panel rendering.
type Options struct {
	// Bins is the histogram bin count; <=0 falls back to 20.
	Bins int
	// Width and Height of the whole image. Zero values fall back to
	// 10x8 inches.
	Width  vg.Length
	Height vg.Length
}

var barColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// Render draws all four panels onto one PNG and returns its bytes.
func Render(t *dataset.Table, sum *stats.Summary, opt Options) ([]byte, error) {
	bins := opt.Bins
	if bins <= 0 {
		bins = 20
	}
	w, h := opt.Width, opt.Height
	if w == 0 {
		w = 10 * vg.Inch
	}
	if h == 0 {
		h = 8 * vg.Inch
	}

	pState, err := countPanel("Wind Installations by State", sum.ByState)
	if err != nil {
		return nil, fmt.Errorf("state panel: %w", err)
	}
	pHist, err := histPanel(t, bins)
	if err != nil {
		return nil, fmt.Errorf("capacity panel: %w", err)
	}
	pFacility, err := countPanel("Wind Installations by Facility Type", sum.ByFacility)
	if err != nil {
		return nil, fmt.Errorf("facility panel: %w", err)
	}
	pScatter, err := scatterPanel(t)
	if err != nil {
		return nil, fmt.Errorf("scatter panel: %w", err)
	}

	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{
		{pState, pFacility},
		{pHist, pScatter},
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the panels and writes the PNG atomically.
func WriteFile(path string, t *dataset.Table, sum *stats.Summary, opt Options) error {
	b, err := Render(t, sum, opt)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(path, b)
}

// countPanel draws horizontal count bars, largest group on top. The
// groups arrive sorted by descending count already.
func countPanel(title string, groups []stats.GroupStat) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Number of Installations"
	if len(groups) == 0 {
		return p, nil
	}
	// NominalY lays labels bottom-up; reverse so the biggest group
	// lands at the top of the panel.
	vals := make(plotter.Values, len(groups))
	names := make([]string, len(groups))
	for i, g := range groups {
		j := len(groups) - 1 - i
		vals[j] = float64(g.Count)
		names[j] = g.Key
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(14))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)
	return p, nil
}

func histPanel(t *dataset.Table, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Installed Capacity"
	p.X.Label.Text = "Installed Capacity (MW)"
	p.Y.Label.Text = "Count"
	var vals plotter.Values
	for _, rec := range t.Records {
		if rec.Capacity.Valid {
			vals = append(vals, rec.Capacity.MW)
		}
	}
	if len(vals) == 0 {
		return p, nil
	}
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = barColor
	p.Add(h)
	return p, nil
}

func scatterPanel(t *dataset.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Installed Capacity vs Number of Units"
	p.X.Label.Text = "Number of Units"
	p.Y.Label.Text = "Installed Capacity (MW)"
	var pts plotter.XYs
	for _, rec := range t.Records {
		if rec.Capacity.Valid && rec.HasUnits {
			pts = append(pts, plotter.XY{X: float64(rec.Units), Y: rec.Capacity.MW})
		}
	}
	if len(pts) == 0 {
		return p, nil
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = barColor
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	return p, nil
}
