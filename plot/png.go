// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package plot

import (
	"bytes"
	"context"
	"os"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PNG renders charts to an image file.
type PNG struct {
	Path   string
	Width  int // pixels, 0 for 1024.
	Height int // pixels, 0 for 640.
}

func lineStyle(hex string) chart.Style {
	col := drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    3,
		DotColor:    col,
	}
}

// MinPNGPoints is the shortest chart a PNG renders; go-chart cannot draw a
// line through fewer points.
const MinPNGPoints = 2

// CheckLen tells whether a chart of n points can be rendered.
func (p *PNG) CheckLen(n int) error {
	if n < MinPNGPoints {
		return presentErr("png needs at least %d sweep points, have %d", MinPNGPoints, n)
	}
	return nil
}

// Render renders c as a png image.
func (p *PNG) Render(c *Chart) ([]byte, error) {
	n := c.Len()
	if e := p.CheckLen(n); e != nil {
		return nil, e
	}
	series := make([]chart.Series, 0, len(c.Lines))
	for _, ln := range c.Lines {
		xs := make([]float64, len(ln.Values))
		for i := range xs {
			xs[i] = float64(i)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ln.Name,
			XValues: xs,
			YValues: ln.Values,
			Style:   lineStyle(ln.Color),
		})
	}
	yMax := c.Max()
	if yMax <= 0 {
		yMax = 1
	}
	ch := chart.Chart{
		Title:      c.Title,
		Width:      p.Width,
		Height:     p.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: c.XLabel, Range: &chart.ContinuousRange{Min: 0, Max: float64(n - 1)}},
		YAxis:      chart.YAxis{Name: c.YLabel, Range: &chart.ContinuousRange{Min: 0, Max: yMax * 1.05}},
		Series:     series,
	}
	if ch.Width == 0 {
		ch.Width = 1024
	}
	if ch.Height == 0 {
		ch.Height = 640
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if e := ch.Render(chart.PNG, &buf); e != nil {
		return nil, presentErr("rendering png: %s", e)
	}
	return buf.Bytes(), nil
}

// Present writes the image to p.Path.  Nothing is written if rendering
// fails.
func (p *PNG) Present(_ context.Context, c *Chart) error {
	img, e := p.Render(c)
	if e != nil {
		return e
	}
	if e := os.WriteFile(p.Path, img, 0644); e != nil {
		return presentErr("writing %s: %s", p.Path, e)
	}
	return nil
}
