// Package chart draws the price history of an instrument, with its buying opportunities.
package chart

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/stockhist"
	"github.com/etnz/stockhist/date"
)

const (
	Width  = 900
	Height = 400
)

// Format is an image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// FormatOf returns the format matching the extension of filename, PNG by default.
func FormatOf(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		return SVG
	}
	return PNG
}

// Series is the data drawn on a chart.
type Series struct {
	Ticker        stockhist.Ticker
	Prices        []stockhist.Price
	Opportunities []date.Date
	Extremes      stockhist.Extremes // y axis range, unused if zero.
}

// Render draws s to w.
func Render(w io.Writer, s *Series, format Format) error {
	if len(s.Prices) < 2 {
		return fmt.Errorf("need at least 2 prices, got %d", len(s.Prices))
	}

	xValues := make([]time.Time, len(s.Prices))
	yValues := make([]float64, len(s.Prices))
	closes := make(map[date.Date]float64, len(s.Prices))
	for i, p := range s.Prices {
		xValues[i] = p.Date.Time()
		yValues[i] = p.Close
		closes[p.Date] = p.Close
	}

	priceSeries := chart.TimeSeries{
		Name: s.Ticker.String(),
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2,
		},
		XValues: xValues,
		YValues: yValues,
	}

	buyX := make([]time.Time, 0, len(s.Opportunities))
	buyY := make([]float64, 0, len(s.Opportunities))
	for _, on := range s.Opportunities {
		p, ok := closes[on]
		if !ok {
			continue
		}
		buyX = append(buyX, on.Time())
		buyY = append(buyY, p)
	}

	series := []chart.Series{priceSeries}
	if len(buyX) > 0 {
		series = append(series, chart.TimeSeries{
			Name: "Buy",
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
				DotColor:    drawing.ColorFromHex("16a34a"),
			},
			XValues: buyX,
			YValues: buyY,
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s closing prices", s.Ticker),
		Width:  Width,
		Height: Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: series,
	}
	if s.Extremes.Max > s.Extremes.Min {
		graph.YAxis.Range = &chart.ContinuousRange{Min: s.Extremes.Min, Max: s.Extremes.Max}
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	renderer := chart.PNG
	if format == SVG {
		renderer = chart.SVG
	}
	if err := graph.Render(renderer, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
