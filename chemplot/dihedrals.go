/*
 * dihedrals.go, part of geoanal.
 *
 * Copyright 2024 The geoanal authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/geoanal/terms"
)

// BinWidth is the width, in degrees, of the bins of dihedral histograms. It divides
// the conformational ranges evenly.
const BinWidth = 30.0

// dihedralBins returns the counts of the dihedrals phi in 30 degree bins from -180
// to 180, and the dividers of the bins. Angles are brought to (-180,180] first.
func dihedralBins(phi []float64) (counts, dividers []float64) {
	n := int(360 / BinWidth)
	dividers = floats.Span(make([]float64, n+1), -180, 180)
	//so 180 itself falls in the last bin.
	dividers[n] = math.Nextafter(180, 360)
	x := make([]float64, len(phi))
	for i, v := range phi {
		x[i] = terms.WrapDegrees(v)
	}
	sort.Float64s(x)
	counts = stat.Histogram(nil, dividers, x, nil)
	dividers[n] = 180
	return counts, dividers
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return p
}

// DihedralHistogram draws a histogram of the dihedral angles phi, in degrees, and saves it
// to filename. The X axis always spans the whole (-180,180] range.
func DihedralHistogram(phi []float64, title, filename string) error {
	p := basicPlot(title, "Dihedral (º)", "Count")
	counts, div := dihedralBins(phi)
	bins := make([]plotter.HistogramBin, len(counts))
	for i, c := range counts {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: c}
	}
	r, g, b := colors(0, 1)
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     BinWidth,
		FillColor: color.RGBA{R: r, G: g, B: b, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(plotter.NewGrid(), h)
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = 0
	p.X.Tick.Marker = plot.ConstantTicks(ticks(div))
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

func ticks(div []float64) []plot.Tick {
	ret := make([]plot.Tick, 0, len(div))
	for i, d := range div {
		t := plot.Tick{Value: d}
		if i%2 == 0 {
			t.Label = formatDeg(d)
		}
		ret = append(ret, t)
	}
	return ret
}

func formatDeg(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Populations returns how many of the dihedrals phi fall in each conformation,
// indexed as terms.Conformations.
func Populations(phi []float64) []float64 {
	ret := make([]float64, len(terms.Conformations))
	for _, v := range phi {
		ret[terms.Classify(v)]++
	}
	return ret
}

// ConformerBars draws a bar chart of the number of dihedrals phi in each conformation,
// and saves it to filename.
func ConformerBars(phi []float64, title, filename string) error {
	p := basicPlot(title, "Conformation", "Count")
	pop := Populations(phi)
	labels := make([]string, len(pop))
	for i, c := range terms.Conformations {
		labels[i] = c.Label()
		bar, err := plotter.NewBarChart(plotter.Values{pop[i]}, vg.Points(30))
		if err != nil {
			return err
		}
		bar.XMin = float64(i)
		r, g, b := colors(i, len(pop))
		bar.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
	}
	p.Y.Min = 0
	p.NominalX(labels...)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
