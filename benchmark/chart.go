package benchmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/YuminosukeSato/linsys/linear"
	"github.com/YuminosukeSato/linsys/pkg/errors"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// Plot は計測値と理論値の乗除算回数をサイズ n に対してプロットし、w に書き出す
// format は gonum/plot が扱える形式（"svg", "png", "pdf" など）
func Plot(records []Record, w io.Writer, format string) error {
	if len(records) == 0 {
		return errors.NewValueError("Plot", "no records to plot")
	}

	p := plot.New()
	p.Title.Text = "Multiplications/divisions: measured vs theoretical"
	p.X.Label.Text = "n"
	p.Y.Label.Text = "mul/div"
	p.Legend.Top = true
	p.Legend.Left = true

	var lines []interface{}
	grouped := ByMethod(records)
	for _, m := range linear.Methods() {
		recs, ok := grouped[m]
		if !ok {
			continue
		}
		measured := make(plotter.XYs, len(recs))
		estimated := make(plotter.XYs, len(recs))
		for i, r := range recs {
			measured[i] = plotter.XY{X: float64(r.N), Y: float64(r.Measured.MulDiv)}
			estimated[i] = plotter.XY{X: float64(r.N), Y: float64(r.Estimated.MulDiv)}
		}
		lines = append(lines,
			string(m)+" measured", measured,
			string(m)+" theoretical", estimated,
		)
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return errors.Wrap(err, "add chart lines")
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, strings.ToLower(format))
	if err != nil {
		return errors.Wrapf(err, "render chart as %q", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write chart")
	}
	return nil
}

// ASCIIChart renders the measured mul/div counts of every method as a
// terminal chart, one series per method in Methods() order.
func ASCIIChart(records []Record, height, width int) string {
	grouped := ByMethod(records)

	var (
		series [][]float64
		names  []string
	)
	for _, m := range linear.Methods() {
		recs, ok := grouped[m]
		if !ok {
			continue
		}
		data := make([]float64, len(recs))
		for i, r := range recs {
			data[i] = float64(r.Measured.MulDiv)
		}
		series = append(series, data)
		names = append(names, string(m))
	}
	if len(series) == 0 {
		return ""
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("mul/div by n (%s)", strings.Join(names, ", "))),
	)
}
