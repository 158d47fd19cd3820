package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
	"github.com/san-kum/pksim/internal/viz"
)

// Thresholds are the sleep thresholds drawn on the concentration chart, in
// ng/mL.
type Thresholds struct {
	UserNgML     float64
	NaiveNgML    float64
	AdjustedNgML float64
}

// ConcentrationChart plots the four concentration series and the thresholds.
func ConcentrationChart(res *sim.Result, th Thresholds) *charts.Line {
	rows := ChartRows(res.Concentrations)
	end := res.Ph.End()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Amphetamine concentration",
			Subtitle: fmt.Sprintf("sleep threshold %g ng/mL", th.UserNgML),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "hours",
			Min:  0,
			Max:  end,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "ng/mL",
			Min:  0,
			Max:  viz.ConcentrationAxisMax(res.Concentrations, th.UserNgML, th.NaiveNgML, th.AdjustedNgML),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	series := []struct {
		name  string
		value func(ChartRow) float64
	}{
		{"steady state", func(r ChartRow) float64 { return r.SteadyStateNgML }},
		{"first dose", func(r ChartRow) float64 { return r.SingleDoseNgML }},
		{"steady state, no intervention", func(r ChartRow) float64 { return r.BaselineSteadyNgML }},
		{"first dose, no intervention", func(r ChartRow) float64 { return r.BaselineSingleNgML }},
	}
	for _, s := range series {
		items := make([]opts.LineData, 0, len(rows))
		for _, r := range rows {
			items = append(items, opts.LineData{Value: []interface{}{r.TimeH, s.value(r)}})
		}
		line.AddSeries(s.name, items).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	addLevel(line, "sleep threshold", th.UserNgML, end)
	addLevel(line, "adjusted threshold (heuristic)", th.AdjustedNgML, end)
	return line
}

// PhChart plots urine pH with the safety window bounds.
func PhChart(ph pk.PhSeries, safe pk.SafetyWindow) *charts.Line {
	lo, hi := viz.PhAxisRange(ph, safe)
	end := ph.End()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Urine pH"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "hours", Min: 0, Max: end}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "pH", Min: lo, Max: hi}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	items := make([]opts.LineData, 0, len(ph))
	for _, p := range ph {
		items = append(items, opts.LineData{Value: []interface{}{p.TimeH, p.Ph}})
	}
	line.AddSeries("urine pH", items).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)

	addLevel(line, "safe minimum", safe.Min, end)
	addLevel(line, "safe maximum", safe.Max, end)
	return line
}

// WriteHTML renders both charts as a standalone page.
func WriteHTML(w io.Writer, res *sim.Result, th Thresholds) error {
	page := components.NewPage()
	page.PageTitle = "pksim"
	page.AddCharts(
		ConcentrationChart(res, th),
		PhChart(res.Ph, pk.UrinePhSafety),
	)
	return page.Render(w)
}

func addLevel(line *charts.Line, name string, v, end float64) {
	items := []opts.LineData{
		{Value: []interface{}{0.0, v}},
		{Value: []interface{}{end, v}},
	}
	line.AddSeries(name, items).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{Width: 1, Type: "dashed"}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
}
