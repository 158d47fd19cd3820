package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
)

// CardInputs carries the context a summary card shows next to a result.
type CardInputs struct {
	ThresholdNgML         float64
	AdjustedThresholdNgML float64
	// DoseClockH is the time of day the drug is taken, for bedtimes.
	DoseClockH float64
}

// SleepCard summarizes the sleep analysis.
func SleepCard(s analysis.SleepAnalysis, in CardInputs, st Styles) string {
	with, okWith := s.WithInterventionH()
	without, okWithout := s.WithoutInterventionH()

	var b strings.Builder
	b.WriteString(st.Title.Render("Sleep") + "\n")
	b.WriteString(row(st, "threshold", fmt.Sprintf("%g ng/mL (adjusted %g, unvalidated)", in.ThresholdNgML, in.AdjustedThresholdNgML)))
	b.WriteString(row(st, "without", onsetText(st.Without, without, okWithout, in.DoseClockH)))
	b.WriteString(row(st, "with", onsetText(st.With, with, okWith, in.DoseClockH)))
	b.WriteString(row(st, "sleep window", SleepWindow(without, okWithout)+" -> "+SleepWindow(with, okWith)))

	switch v := s.(type) {
	case analysis.Both:
		gained := FormatDuration(math.Max(v.GainedH, 0))
		pct := "undefined"
		if p, ok := v.ImprovementPercent(); ok {
			pct = fmt.Sprintf("%.1f%%", p)
		}
		b.WriteString(row(st, "gained", st.With.Render(gained)+" ("+pct+")"))
		b.WriteString(st.Subtle.Render(ImpactMessage(v.GainedH)))
	case analysis.OnlyWith:
		b.WriteString(st.With.Render("sleep only becomes possible with the intervention"))
	case analysis.OnlyWithout:
		b.WriteString(st.Warning.Render("the intervention prevents reaching the threshold"))
	case analysis.Neither:
		b.WriteString(st.Warning.Render("sleep may not be possible within the interval; consider a lower dose or higher threshold"))
	}

	return st.Panel.Render(b.String())
}

// SummaryCard shows the PK summary and run metrics.
func SummaryCard(res *sim.Result, st Styles) string {
	s := res.Summary

	var b strings.Builder
	b.WriteString(st.Title.Render("Pharmacokinetics (baseline)") + "\n")
	b.WriteString(row(st, "elimination k", fmt.Sprintf("%.4f /h", s.EliminationRatePerH)))
	b.WriteString(row(st, "half-life", fmt.Sprintf("%.2f h", s.HalfLifeH)))
	b.WriteString(row(st, "accumulation R", fmt.Sprintf("%.3f", s.AccumulationFactor)))
	b.WriteString(row(st, "steady trough", fmt.Sprintf("%.2f ng/mL", pk.MgLToNgML(s.TroughSteadyStateMgL))))

	if len(res.Metrics) > 0 {
		b.WriteString("\n" + st.Title.Render("With intervention") + "\n")
		if v, ok := res.Metrics["peak_concentration"]; ok {
			b.WriteString(row(st, "peak", fmt.Sprintf("%.2f ng/mL", pk.MgLToNgML(v))))
		}
		if v, ok := res.Metrics["auc"]; ok {
			b.WriteString(row(st, "AUC", fmt.Sprintf("%.1f ng·h/mL", pk.MgLToNgML(v))))
		}
		if v, ok := res.Metrics["min_urine_ph"]; ok {
			b.WriteString(row(st, "min urine pH", fmt.Sprintf("%.2f", v)))
		}
		if v, ok := res.Metrics["hours_outside_safe_ph"]; ok {
			text := fmt.Sprintf("%.1f h", v)
			if v > 0 {
				text = st.Warning.Render(text)
			}
			b.WriteString(row(st, "outside safe pH", text))
		}
	}

	return st.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Cards lays the sleep and summary cards side by side.
func Cards(res *sim.Result, in CardInputs, st Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, SleepCard(res.Sleep, in, st), " ", SummaryCard(res, st))
}

func row(st Styles, label, value string) string {
	return st.Label.Render(fmt.Sprintf("%-16s", label)) + st.Value.Render(value) + "\n"
}

func onsetText(style lipgloss.Style, h float64, ok bool, doseClockH float64) string {
	if !ok {
		return style.Render("not reached")
	}
	return style.Render(fmt.Sprintf("%.1f h", h)) + " (bedtime " + FormatClock(doseClockH+h) + ")"
}
