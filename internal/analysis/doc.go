// Package analysis interprets simulated concentration curves.
//
// It answers two questions about a dosing regimen:
//
//   - [AnalyzeSleep]: when does steady-state concentration first fall to the
//     sleep threshold, with and without the urinary intervention
//   - [Summarize]: the classic PK summary (elimination rate, half-life,
//     accumulation factor, steady-state trough) of the baseline curve
//
// The result of [AnalyzeSleep] is one of [Neither], [OnlyWith],
// [OnlyWithout] or [Both]:
//
//	switch s := analysis.AnalyzeSleep(conc, 13).(type) {
//	case analysis.Both:
//	    fmt.Printf("%.1f h earlier\n", s.GainedH)
//	case analysis.Neither:
//	    fmt.Println("threshold not reached")
//	}
package analysis
