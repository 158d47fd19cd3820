// Package viz renders simulation results for the terminal.
//
//   - [ConcentrationPlot] and [PhPlot]: asciigraph line charts
//   - [SleepCard] and [SummaryCard]: lipgloss panels
//   - [ConcentrationAxisMax] and [PhAxisRange]: chart bounds shared with the
//     HTML export
//
// Cards take a [Styles] built from one of the [Themes].
package viz
