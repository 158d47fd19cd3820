package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/config"
	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/experiment"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
	"github.com/san-kum/pksim/internal/viz"
)

type field struct {
	label string
	unit  string
	step  float64
	r     config.Range
	ptr   func(*config.Config) *float64
}

var fields = []field{
	{"dose", "mg", 5, config.DefaultBounds.DoseMg, func(c *config.Config) *float64 { return &c.DoseMg }},
	{"body weight", "kg", 1, config.DefaultBounds.BodyWeightKg, func(c *config.Config) *float64 { return &c.BodyWeightKg }},
	{"base urine pH", "", 0.1, config.DefaultBounds.BaseUrinePh, func(c *config.Config) *float64 { return &c.BaseUrinePh }},
	{"sleep threshold", "ng/mL", 1, config.DefaultBounds.SleepThresholdNgML, func(c *config.Config) *float64 { return &c.SleepThresholdNgML }},
	{"dose time", "h", 0.5, config.DefaultBounds.DoseClockH, func(c *config.Config) *float64 { return &c.DoseClockH }},
	{"vitamin C dose", "mg", 100, config.DefaultBounds.VitaminCDoseMg, func(c *config.Config) *float64 { return &c.VitaminC.DoseMg }},
	{"vitamin C time", "h", 0.5, config.DefaultBounds.VitaminCTimeH, func(c *config.Config) *float64 { return &c.VitaminC.TimeH }},
	{"urine flow", "L/h", 0.01, config.DefaultBounds.UrineFlowLPerH, func(c *config.Config) *float64 { return &c.VitaminC.UrineFlowLPerH }},
	{"buffer capacity", "mmol/L/pH", 1, config.DefaultBounds.BufferCapacity, func(c *config.Config) *float64 { return &c.VitaminC.BufferCapacityMmolPerLPerPh }},
}

type model struct {
	cfg      *config.Config
	initial  *config.Config
	registry *experiment.Registry
	log      *zap.Logger

	cursor   int
	probe    int
	showHelp bool
	theme    viz.Theme
	styles   viz.Styles

	exp    *experiment.Experiment
	result *sim.Result
	err    error

	width  int
	height int
}

func newModel(cfg *config.Config, registry *experiment.Registry, log *zap.Logger) model {
	if log == nil {
		log = zap.NewNop()
	}
	theme := viz.ThemeNight
	m := model{
		cfg:      cfg.Clone(),
		initial:  cfg.Clone(),
		registry: registry,
		log:      log,
		theme:    theme,
		styles:   viz.NewStyles(theme),
		width:    100,
		height:   40,
	}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "H":
		m.adjust(-10)
	case "L":
		m.adjust(10)
	case "v":
		if m.cfg.Intervention == "none" {
			m.cfg.Intervention = "vitamin_c"
		} else {
			m.cfg.Intervention = "none"
		}
		m.recompute()
	case "t":
		m.theme = viz.NextTheme(m.theme)
		m.styles = viz.NewStyles(m.theme)
	case "[":
		m.scrub(-probeStep)
	case "]":
		m.scrub(probeStep)
	case "?":
		m.showHelp = !m.showHelp
	case "r":
		m.cfg = m.initial.Clone()
		m.probe = 0
		m.recompute()
	}
	return m, nil
}

// probeStep is the number of samples one scrub key press moves.
const probeStep = 10

func (m *model) scrub(n int) {
	if m.result == nil || len(m.result.Ph) == 0 {
		return
	}
	m.probe = min(max(m.probe+n, 0), len(m.result.Ph)-1)
}

// adjust moves the selected field by n steps within its bounds.
func (m *model) adjust(n float64) {
	f := fields[m.cursor]
	p := f.ptr(m.cfg)
	*p = f.r.Clamp(*p + n*f.step)
	m.recompute()
}

func (m *model) recompute() {
	exp, err := experiment.New(m.registry, m.cfg, m.log)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.exp = exp
	m.result = exp.Run()
	m.probe = min(m.probe, max(len(m.result.Ph)-1, 0))
}

func (m model) View() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("pksim") + st.Subtle.Render(fmt.Sprintf("  %s + %s  theme: %s", m.cfg.Drug, m.cfg.Intervention, m.theme.Name)) + "\n")
	b.WriteString(st.Separator(m.plotWidth()+10) + "\n")
	b.WriteString(m.viewFields() + "\n")

	if m.err != nil {
		b.WriteString(st.Warning.Render("error: "+m.err.Error()) + "\n")
	} else if m.result != nil {
		naive := m.exp.Simulator().Drug().NaiveSleepThresholdNgML()
		adjusted := drugs.AdjustedSleepThreshold(m.cfg.DoseMg, naive)
		opts := viz.PlotOptions{Width: m.plotWidth(), Height: 12}

		b.WriteString(viz.ConcentrationPlot(m.result.Concentrations, m.cfg.SleepThresholdNgML, adjusted, naive, opts) + "\n\n")
		b.WriteString(viz.PhPlot(m.result.Ph, pk.UrinePhSafety, opts) + "\n")
		b.WriteString(m.viewProbe() + "\n\n")
		b.WriteString(viz.Cards(m.result, viz.CardInputs{
			ThresholdNgML:         m.cfg.SleepThresholdNgML,
			AdjustedThresholdNgML: adjusted,
			DoseClockH:            m.cfg.DoseClockH,
		}, st) + "\n")
	}

	if m.showHelp {
		b.WriteString(st.Panel.Render(helpText) + "\n")
	}
	b.WriteString(st.KeyHint.Render("↑/↓ select  ←/→ adjust  [ ] probe  ? help  q quit"))
	return b.String()
}

const helpText = `↑/↓ k/j   select input
←/→ h/l   adjust by one step
H/L       adjust by ten steps
[ ]       move the time probe by one hour
v         toggle vitamin C
t         cycle theme
r         reset inputs
q         quit`

// viewProbe prints every series at the probe time.
func (m model) viewProbe() string {
	st := m.styles
	i := m.probe
	res := m.result
	if i >= len(res.Ph) {
		return ""
	}
	c := res.Concentrations
	return st.Label.Render(fmt.Sprintf("at %5.1f h (%s)  ", res.Ph[i].TimeH, viz.FormatClock(m.cfg.DoseClockH+res.Ph[i].TimeH))) +
		st.Value.Render(fmt.Sprintf("pH %.2f  ", res.Ph[i].Ph)) +
		st.With.Render(fmt.Sprintf("with %.1f ng/mL  ", pk.MgLToNgML(c.SteadyState[i].ValueMgL))) +
		st.Without.Render(fmt.Sprintf("without %.1f ng/mL", pk.MgLToNgML(c.Baseline.SteadyState[i].ValueMgL)))
}

func (m model) viewFields() string {
	st := m.styles
	rows := make([]string, 0, len(fields))
	for i, f := range fields {
		v := *f.ptr(m.cfg)
		frac := 0.0
		if span := f.r.Max - f.r.Min; span > 0 {
			frac = (v - f.r.Min) / span
		}

		cursor := "  "
		label := st.Label
		if i == m.cursor {
			cursor = st.Title.Render("▸ ")
			label = st.Value
		}
		rows = append(rows, cursor+
			label.Render(fmt.Sprintf("%-16s", f.label))+
			st.Value.Render(fmt.Sprintf("%8.2f %-10s", v, f.unit))+
			viz.Bar(frac, 20, st.With))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) plotWidth() int {
	w := m.width - 12
	if w < 20 {
		return 20
	}
	if w > 120 {
		return 120
	}
	return w
}

// Run starts the interactive calculator on the alternate screen.
func Run(cfg *config.Config, registry *experiment.Registry, theme viz.Theme, log *zap.Logger) error {
	m := newModel(cfg, registry, log)
	m.theme = theme
	m.styles = viz.NewStyles(theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
