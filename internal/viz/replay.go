package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wheely/internal/wheel"
)

const (
	canvasWidth  = 45
	canvasHeight = 21
	graphWidth   = 70
	graphHeight  = 8
	maxCupRows   = 8
	defaultFPS   = 25
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(34)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays a finished trajectory frame by frame. The engine is
// one-shot, so the animation only ever reads the result buffers.
type Model struct {
	cfg     wheel.Config
	result  *wheel.Result
	frame   int
	playing bool
	fps     int
	maxMass float64
}

func New(cfg wheel.Config, result *wheel.Result, fps int) Model {
	if fps <= 0 {
		fps = defaultFPS
	}
	maxMass := 0.0
	for _, m := range result.Masses {
		if m > maxMass {
			maxMass = m
		}
	}
	return Model{
		cfg:     cfg,
		result:  result,
		playing: true,
		fps:     fps,
		maxMass: maxMass,
	}
}

// Run simulates nothing itself: it animates an already computed result.
func Run(cfg wheel.Config, result *wheel.Result, fps int) error {
	p := tea.NewProgram(New(cfg, result, fps))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
			m.playing = true
		case "right", "l":
			m.playing = false
			if m.frame < m.result.FrameCount-1 {
				m.frame++
			}
		case "left", "h":
			m.playing = false
			if m.frame > 0 {
				m.frame--
			}
		}
	case TickMsg:
		if m.playing {
			m.frame++
			if m.frame >= m.result.FrameCount-1 {
				m.frame = m.result.FrameCount - 1
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	canvas := m.drawWheel()
	stats := m.drawStats()
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvas),
		statsStyle.Render(stats),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render("lorenz water wheel"))
	b.WriteString("\n")
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(m.drawThetaGraph()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space play/pause  ←/→ step  r restart  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) drawWheel() string {
	canvas := make([][]rune, canvasHeight)
	for y := range canvas {
		canvas[y] = make([]rune, canvasWidth)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	cx, cy := canvasWidth/2, canvasHeight/2
	// Terminal cells are taller than wide; stretch x to keep the wheel round.
	rx := float64(canvasWidth/2 - 3)
	ry := float64(canvasHeight/2 - 1)

	set := func(x, y int, c rune) {
		if x >= 0 && x < canvasWidth && y >= 0 && y < canvasHeight {
			canvas[y][x] = c
		}
	}

	// Rim.
	for i := 0; i < 120; i++ {
		a := float64(i) * 2 * math.Pi / 120
		set(cx+int(rx*math.Cos(a)), cy-int(ry*math.Sin(a)), '·')
	}

	// Inflow spout sits at angle zero, on the right.
	set(cx+int(rx)+2, cy, '<')
	set(cx+int(rx)+3, cy, '=')

	theta := m.result.Theta[m.frame]
	spacing := 2 * math.Pi / float64(m.cfg.CupCount)
	for cup := 0; cup < m.cfg.CupCount; cup++ {
		a := theta + spacing*float64(cup)
		x := cx + int(rx*math.Cos(a))
		y := cy - int(ry*math.Sin(a))
		set(x, y, m.massGlyph(m.result.Mass(cup, m.frame)))
	}

	set(cx, cy, '+')

	rows := make([]string, canvasHeight)
	for y := range canvas {
		rows[y] = string(canvas[y])
	}
	return strings.Join(rows, "\n")
}

func (m Model) massGlyph(mass float64) rune {
	if m.maxMass <= 0 {
		return 'o'
	}
	switch frac := mass / m.maxMass; {
	case frac < 0.05:
		return 'o'
	case frac < 0.35:
		return 'O'
	case frac < 0.7:
		return '@'
	default:
		return '#'
	}
}

func (m Model) drawStats() string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	t := m.result.Times[m.frame]
	theta := m.result.Theta[m.frame]
	omega := m.omegaEstimate()

	total := 0.0
	for cup := 0; cup < m.result.CupCount; cup++ {
		total += m.result.Mass(cup, m.frame)
	}

	lines := []string{
		row("time", fmt.Sprintf("%8.3f s", t)),
		row("frame", fmt.Sprintf("%5d / %d", m.frame, m.result.FrameCount-1)),
		row("theta", fmt.Sprintf("%8.3f rad", theta)),
		row("omega", fmt.Sprintf("%8.3f rad/s", omega)),
		row("total mass", fmt.Sprintf("%8.3f", total)),
		"",
	}

	cups := m.result.CupCount
	if cups > maxCupRows {
		cups = maxCupRows
	}
	for cup := 0; cup < cups; cup++ {
		lines = append(lines, row(fmt.Sprintf("m%d", cup),
			fmt.Sprintf("%8.3f", m.result.Mass(cup, m.frame))))
	}
	if m.result.CupCount > maxCupRows {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("… %d more", m.result.CupCount-maxCupRows)))
	}

	return strings.Join(lines, "\n")
}

// omegaEstimate approximates angular velocity by finite difference;
// the trajectory records theta only.
func (m Model) omegaEstimate() float64 {
	if m.frame == 0 {
		return m.cfg.Omega0
	}
	dt := m.result.Times[m.frame] - m.result.Times[m.frame-1]
	if dt == 0 {
		return 0
	}
	return (m.result.Theta[m.frame] - m.result.Theta[m.frame-1]) / dt
}

func (m Model) drawThetaGraph() string {
	end := m.frame + 1
	start := end - graphWidth
	if start < 0 {
		start = 0
	}
	data := m.result.Theta[start:end]
	if len(data) < 2 {
		data = m.result.Theta[:2]
	}
	return asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("theta"),
	)
}
