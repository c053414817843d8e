package interactive

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rokudocs/brsdoc/internal/checksum"
	"github.com/rokudocs/brsdoc/internal/config"
	"github.com/rokudocs/brsdoc/internal/docgen"
	"github.com/rokudocs/brsdoc/internal/parser"
)

type status int

const (
	statusWatching status = iota
	statusParsing
	statusRendering
	statusError
	statusSuccess
)

const previewLines = 24

// LogBuffer collects recent log lines forwarded by the callback log handler
// so they can be shown inside the TUI instead of corrupting the screen.
type LogBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *LogBuffer) record(r slog.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, r.Message)
	if len(b.lines) > 5 {
		b.lines = b.lines[len(b.lines)-5:]
	}
}

func (b *LogBuffer) recent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

type model struct {
	filePath string
	outPath  string
	cfg      *config.Config
	status   status

	lastUpdate time.Time
	err        error
	preview    string
	logs       *LogBuffer

	width  int
	height int
}

type fileChangedMsg struct{}

type renderCompleteMsg struct {
	err     error
	preview string
}

// NewModel builds the watch-mode TUI for one source file.
func NewModel(filePath, outPath string, cfg *config.Config, logs *LogBuffer) model {
	return model{
		filePath: filePath,
		outPath:  outPath,
		cfg:      cfg,
		status:   statusWatching,
		logs:     logs,
	}
}

// NewLogBuffer returns the buffer and the callback feeding it.
func NewLogBuffer() (*LogBuffer, func(slog.Record)) {
	b := &LogBuffer{}
	return b, b.record
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case fileChangedMsg:
		m.status = statusParsing
		m.lastUpdate = time.Now()
		return m, m.regenerate()

	case renderCompleteMsg:
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
		} else {
			m.status = statusSuccess
			m.preview = msg.preview
		}
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)
	s.WriteString(headerStyle.Render("brsdoc - documentation preview"))
	s.WriteString("\n\n")

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.filePath)))
	s.WriteString("\n")
	s.WriteString(fileStyle.Render(fmt.Sprintf("Output:   %s", m.outPath)))
	s.WriteString("\n\n")

	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWatching:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("Watching for changes..."))
	case statusParsing:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("11")).Render("Parsing source..."))
	case statusRendering:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("12")).Render("Rendering documentation..."))
	case statusSuccess:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("Documentation generated"))
		if !m.lastUpdate.IsZero() {
			s.WriteString(fmt.Sprintf(" (%s)", time.Since(m.lastUpdate).Round(time.Millisecond)))
		}
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n\n")

	if m.preview != "" {
		previewStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
		s.WriteString(previewStyle.Render(truncateLines(m.preview, previewLines)))
		s.WriteString("\n\n")
	}

	if m.logs != nil {
		logStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		for _, line := range m.logs.recent() {
			s.WriteString(logStyle.Render(line))
			s.WriteString("\n")
		}
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Press 'q' to quit"))

	return s.String()
}

func (m model) regenerate() tea.Cmd {
	return func() tea.Msg {
		parsed, err := parser.Load(context.Background(), m.filePath, m.cfg.Parser)
		if err != nil {
			return renderCompleteMsg{err: fmt.Errorf("parse error: %w", err)}
		}

		blob := docgen.Generate(parsed.Source.Name, parsed.Source, parsed.Stmts,
			docgen.Options{Markers: m.cfg.GetMarkers()})
		if blob == "" {
			return renderCompleteMsg{preview: "(no documented declarations)"}
		}

		sum := checksum.Calculate(parsed.Source.Text)
		content := checksum.Header(sum) + "\n\n" + blob
		if err := os.WriteFile(m.outPath, []byte(content), 0644); err != nil {
			return renderCompleteMsg{err: fmt.Errorf("write error: %w", err)}
		}

		return renderCompleteMsg{preview: blob}
	}
}

func truncateLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	truncated := append(lines[:n:n], fmt.Sprintf("... (%d more lines)", len(lines)-n))
	return strings.Join(truncated, "\n")
}

// FileChanged returns the message that triggers re-rendering.
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}
