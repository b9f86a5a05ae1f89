// File: model.go
// Title: Console TUI Model
// Description: Main bubbletea model for the interactive console. A
//              viewport shows the transcript, a textinput takes command
//              lines, Up/Down recall history through the session and a
//              terminating command quits after a short delay so the
//              shutdown notice stays visible.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package console

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/shell"
	"github.com/avoronin/shellemu/foundation/shell/script"
	"github.com/avoronin/shellemu/foundation/shell/session"
	"github.com/avoronin/shellemu/internal/host"
	"github.com/avoronin/shellemu/pkg/core/config"
	"github.com/avoronin/shellemu/pkg/core/version"
)

// transcript collects output lines and is handed to the session and the
// script runner as their sink
type transcript struct {
	lines []string
}

func (t *transcript) WriteLine(line string) {
	t.lines = append(t.lines, line)
}

func (t *transcript) clear() {
	t.lines = nil
}

// Model is the main bubbletea model for the console
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	closing bool

	// Components
	textinput textinput.Model
	viewport  viewport.Model

	// Shell state
	session    *session.Session
	runner     *script.Runner
	transcript *transcript

	cfg    *config.Config
	logger *log.Logger
}

// New creates the console model over a ready session and runner
func New(cfg *config.Config, sess *session.Session, runner *script.Runner, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command (Enter to run)"
	ti.Focus()
	ti.CharLimit = 2048
	ti.Prompt = ""

	tr := &transcript{}

	m := Model{
		textinput:  ti,
		session:    sess,
		runner:     runner,
		transcript: tr,
		cfg:        cfg,
		logger:     logger.WithField("component", "console"),
	}

	if cfg.Console.ShowWelcome {
		m.printWelcome()
	}
	m.printStartupParams()

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tea.EnterAltScreen,
	}
	if m.cfg.Startup.Script != "" {
		cmds = append(cmds, tea.Tick(startupScriptDelay, func(t time.Time) tea.Msg {
			return startupScriptMsg(t)
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // title + prompt line
		footerHeight := 5 // input panel + help bar
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textinput.Width = msg.Width - 8
		m.refreshViewport()

	case startupScriptMsg:
		report, err := m.runner.RunFile(m.cfg.Startup.Script, m.transcript)
		if err != nil {
			m.logger.ErrorWithErr("startup script failed", err)
		}
		m.refreshViewport()
		if report.Terminated {
			return m.beginClose()
		}

	case closeMsg:
		return m, tea.Quit
	}

	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.transcript.clear()
		m.refreshViewport()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	// Once close is pending no further input dispatches
	if m.closing {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		input := m.textinput.Value()
		m.textinput.Reset()

		closed := m.session.Submit(input, m.transcript)
		m.refreshViewport()
		if closed {
			return m.beginClose()
		}
		return m, nil

	case tea.KeyUp:
		if val, ok := m.session.History().Previous(); ok {
			m.textinput.SetValue(val)
			m.textinput.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if val, ok := m.session.History().Next(); ok {
			m.textinput.SetValue(val)
			m.textinput.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

// beginClose blurs the input and schedules the delayed quit
func (m Model) beginClose() (tea.Model, tea.Cmd) {
	m.closing = true
	m.textinput.Blur()
	return m, tea.Tick(closeDelay, func(t time.Time) tea.Msg {
		return closeMsg(t)
	})
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading console..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(TranscriptPanelStyle.Width(m.width - 2).Height(m.viewport.Height).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderInputArea())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title line
func (m Model) renderHeader() string {
	title := TitleStyle.Render(version.String())
	subtitle := SubtitleStyle.Render("prototype shell emulator")
	return title + "  " + subtitle
}

// renderInputArea renders the prompt and the input field
func (m Model) renderInputArea() string {
	if m.closing {
		return InputPanelStyle.Width(m.width - 2).
			Render(ClosedInputStyle.Render("session closed"))
	}
	line := PromptStyle.Render(m.session.Prompt()) + " " + m.textinput.View()
	return InputPanelStyle.Width(m.width - 2).Render(line)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "run"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("PgUp/PgDn", "scroll"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Ctrl+C", "quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// refreshViewport pushes the transcript into the viewport
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, line := range m.transcript.lines {
		content.WriteString(m.styleLine(line))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// styleLine colors failure and debug lines in the transcript
func (m Model) styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "Unknown command: "),
		strings.HasPrefix(line, "Syntax error: "),
		strings.HasPrefix(line, "Execution error: "),
		strings.HasPrefix(line, "[script] aborted"),
		strings.HasPrefix(line, "[script] cannot read"):
		return FailureLineStyle.Render(line)
	case strings.HasPrefix(line, "[Startup parameters]"), strings.HasPrefix(line, "  "):
		return DebugBlockStyle.Render(line)
	default:
		return line
	}
}

// printWelcome writes the welcome banner into the transcript
func (m *Model) printWelcome() {
	for _, line := range []string{
		fmt.Sprintf("%s — prototype shell emulator.", version.String()),
		"Stubs: ls, cd. Real: echo, pwd, exit/quit.",
		"Expansion of %VARS% and ~ is supported.",
		"Examples:",
		"  echo %USERNAME%",
		"  echo ~",
		`  ls C:\Windows\System32`,
		`  cd "%USERPROFILE%\Documents"`,
		"",
	} {
		m.transcript.WriteLine(line)
	}
}

// printStartupParams writes the startup parameter debug block
func (m *Model) printStartupParams() {
	m.transcript.WriteLine("[Startup parameters]")

	vfs := m.cfg.VFS.Path
	if vfs == "" {
		m.transcript.WriteLine("  VFS: (not set)")
	} else {
		m.transcript.WriteLine("  VFS: " + vfs)
		m.transcript.WriteLine("    exists: " + yesNo(isDir(vfs)))
	}

	startup := m.cfg.Startup.Script
	if startup == "" {
		m.transcript.WriteLine("  Startup script: (not set)")
	} else {
		m.transcript.WriteLine("  Startup script: " + startup)
		m.transcript.WriteLine("    exists: " + yesNo(isFile(startup)))
	}
	m.transcript.WriteLine("")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Run builds the shell stack from the configuration and starts the
// console TUI
func Run(cfg *config.Config, logger *log.Logger) error {
	identity := host.Discover()

	engine, err := shell.New(shell.Options{
		Logger:   logger,
		Identity: identity,
		Environ:  host.Environ,
	})
	if err != nil {
		return err
	}

	sess, err := session.New(session.Options{
		Logger:          logger,
		Engine:          engine,
		HistoryLimit:    cfg.Console.HistoryLimit,
		PromptPathWidth: cfg.Console.PromptPathWidth,
	})
	if err != nil {
		return err
	}

	runner, err := script.New(script.Options{
		Logger:          logger,
		Engine:          engine,
		PromptPathWidth: cfg.Console.PromptPathWidth,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(New(cfg, sess, runner, logger), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
