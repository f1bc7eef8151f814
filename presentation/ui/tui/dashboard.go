package tui

import (
	"context"
	"fmt"
	"gwswitch/domain/app"
	"gwswitch/domain/switching"
	"gwswitch/infrastructure/logging"
	"gwswitch/presentation/ui"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const logTailLines = 6

var writeClipboard = clipboard.WriteAll

type Options struct {
	LogFeed         logging.Feed
	ExitAfterSwitch bool
	ExitDelay       time.Duration
}

type updateMsg struct {
	update switching.Update
	closed bool
}

type logChangedMsg struct{}

type exitMsg struct{}

// Dashboard lists the candidates, the active gateway and the switch progress.
type Dashboard struct {
	ctx        context.Context
	controller ui.Controller
	options    Options
	keys       keyMap
	help       help.Model
	styles     styles

	last     switching.Update
	cursor   int
	notice   string
	showLogs bool
	exiting  bool
	width    int
}

func NewDashboard(ctx context.Context, controller ui.Controller, options Options) Dashboard {
	return Dashboard{
		ctx:        ctx,
		controller: controller,
		options:    options,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     defaultStyles(),
		last:       switching.Update{State: controller.Snapshot()},
		showLogs:   true,
	}
}

func (m Dashboard) Init() tea.Cmd {
	return tea.Batch(
		waitForUpdate(m.controller.Updates()),
		waitForLog(m.ctx, m.options.LogFeed),
	)
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case updateMsg:
		if msg.closed {
			if m.exiting {
				// exitAfter is already scheduled
				return m, nil
			}
			return m, tea.Quit
		}
		return m.applyUpdate(msg.update)
	case logChangedMsg:
		return m, waitForLog(m.ctx, m.options.LogFeed)
	case exitMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Dashboard) applyUpdate(u switching.Update) (tea.Model, tea.Cmd) {
	m.last = u
	if n := u.State.Candidates.Len(); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	next := waitForUpdate(m.controller.Updates())
	if m.exiting {
		return m, next
	}
	switch {
	case u.Phase == switching.PhaseSettled && m.options.ExitAfterSwitch,
		u.Phase == switching.PhaseDegraded:
		m.exiting = true
		return m, tea.Batch(next, exitAfter(m.options.ExitDelay))
	}
	return m, next
}

func (m Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.last.State
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < state.Candidates.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if state.Candidates.Len() == 0 {
			return m, nil
		}
		target := state.Candidates.Candidates[m.cursor]
		if m.controller.Select(target.Address) {
			m.notice = ""
		} else {
			m.notice = fmt.Sprintf("Cannot switch to %s now", target.Label)
		}
	case key.Matches(msg, m.keys.Refresh):
		if state.Phase.AcceptsSelection() {
			m.controller.Refresh()
			m.notice = "Refreshing current gateway"
		}
	case key.Matches(msg, m.keys.Copy):
		if !state.ActiveGatewayKnown() {
			m.notice = "Current gateway is undetermined"
			return m, nil
		}
		if err := writeClipboard(state.ActiveGateway); err != nil {
			m.notice = fmt.Sprintf("Failed to copy to clipboard: %v", err)
		} else {
			m.notice = fmt.Sprintf("Copied %s to clipboard", state.ActiveGateway)
		}
	}
	return m, nil
}

func (m Dashboard) View() string {
	s := m.styles
	state := m.last.State
	var b strings.Builder

	b.WriteString(s.title.Render(app.Name))
	b.WriteString("\n\n")
	b.WriteString(s.meta.Render("Current gateway: "))
	b.WriteString(s.current.Render(state.ActiveDisplay()))
	if state.ActiveGatewayKnown() && state.ActiveDisplay() != state.ActiveGateway {
		b.WriteString(s.meta.Render(" (" + state.ActiveGateway + ")"))
	}
	b.WriteString("\n\n")

	switch {
	case state.Phase == switching.PhaseDegraded:
		b.WriteString(s.errText.Render("Switching disabled: no required service is running"))
		b.WriteString("\n")
	case state.Candidates.Len() == 0 && state.Phase != switching.PhaseInitializing:
		b.WriteString(s.meta.Render("No gateways configured"))
		b.WriteString("\n")
	default:
		for i, c := range state.Candidates.Candidates {
			marker := "  "
			if c.Address == state.ActiveGateway {
				marker = "* "
			}
			line := marker + c.DisplayName
			if i == m.cursor {
				b.WriteString(s.active.Render(line))
			} else {
				b.WriteString(s.option.Render(line))
			}
			b.WriteString("\n")
		}
		if state.Candidates.Skipped > 0 {
			b.WriteString(s.meta.Render(fmt.Sprintf("%d line(s) skipped", state.Candidates.Skipped)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.last.Phase == switching.PhaseSwitching || m.last.Phase == switching.PhaseSettled {
		b.WriteString(s.progressBar(m.last.Fraction(), m.width-8))
		b.WriteString("\n")
	}
	if m.last.Status != "" {
		b.WriteString(m.last.Status)
		b.WriteString("\n")
	}
	if m.last.Err != nil {
		b.WriteString(s.errText.Render(m.last.Err.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(s.meta.Render(m.notice))
		b.WriteString("\n")
	}

	if m.showLogs && m.options.LogFeed != nil {
		if lines := m.options.LogFeed.Tail(logTailLines); len(lines) > 0 {
			b.WriteString("\n")
			b.WriteString(s.log.Render(strings.Join(lines, "\n")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return s.frame.Render(b.String())
}

func waitForUpdate(updates <-chan switching.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		return updateMsg{update: u, closed: !ok}
	}
}

func waitForLog(ctx context.Context, feed logging.Feed) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-feed.Changes():
			return logChangedMsg{}
		}
	}
}

func exitAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return exitMsg{}
	})
}
