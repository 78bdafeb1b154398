package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wolfy/internal/history"
)

// Rows taken by the header, input and footer bars.
const chromeHeight = 3

func (m *Model) resize() {
	height := m.height - chromeHeight
	if height < 1 {
		height = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.input.Width = max(m.width-6, 10)
	m.help.Width = m.width
}

// applyTheme restyles the bubbles widgets after a theme change.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.WarningText
	m.help.Styles.ShortKey = styles.Text
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

// refreshViewport re-renders the history, newest first, and scrolls to it.
func (m *Model) refreshViewport() {
	if !m.ready && m.viewport.Width == 0 {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoTop()
}

func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader shows the logo, the endpoint chips and the request status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)

	chips := make([]string, 0, len(endpointOrder))
	for _, e := range endpointOrder {
		chips = append(chips, styles.EndpointStyle(string(e), e == m.endpoint).Render(string(e)))
	}

	parts := []string{
		styles.Logo.Background(bg).Render("wolfy"),
		strings.Join(chips, " "),
		styles.FaintText.Background(bg).Render(m.endpoint.Path()),
	}
	if status := m.renderStatus(); status != "" {
		parts = append(parts, status)
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	if m.pending {
		return m.spinner.View() + " " + styles.WarningText.Render("querying "+truncate(m.pendingInput, 30))
	}
	latest, ok := m.snapshot.Latest()
	if !ok {
		return ""
	}
	elapsed := latest.Elapsed.Round(time.Millisecond).String()
	if latest.Failed() {
		return styles.DangerText.Render("failed") + " " + styles.MutedText.Render(elapsed)
	}
	return styles.SuccessText.Render("ok") + " " + styles.MutedText.Render(elapsed)
}

func (m Model) renderInput() string {
	styles := m.theme.Styles()
	return styles.Input.Width(m.width).Render(m.input.View())
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	summary := fmt.Sprintf("%d queries", len(m.snapshot.Entries))
	if m.snapshot.Failures > 0 {
		summary += fmt.Sprintf(", %d failed", m.snapshot.Failures)
	}
	return styles.Footer.Width(m.width).Render(
		m.help.ShortHelpView(m.keys.ShortHelp()) + "  " + summary + "  " + m.theme.Name,
	)
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Logo.Render("wolfy"))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("keys (any key to close)"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("themes: " + strings.Join(ThemeNames(), ", ")))
	return b.String()
}

// renderHistory lists completed queries newest first.
func (m Model) renderHistory() string {
	styles := m.theme.Styles()
	entries := m.snapshot.Entries
	if len(entries) == 0 {
		return styles.FaintText.Render("No queries yet. Type a question and press enter.")
	}

	blocks := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		blocks = append(blocks, m.renderEntry(entries[i]))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderEntry(e history.Entry) string {
	styles := m.theme.Styles()
	width := max(m.viewport.Width-2, 20)

	title := styles.EndpointColor(e.Endpoint).Render("["+e.Endpoint+"]") + " " +
		styles.Text.Bold(true).Render(e.Input) + " " +
		styles.FaintText.Render(e.Started.Format("15:04:05")+" "+e.Elapsed.Round(time.Millisecond).String())

	body := e.Answer
	bodyStyle := styles.Text
	if e.Failed() {
		body = e.Err.Error()
		bodyStyle = styles.DangerText
	}
	if strings.TrimSpace(body) == "" {
		body = "(empty answer)"
		bodyStyle = styles.FaintText
	}

	return title + "\n" + bodyStyle.Width(width).PaddingLeft(2).Render(body)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
