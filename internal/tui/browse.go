// Package tui implements the interactive inventory browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"serverbook/internal/domain"
	"serverbook/internal/registry"
	"serverbook/internal/tui/components"
	"serverbook/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---

type serversLoadedMsg struct {
	servers []domain.Server
}

type serverDetailMsg struct {
	server *domain.Server
}

type browseErrorMsg struct {
	err error
}

// --- Views ---

type browseView int

const (
	browseViewList browseView = iota
	browseViewDetail
)

// --- Model ---

// browseModel is a read-only two-level browser: a server table and a
// per-server detail view with the cost history.
type browseModel struct {
	registry *registry.Servers

	view    browseView
	servers []domain.Server
	cursor  int

	// detail is populated when entering the detail view; it carries the
	// full snapshot history, unlike the list rows.
	detail *domain.Server

	width  int
	height int

	loading bool
	spinner spinner.Model
	err     error
	status  string

	quitting bool
}

// RunBrowse starts the full-window inventory browser. It stays open until
// the user quits from the list view.
func RunBrowse(servers *registry.Servers) error {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	m := browseModel{
		registry: servers,
		view:     browseViewList,
		loading:  true,
		spinner:  s,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: browse: %w", err)
	}
	return nil
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchServers(),
	)
}

func (m browseModel) fetchServers() tea.Cmd {
	return func() tea.Msg {
		servers, err := m.registry.List(context.Background())
		if err != nil {
			return browseErrorMsg{err: err}
		}
		return serversLoadedMsg{servers: servers}
	}
}

func (m browseModel) fetchDetail(id int64) tea.Cmd {
	return func() tea.Msg {
		srv, err := m.registry.Get(context.Background(), id)
		if err != nil {
			return browseErrorMsg{err: err}
		}
		return serverDetailMsg{server: srv}
	}
}

// --- Update ---

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case serversLoadedMsg:
		m.loading = false
		m.servers = msg.servers
		m.err = nil
		if len(m.servers) == 0 {
			m.status = "No servers registered."
		} else {
			m.status = fmt.Sprintf("%d server(s)", len(m.servers))
		}
		return m, nil

	case serverDetailMsg:
		m.loading = false
		m.err = nil
		m.detail = msg.server
		m.view = browseViewDetail
		return m, nil

	case browseErrorMsg:
		m.loading = false
		m.err = msg.err
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// --- Key handling ---

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.view == browseViewDetail {
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "backspace":
			m.view = browseViewList
			m.detail = nil
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.servers)-1 {
			m.cursor++
		}

	case "g":
		m.cursor = 0

	case "G":
		if len(m.servers) > 0 {
			m.cursor = len(m.servers) - 1
		}

	case "enter":
		if len(m.servers) > 0 {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetchDetail(m.servers[m.cursor].ID))
		}

	case "r":
		m.loading = true
		m.err = nil
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.fetchServers())
	}

	return m, nil
}

// --- View ---

func (m browseModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	breadcrumb := "servers"
	right := ""
	if m.view == browseViewDetail && m.detail != nil {
		breadcrumb = "servers > " + m.detail.Name
		right = string(m.detail.Status)
	}
	header := components.Header(m.width, breadcrumb, right)

	var footerBindings []components.KeyBinding
	switch {
	case m.loading:
		footerBindings = []components.KeyBinding{
			{Key: "ctrl+c", Desc: "quit"},
		}
	case m.view == browseViewDetail:
		footerBindings = []components.KeyBinding{
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	default:
		footerBindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "details"},
			{Key: "r", Desc: "refresh"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := ""
	if m.err != nil {
		statusBar = components.StatusBar(m.width, "Error: "+m.err.Error(), true)
	} else if m.view == browseViewList && m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, false)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := m.height - headerH - footerH - statusH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m browseModel) renderContent(height int) string {
	if m.loading {
		loadingText := m.spinner.View() + "  Loading…"
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(loadingText),
		)
	}

	if m.err != nil {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.ErrorText.Render("Failed to load inventory"),
		)
	}

	if m.view == browseViewDetail && m.detail != nil {
		return m.renderDetail(height)
	}

	if len(m.servers) == 0 {
		empty := styles.MutedText.Render("No servers registered. Add one with ") +
			styles.KeyStyle.Render("serverbook server add") +
			styles.MutedText.Render(".")
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			empty,
		)
	}

	return m.renderTable(height)
}

func (m browseModel) renderTable(height int) string {
	type column struct {
		title string
		width int
	}

	available := m.width - 4 // 2 padding on each side

	cols := []column{
		{title: "NAME", width: 18},
		{title: "STATUS", width: 10},
		{title: "PURPOSE", width: 9},
		{title: "PROVIDER", width: 14},
		{title: "OWNER", width: 14},
		{title: "IP", width: 16},
		{title: "COST/MO", width: 9},
	}

	// Distribute remaining width to the NAME column.
	total := 0
	for _, c := range cols {
		total += c.width
	}
	if available > total {
		cols[0].width += available - total
	}

	headerCells := make([]string, len(cols))
	for i, col := range cols {
		headerCells[i] = styles.TableHeader.
			Width(col.width).
			Render(col.title)
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	sep := styles.MutedText.Render(strings.Repeat("─", available))

	visibleRows := height - 3 // header + sep + bottom padding
	if visibleRows < 1 {
		visibleRows = 1
	}

	// Scrolling: keep cursor visible.
	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := startIdx + visibleRows
	if endIdx > len(m.servers) {
		endIdx = len(m.servers)
		startIdx = endIdx - visibleRows
		if startIdx < 0 {
			startIdx = 0
		}
	}

	rows := make([]string, 0, visibleRows)
	for i := startIdx; i < endIdx; i++ {
		s := m.servers[i]
		isSelected := i == m.cursor

		cells := make([]string, 0, len(cols))
		for _, col := range cols {
			var value string
			switch col.title {
			case "NAME":
				value = truncate(s.Name, col.width-2)
			case "STATUS":
				if !isSelected {
					cells = append(cells, styles.StatusStyle(string(s.Status)).
						Width(col.width).
						Padding(0, 1).
						Render(string(s.Status)))
					continue
				}
				value = truncate(string(s.Status), col.width-2)
			case "PURPOSE":
				value = truncate(string(s.Purpose), col.width-2)
			case "PROVIDER":
				value = truncate(providerName(s), col.width-2)
			case "OWNER":
				value = truncate(ownerName(s), col.width-2)
			case "IP":
				value = truncate(s.IPPublic, col.width-2)
			case "COST/MO":
				value = truncate(latestCost(s), col.width-2)
			}

			cellStyle := styles.TableCell.Width(col.width)
			if isSelected {
				cellStyle = styles.TableSelectedRow.Width(col.width)
			}
			cells = append(cells, cellStyle.Render(value))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	for len(rows) < visibleRows {
		rows = append(rows, "")
	}

	table := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{headerRow, sep}, rows...)...,
	)

	return lipgloss.NewStyle().
		Padding(0, 2).
		Render(table)
}

func (m browseModel) renderDetail(height int) string {
	s := m.detail

	field := func(label, value string) string {
		if value == "" {
			value = styles.MutedText.Render("-")
		} else {
			value = styles.Value.Render(value)
		}
		return styles.Label.Render(fmt.Sprintf("%-14s", label)) + value
	}

	lines := []string{
		field("Hostname", s.Hostname),
		field("Status", ""),
		field("Purpose", string(s.Purpose)),
		field("Billing", string(s.BillingType)),
		field("Public IP", s.IPPublic),
		field("Private IP", s.IPPrivate),
		field("Provider", providerName(*s)),
		field("Owner", ownerName(*s)),
		field("OS", s.OS),
		field("CPU", s.CPU),
		field("RAM", s.RAM),
		field("Storage", s.Storage),
		field("Location", s.Location),
	}
	// Status renders with its color badge rather than the plain field value.
	lines[1] = styles.Label.Render(fmt.Sprintf("%-14s", "Status")) + styles.StatusIndicator(string(s.Status))

	if s.CostMonthEstimated != nil {
		lines = append(lines, field("Est. cost/mo", fmt.Sprintf("%.2f", *s.CostMonthEstimated)))
	}
	if s.DecommissionAt != nil {
		lines = append(lines, field("Decommission", s.DecommissionAt.Format("2006-01-02")))
	}
	if s.Description != "" {
		lines = append(lines, "", styles.MutedText.Render(s.Description))
	}

	chartWidth := m.width - 8
	chart := components.CostChart("Cost history", costSeries(s.CostSnapshots), chartWidth)

	body := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(lines, "\n"),
		"",
		chart,
	)

	return lipgloss.NewStyle().
		Padding(1, 4).
		Height(height).
		Render(body)
}

// --- Helpers ---

// costSeries flattens snapshots (stored newest first) into an oldest-first
// series for charting.
func costSeries(snapshots []domain.CostSnapshot) []float64 {
	data := make([]float64, 0, len(snapshots))
	for i := len(snapshots) - 1; i >= 0; i-- {
		data = append(data, snapshots[i].CostMonth)
	}
	return data
}

func providerName(s domain.Server) string {
	if s.Provider == nil {
		return ""
	}
	return s.Provider.Name
}

func ownerName(s domain.Server) string {
	if s.Owner == nil {
		return ""
	}
	return s.Owner.Name
}

// latestCost formats the server's most recent snapshot cost, falling back
// to the operator's estimate.
func latestCost(s domain.Server) string {
	if len(s.CostSnapshots) > 0 {
		return fmt.Sprintf("%.2f", s.CostSnapshots[0].CostMonth)
	}
	if s.CostMonthEstimated != nil {
		return fmt.Sprintf("~%.2f", *s.CostMonthEstimated)
	}
	return ""
}

// truncate shortens a string to fit the given width with an ellipsis.
func truncate(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if len(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return s[:maxWidth]
	}
	return s[:maxWidth-1] + "…"
}
