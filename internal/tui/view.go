package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/leadboard/internal/model"
	"github.com/existflow/leadboard/internal/view"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.screen == ScreenLogin {
		return m.renderLogin()
	}

	content := m.renderLeads()

	if m.mode == ModeCreate {
		content = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderCreateModal(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		content = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

func (m Model) renderLogin() string {
	var s string
	s += TitleStyle.Render("DASHBOARD") + AccentStyle.Render("LOGIN") + "\n\n"
	s += lipgloss.NewStyle().Bold(true).Render("Welcome Back") + "\n"
	s += HelpStyle.Render("Please sign in to your account") + "\n\n"

	s += "Username\n" + m.loginInputs[loginFieldUsername].View() + "\n\n"
	s += "Password\n" + m.loginInputs[loginFieldPassword].View() + "\n\n"

	s += HelpStyle.Render("Enter:sign in  Tab:switch field  q:quit") + "\n"

	if m.toast != "" {
		s += "\n" + toastStyle(m.toastKind).Render(m.toast) + "\n"
	}

	box := ModalStyle.Render(s)
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderLeads() string {
	var s string

	s += TitleStyle.Render("Leads") + "\n"
	s += HelpStyle.Render("View and manage leads") + "\n\n"

	// Search / filter line
	if m.mode == ModeSearch {
		s += "/" + m.searchInput.View() + "\n"
	} else if m.filter.Search != "" {
		s += HelpStyle.Render(fmt.Sprintf("search: %q", m.filter.Search)) + "\n"
	}
	s += HelpStyle.Render("status: "+string(m.filter.Status)) + "\n\n"

	if m.loading {
		s += "\n  Loading...\n"
		return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height - 2).Render(s)
	}

	leads := m.visibleLeads()

	nameW, companyW, emailW := m.columnWidths()
	header := fmt.Sprintf("   %-*s %-*s %-*s %s",
		nameW, "NAME"+m.sortMarker(view.ColumnName),
		companyW, "COMPANY"+m.sortMarker(view.ColumnCompany),
		emailW, "EMAIL"+m.sortMarker(view.ColumnEmail),
		"STATUS"+m.sortMarker(view.ColumnStatus))
	s += HeaderRowStyle.Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", minInt(m.width-4, nameW+companyW+emailW+14))) + "\n"

	if len(leads) == 0 {
		s += HelpStyle.Render("  No leads found. Press 'a' to add one.") + "\n"
	}

	for i, l := range leads {
		cursor := "  "
		style := RowStyle
		if i == m.cursor {
			cursor = "❯ "
			style = RowSelectedStyle
		}

		badge := statusStyle(l.Status == model.StatusActive).Render(string(l.Status))
		line := fmt.Sprintf("%s %-*s %-*s %-*s ",
			cursor,
			nameW, truncate(l.Name, nameW),
			companyW, truncate(l.Company, companyW),
			emailW, truncate(l.Email, emailW))
		s += style.Render(line) + badge + "\n"
	}

	s += "\n" + HelpStyle.Render(fmt.Sprintf("%d of %d leads", len(leads), len(m.leads)))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height - 2).Render(s)
}

// sortMarker renders the header arrow for the active sort column
func (m Model) sortMarker(col view.Column) string {
	if m.filter.SortColumn != col {
		return ""
	}
	if m.filter.SortDirection == view.Asc {
		return " ▲"
	}
	return " ▼"
}

func (m Model) columnWidths() (name, company, email int) {
	avail := m.width - 24
	if avail < 48 {
		avail = 48
	}
	name = avail * 3 / 10
	company = avail * 3 / 10
	email = avail * 4 / 10
	return
}

func (m Model) renderStatusBar() string {
	if m.toast != "" {
		return StatusBarStyle.Width(m.width).Render(toastStyle(m.toastKind).Render(m.toast) + HelpStyle.Render("  (esc to dismiss)"))
	}

	help := "/:search  s:status  1-4:sort  a:add  r:refresh  ?:help  L:logout  q:quit"
	if m.mode == ModeSearch {
		help = "type to search  Enter:accept  Esc:clear"
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderCreateModal() string {
	title := "Add Lead"
	content := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(title) + "\n\n"

	labels := [...]string{"Name", "Company", "Email"}
	for i := range m.formInputs {
		content += labels[i] + "\n" + m.formInputs[i].View() + "\n\n"
	}

	content += "Status: " + statusStyle(m.formStatus == model.StatusActive).Render(string(m.formStatus)) + "\n\n"

	if m.submitting {
		content += HelpStyle.Render("Creating...") + "\n"
	} else {
		content += HelpStyle.Render("Enter:create  Tab:next field  Ctrl+T:toggle status  Esc:cancel")
	}

	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓     Move down         │
│  k/↑     Move up           │
│                            │
│  Table                     │
│  ─────                     │
│  /       Search            │
│  s       Cycle status      │
│  1       Sort by name      │
│  2       Sort by company   │
│  3       Sort by email     │
│  4       Sort by status    │
│                            │
│  Actions                   │
│  ───────                   │
│  a       Add lead          │
│  r       Refresh           │
│  L       Logout            │
│  q       Quit              │
│                            │
╰────────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
