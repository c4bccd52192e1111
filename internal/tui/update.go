package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/existflow/leadboard/internal/logger"
	"github.com/existflow/leadboard/internal/model"
	"github.com/existflow/leadboard/internal/view"
)

// toastDuration is how long a toast stays up before auto-dismissing
const toastDuration = 4 * time.Second

// leadsMsg carries a completed list fetch
type leadsMsg struct {
	seq   int
	leads []model.Lead
}

// fetchErrMsg carries a failed list fetch
type fetchErrMsg struct {
	seq int
	err error
}

// createdMsg signals a successful lead creation
type createdMsg struct {
	lead model.Lead
}

// createErrMsg signals a failed lead creation
type createErrMsg struct {
	err error
}

// toastExpireMsg auto-dismisses a toast
type toastExpireMsg struct {
	seq int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// fetchLeads starts the single list fetch for the current view. The
// sequence number is captured now so a result arriving after the view
// moved on is thrown away instead of applied.
func (m *Model) fetchLeads() tea.Cmd {
	seq := m.fetchSeq
	svc := m.svc
	return func() tea.Msg {
		leads, err := svc.GetAll(context.Background(), "")
		if err != nil {
			return fetchErrMsg{seq: seq, err: err}
		}
		return leadsMsg{seq: seq, leads: leads}
	}
}

// createLead submits the compose form
func (m *Model) createLead(lead model.Lead) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		created, err := svc.Create(context.Background(), lead)
		if err != nil {
			return createErrMsg{err: err}
		}
		return createdMsg{lead: created}
	}
}

// showToast displays a transient message and schedules its dismissal
func (m *Model) showToast(msg string, kind toastKind) tea.Cmd {
	m.toast = msg
	m.toastKind = kind
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

func (m *Model) dismissToast() {
	m.toast = ""
}

// enterLeads switches to the leads screen and triggers the mount fetch.
// Re-entering while a fetch is already running must not start another.
func (m *Model) enterLeads() tea.Cmd {
	m.screen = ScreenLeads
	m.mode = ModeNormal
	if m.fetchStarted {
		return nil
	}
	m.fetchStarted = true
	m.loading = true
	m.fetchSeq++
	return m.fetchLeads()
}

// leaveLeads returns to the login screen, invalidating any in-flight fetch
func (m *Model) leaveLeads() {
	m.fetchSeq++
	m.fetchStarted = false
	m.loading = false
	m.leads = nil
	m.filter = view.NewFilterState()
	m.searchInput.SetValue("")
	m.cursor = 0
	m.screen = ScreenLogin
	m.resetLogin()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case leadsMsg:
		if msg.seq != m.fetchSeq {
			logger.Debug("Discarding stale fetch result", logger.F("seq", msg.seq))
			return m, nil
		}
		m.loading = false
		m.leads = msg.leads
		m.clampCursor()
		return m, nil

	case fetchErrMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		logger.Error("Error fetching leads", logger.F("error", msg.err))
		return m, m.showToast(msg.err.Error(), toastError)

	case createdMsg:
		m.submitting = false
		m.mode = ModeNormal
		m.resetForm()
		// Re-fetch so the list reflects the backend's view of the record
		m.loading = true
		m.fetchSeq++
		logger.Info("Lead created", logger.F("name", msg.lead.Name))
		return m, tea.Batch(
			m.showToast("Lead created successfully!", toastSuccess),
			m.fetchLeads(),
		)

	case createErrMsg:
		// The modal stays open with its values so nothing typed is lost
		m.submitting = false
		logger.Error("Error creating lead", logger.F("error", msg.err))
		return m, m.showToast("Failed to create lead", toastError)

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.dismissToast()
		}
		return m, nil

	case tea.KeyMsg:
		if m.screen == ScreenLogin {
			return m.updateLogin(msg)
		}
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeCreate:
			return m.updateCreate(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// updateLogin handles the login screen
func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Down), key.Matches(msg, keys.Up):
		m.loginInputs[m.loginFocus].Blur()
		m.loginFocus = (m.loginFocus + 1) % loginFieldCount
		m.loginInputs[m.loginFocus].Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if m.loginFocus == loginFieldUsername {
			m.loginInputs[m.loginFocus].Blur()
			m.loginFocus = loginFieldPassword
			m.loginInputs[m.loginFocus].Focus()
			return m, textinput.Blink
		}

		username := m.loginInputs[loginFieldUsername].Value()
		password := m.loginInputs[loginFieldPassword].Value()
		if username == "" || password == "" {
			return m, m.showToast("Please enter both username and password", toastError)
		}
		if !m.gate.Login(username, password) {
			return m, m.showToast("Invalid username or password", toastError)
		}
		m.dismissToast()
		return m, m.enterLeads()

	case key.Matches(msg, keys.Escape):
		m.dismissToast()
		return m, nil
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

// handleNormalKeys handles key presses on the leads screen in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.visibleLeads())-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.filter.Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Status):
		m.filter.CycleStatus()
		m.clampCursor()

	case msg.String() == "1":
		m.filter.ToggleSort(view.ColumnName)
	case msg.String() == "2":
		m.filter.ToggleSort(view.ColumnCompany)
	case msg.String() == "3":
		m.filter.ToggleSort(view.ColumnEmail)
	case msg.String() == "4":
		m.filter.ToggleSort(view.ColumnStatus)

	case key.Matches(msg, keys.Add):
		m.mode = ModeCreate
		return m, textinput.Blink

	case key.Matches(msg, keys.Refresh):
		if !m.loading {
			m.loading = true
			m.fetchSeq++
			return m, m.fetchLeads()
		}

	case key.Matches(msg, keys.Escape):
		if m.toast != "" {
			m.dismissToast()
		} else if m.filter.Search != "" {
			m.filter.Search = ""
			m.searchInput.SetValue("")
			m.clampCursor()
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Logout):
		m.gate.Logout()
		m.leaveLeads()
	}

	return m, nil
}

// updateSearch handles the live search box
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.Search = ""
		m.clampCursor()
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Search = m.searchInput.Value()
	m.clampCursor()
	return m, cmd
}

// updateCreate handles the add-lead modal
func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.resetForm()
		return m, nil

	case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Down):
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % formFieldCount
		m.formInputs[m.formFocus].Focus()
		return m, textinput.Blink

	case msg.String() == "shift+tab", key.Matches(msg, keys.Up):
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + formFieldCount - 1) % formFieldCount
		m.formInputs[m.formFocus].Focus()
		return m, textinput.Blink

	case msg.String() == "ctrl+t":
		if m.formStatus == model.StatusActive {
			m.formStatus = model.StatusInactive
		} else {
			m.formStatus = model.StatusActive
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		name := m.formInputs[formFieldName].Value()
		company := m.formInputs[formFieldCompany].Value()
		email := m.formInputs[formFieldEmail].Value()
		if name == "" || company == "" || email == "" {
			return m, m.showToast("Name, company, and email are required", toastError)
		}
		m.submitting = true
		return m, m.createLead(model.NewLead(name, company, email, m.formStatus))
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}
