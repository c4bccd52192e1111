package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/existflow/leadboard/internal/api"
	"github.com/existflow/leadboard/internal/auth"
	"github.com/existflow/leadboard/internal/logger"
	"github.com/existflow/leadboard/internal/model"
	"github.com/existflow/leadboard/internal/view"
)

// Screen represents which page is shown
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenLeads
)

// Mode represents the current UI mode on the leads screen
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeCreate
	ModeHelp
)

// toastKind selects the toast styling
type toastKind int

const (
	toastError toastKind = iota
	toastSuccess
	toastInfo
)

// login form fields
const (
	loginFieldUsername = iota
	loginFieldPassword
	loginFieldCount
)

// create form fields
const (
	formFieldName = iota
	formFieldCompany
	formFieldEmail
	formFieldCount
)

// Model is the main TUI model
type Model struct {
	gate *auth.Gate
	svc  *api.Service

	screen Screen
	mode   Mode

	width  int
	height int

	// Held lead list and the view state derived from it
	leads  []model.Lead
	filter view.FilterState
	cursor int

	// Fetch lifecycle. fetchStarted guards against a duplicate
	// fetch-on-mount; fetchSeq discards results of superseded fetches.
	loading      bool
	fetchStarted bool
	fetchSeq     int

	// Login form
	loginInputs [loginFieldCount]textinput.Model
	loginFocus  int

	// Search box
	searchInput textinput.Model

	// Create form (modal)
	formInputs [formFieldCount]textinput.Model
	formFocus  int
	formStatus model.Status
	submitting bool

	// Toast notification
	toast     string
	toastKind toastKind
	toastSeq  int
}

// NewModel creates the TUI model starting at the login screen
func NewModel(gate *auth.Gate, svc *api.Service) Model {
	logger.Info("Initializing TUI model")

	m := Model{
		gate:       gate,
		svc:        svc,
		screen:     ScreenLogin,
		filter:     view.NewFilterState(),
		formStatus: model.StatusInactive,
	}

	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()
	m.loginInputs[loginFieldUsername] = username

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.loginInputs[loginFieldPassword] = password

	search := textinput.New()
	search.Placeholder = "Search by name, company, or email..."
	search.CharLimit = 128
	search.Width = 40
	m.searchInput = search

	for i, placeholder := range [...]string{"Name", "Company", "Email"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 128
		ti.Width = 36
		m.formInputs[i] = ti
	}
	m.formInputs[formFieldName].Focus()

	return m
}

// visibleLeads runs the query engine over the held list
func (m *Model) visibleLeads() []model.Lead {
	return view.Compute(m.leads, m.filter)
}

// clampCursor keeps the cursor inside the current view list
func (m *Model) clampCursor() {
	n := len(m.visibleLeads())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) resetForm() {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
		m.formInputs[i].Blur()
	}
	m.formInputs[formFieldName].Focus()
	m.formFocus = formFieldName
	m.formStatus = model.StatusInactive
}

func (m *Model) resetLogin() {
	for i := range m.loginInputs {
		m.loginInputs[i].SetValue("")
		m.loginInputs[i].Blur()
	}
	m.loginInputs[loginFieldUsername].Focus()
	m.loginFocus = loginFieldUsername
}
