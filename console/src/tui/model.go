// Package tui is the interactive front end: a login screen followed by the
// product dashboard, both driven by the controllers package.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/narender/product-console/console/src/controllers"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/services"
	"github.com/narender/product-console/console/src/views"
	"github.com/samber/lo"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
)

type area int

const (
	areaList area = iota
	areaFilter
	areaForm
)

const dashboardHelp = "up/down: select  left/right: page  /: filter  n: new  e: edit  d: delete  c: clear filters  r: reload  q: quit"

// Model is the bubbletea model for the whole console.
type Model struct {
	ctx      context.Context
	auth     services.AuthService
	products services.ProductService
	logger   *slog.Logger
	styles   views.Styles

	login     *controllers.LoginForm
	dash      *controllers.Dashboard
	redirect  *redirectScheduler
	authorize func(token string) services.ProductService

	screen   screen
	area     area
	focus    int
	selected int

	loginInputs  []textinput.Model
	filterInputs []textinput.Model
	formInputs   []textinput.Model
}

// Options tunes a Model.
type Options struct {
	PageSize      int
	RedirectDelay time.Duration // 0 keeps the controller default
	SkipLogin     bool
	// Authorize, when set, builds the product client used after a login
	// that returned a token.
	Authorize func(token string) services.ProductService
	// OnRedirect runs when the dashboard takes over after a login.
	OnRedirect func()
}

func New(ctx context.Context, auth services.AuthService, products services.ProductService, logger *slog.Logger, opts Options) *Model {
	redirect := &redirectScheduler{}
	loginOpts := []controllers.LoginOption{controllers.WithScheduler(redirect.schedule)}
	if opts.RedirectDelay > 0 {
		loginOpts = append(loginOpts, controllers.WithRedirectDelay(opts.RedirectDelay))
	}
	if opts.OnRedirect != nil {
		loginOpts = append(loginOpts, controllers.WithOnRedirect(opts.OnRedirect))
	}

	m := &Model{
		ctx:          ctx,
		auth:         auth,
		products:     products,
		logger:       logger,
		styles:       views.DefaultStyles(),
		login:        controllers.NewLoginForm(auth, logger, loginOpts...),
		dash:         controllers.NewDashboard(products, logger, opts.PageSize),
		redirect:     redirect,
		authorize:    opts.Authorize,
		loginInputs:  newInputs("username", "password"),
		filterInputs: newInputs("name contains", "LAPTOP", "0", "999999999", "0", "99999"),
		formInputs:   newInputs("product name", "0", "0", string(models.DefaultCategory()), "optional"),
	}
	m.loginInputs[1].EchoMode = textinput.EchoPassword
	m.loginInputs[1].EchoCharacter = '*'
	m.syncFormInputs()

	if opts.SkipLogin {
		m.screen = screenDashboard
	}
	m.focusCurrent()
	return m
}

func newInputs(placeholders ...string) []textinput.Model {
	return lo.Map(placeholders, func(p string, _ int) textinput.Model {
		in := textinput.New()
		in.Placeholder = p
		in.Prompt = "> "
		in.CharLimit = 500
		in.Cursor.SetMode(cursor.CursorStatic)
		return in
	})
}

func (m *Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		return m.mount()
	}
	return nil
}

// mount is Dashboard.Mount split across a command.
func (m *Model) mount() tea.Cmd {
	m.dash.ResetFilters()
	m.dash.SelectPage(0)
	m.syncFilterInputs()
	return m.fetch()
}

func (m *Model) fetch() tea.Cmd {
	return fetchCmd(m.ctx, m.products, m.dash.BeginFetch())
}

func (m *Model) activeInputs() []textinput.Model {
	switch {
	case m.screen == screenLogin:
		return m.loginInputs
	case m.area == areaFilter:
		return m.filterInputs
	case m.area == areaForm:
		return m.formInputs
	}
	return nil
}

func (m *Model) focusCurrent() {
	blur := func(ins []textinput.Model) {
		for i := range ins {
			ins[i].Blur()
		}
	}
	blur(m.loginInputs)
	blur(m.filterInputs)
	blur(m.formInputs)

	ins := m.activeInputs()
	if len(ins) == 0 {
		return
	}
	m.focus = (m.focus + len(ins)) % len(ins)
	ins[m.focus].Focus()
}

func (m *Model) moveFocus(delta int) {
	m.focus += delta
	m.focusCurrent()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenLogin {
			return m, m.updateLogin(msg)
		}
		return m, m.updateDashboard(msg)

	case loginDoneMsg:
		m.login.CompleteSubmit(m.ctx, msg.resp, msg.err)
		return m, m.redirect.take()

	case redirectMsg:
		if msg.done != nil {
			msg.done()
		}
		if token := m.login.Token(); token != "" && m.authorize != nil {
			m.products = m.authorize(token)
			m.dash = controllers.NewDashboard(m.products, m.logger, m.dash.PageSize())
		}
		m.screen = screenDashboard
		m.area = areaList
		m.focusCurrent()
		return m, m.mount()

	case fetchDoneMsg:
		if m.dash.CompleteFetch(m.ctx, msg.token, msg.page, msg.err) {
			m.selected = min(m.selected, max(len(m.dash.Products())-1, 0))
		}
		return m, nil

	case saveDoneMsg:
		if !m.dash.CompleteSave(m.ctx, msg.req, msg.res, msg.err) {
			return m, nil
		}
		m.syncFormInputs()
		m.area = areaList
		m.focusCurrent()
		return m, m.fetch()

	case deleteDoneMsg:
		m.dash.CompleteDelete(m.ctx, msg.id, msg.err)
		return m, m.fetch()
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return nil
	case tea.KeyEnter:
		if m.focus == 0 {
			m.moveFocus(1)
			return nil
		}
		creds, ok := m.login.BeginSubmit()
		if !ok {
			return nil
		}
		return loginCmd(m.ctx, m.auth, creds)
	}

	cmd := m.updateInput(m.loginInputs, msg)
	if v := m.loginInputs[0].Value(); v != m.login.Username() {
		m.login.SetUsername(v)
	}
	if v := m.loginInputs[1].Value(); v != m.login.Password() {
		m.login.SetPassword(v)
	}
	return cmd
}

func (m *Model) updateInput(ins []textinput.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ins[m.focus], cmd = ins[m.focus].Update(msg)
	return cmd
}

func (m *Model) updateDashboard(msg tea.KeyMsg) tea.Cmd {
	switch m.area {
	case areaFilter:
		return m.updateFilter(msg)
	case areaForm:
		return m.updateForm(msg)
	}

	items := m.dash.Products()
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		m.selected = max(m.selected-1, 0)
	case "down", "j":
		m.selected = min(m.selected+1, max(len(items)-1, 0))
	case "right", "l":
		if m.dash.HasNext() && m.dash.SelectPage(m.dash.Page()+1) {
			m.selected = 0
			return m.fetch()
		}
	case "left", "h":
		if m.dash.HasPrev() && m.dash.SelectPage(m.dash.Page()-1) {
			m.selected = 0
			return m.fetch()
		}
	case "r":
		return m.fetch()
	case "c":
		m.dash.ResetFilters()
		m.syncFilterInputs()
		m.selected = 0
		return m.fetch()
	case "/":
		m.area, m.focus = areaFilter, 0
		m.focusCurrent()
		return nil
	case "n":
		m.dash.Cancel()
		m.syncFormInputs()
		m.area, m.focus = areaForm, 0
		m.focusCurrent()
		return nil
	case "e":
		if m.selected < len(items) {
			m.dash.Edit(items[m.selected])
			m.syncFormInputs()
			m.area, m.focus = areaForm, 0
			m.focusCurrent()
			return nil
		}
	case "d":
		if m.selected < len(items) {
			return deleteCmd(m.ctx, m.products, items[m.selected].ID)
		}
	}
	return nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.area = areaList
		m.focusCurrent()
		return nil
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return nil
	case tea.KeyEnter:
		m.dash.ApplyFilters()
		m.selected = 0
		m.area = areaList
		m.focusCurrent()
		return m.fetch()
	}

	cmd := m.updateInput(m.filterInputs, msg)
	m.dash.SetFilter(m.filterFromInputs())
	return cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.dash.Cancel()
		m.syncFormInputs()
		m.area = areaList
		m.focusCurrent()
		return nil
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return nil
	case tea.KeyCtrlS, tea.KeyEnter:
		if msg.Type == tea.KeyEnter && m.focus < len(m.formInputs)-1 {
			m.moveFocus(1)
			return nil
		}
		req, ok := m.dash.BeginSave()
		if !ok {
			return nil
		}
		return saveCmd(m.ctx, m.products, req)
	}

	cmd := m.updateInput(m.formInputs, msg)
	m.dash.SetField(views.FormFieldKeys()[m.focus], m.formInputs[m.focus].Value())
	return cmd
}

func (m *Model) filterFromInputs() models.Filter {
	v := lo.Map(m.filterInputs, func(in textinput.Model, _ int) string { return in.Value() })
	return models.Filter{
		Search:   v[0],
		Category: v[1],
		PriceMin: v[2],
		PriceMax: v[3],
		QtyMin:   v[4],
		QtyMax:   v[5],
	}
}

func (m *Model) syncFilterInputs() {
	f := m.dash.Filter()
	for i, v := range []string{f.Search, f.Category, f.PriceMin, f.PriceMax, f.QtyMin, f.QtyMax} {
		m.filterInputs[i].SetValue(v)
	}
}

func (m *Model) syncFormInputs() {
	d := m.dash.Draft()
	for i, v := range []string{d.Name, d.Price, d.Quantity, d.Category, d.Description} {
		m.formInputs[i].SetValue(v)
	}
}

func (m *Model) View() string {
	if m.screen == screenLogin {
		return m.styles.RenderLogin(views.LoginView{
			Username: m.loginInputs[0].View(),
			Password: m.loginInputs[1].View(),
			Errors:   m.login.Errors(),
			Success:  m.login.SuccessMessage(),
			Loading:  m.login.Loading(),
		})
	}

	render := func(ins []textinput.Model) []string {
		return lo.Map(ins, func(in textinput.Model, _ int) string { return in.View() })
	}
	form := views.FormView{
		Inputs:  render(m.formInputs),
		Errors:  m.dash.FormErrors(),
		Editing: m.dash.IsEditing(),
	}
	if t := m.dash.EditTarget(); t != nil {
		form.EditID = t.ID
	}
	return m.styles.RenderDashboard(views.DashboardView{
		Filters:       views.FilterView{Inputs: render(m.filterInputs), Applied: m.dash.AppliedFilter()},
		Products:      m.dash.Products(),
		Selected:      lo.Ternary(m.area == areaList, m.selected, -1),
		Loading:       m.dash.Loading(),
		Page:          m.dash.Page(),
		TotalPages:    m.dash.TotalPages(),
		TotalElements: m.dash.TotalElements(),
		Form:          form,
		ShowForm:      m.area == areaForm,
		ServerMessage: m.dash.ServerMessage(),
		Help:          dashboardHelp + "  (" + strconv.Itoa(m.dash.PageSize()) + " per page)",
	})
}

// Run starts the program on the terminal and blocks until it exits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}
