package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/narender/product-console/console/src/controllers"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/services"
)

type loginDoneMsg struct {
	resp *models.LoginResponse
	err  error
}

// redirectMsg fires when the post-login delay is over. done is the login
// form's redirect callback.
type redirectMsg struct{ done func() }

type fetchDoneMsg struct {
	token uint64
	page  models.ProductPage
	err   error
}

type saveDoneMsg struct {
	req controllers.SaveRequest
	res models.MutationResult
	err error
}

type deleteDoneMsg struct {
	id  int64
	err error
}

func loginCmd(ctx context.Context, auth services.AuthService, creds models.Credentials) tea.Cmd {
	return func() tea.Msg {
		resp, err := auth.Login(ctx, creds)
		return loginDoneMsg{resp: resp, err: err}
	}
}

func fetchCmd(ctx context.Context, products services.ProductService, req controllers.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := products.List(ctx, req.Query)
		return fetchDoneMsg{token: req.Token, page: page, err: err}
	}
}

func saveCmd(ctx context.Context, products services.ProductService, req controllers.SaveRequest) tea.Cmd {
	return func() tea.Msg {
		var (
			res models.MutationResult
			err error
		)
		if req.IsUpdate() {
			res, err = products.Update(ctx, req.ID, req.Product)
		} else {
			res, err = products.Create(ctx, req.Product)
		}
		return saveDoneMsg{req: req, res: res, err: err}
	}
}

func deleteCmd(ctx context.Context, products services.ProductService, id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: products.Delete(ctx, id)}
	}
}

// redirectScheduler turns the login form's scheduled redirect into a tea
// tick. The form calls schedule synchronously inside CompleteSubmit, so the
// pending delay is read right after.
type redirectScheduler struct {
	pending *time.Duration
	done    func()
}

func (r *redirectScheduler) schedule(d time.Duration, fn func()) {
	r.pending = &d
	r.done = fn
}

func (r *redirectScheduler) take() tea.Cmd {
	if r.pending == nil {
		return nil
	}
	d, done := *r.pending, r.done
	r.pending, r.done = nil, nil
	return tea.Tick(d, func(time.Time) tea.Msg { return redirectMsg{done: done} })
}
