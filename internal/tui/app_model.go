// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jfarabee/signon/internal/service"
)

// appModel is the root Bubble Tea model. It pumps coordinator events into
// the message loop via waitForEvent, folds them into the ViewState
// projection, and routes key input to the screen the projection says is
// active. All submissions go through the coordinator; the model itself never
// validates or classifies anything.
type appModel struct {
	ctx         context.Context
	coordinator *service.Coordinator

	state  ViewState
	login  loginModel
	signup signupModel

	// status is the transient clipboard feedback line on the account screen.
	status string
}

func newAppModel(ctx context.Context, coordinator *service.Coordinator) appModel {
	return appModel{
		ctx:         ctx,
		coordinator: coordinator,
		state:       NewViewState(),
		login:       newLoginModel(),
		signup:      newSignupModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coordinatorEvent:
		m.state = m.state.Apply(msg.ev)
		return m, m.waitForEvent()
	case eventsClosed:
		return m, tea.Quit
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.state.Active {
	case ViewLogin:
		return m.updateLogin(msg)
	case ViewCreateAccount:
		return m.updateSignup(msg)
	case ViewAccountViewer:
		return m.updateAccount(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.state.Active {
	case ViewLogin:
		body = m.login.view(m.state.LoginError)
	case ViewCreateAccount:
		body = m.signup.view(m.state.SignupError)
	case ViewAccountViewer:
		body = m.accountView()
	}

	return appStyle.Render(body)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.signup):
			m.state = m.state.ShowSignup()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.coordinator.Login(m.ctx, m.login.email(), m.login.password())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.state = m.state.ShowLogin()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signup = focusNextSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signup = focusPrevSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.coordinator.CreateAccount(m.ctx, m.signup.email(), m.signup.password(), m.signup.confirmation())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quitKey):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.status = ""
		m.coordinator.LogOut(m.ctx)
		return m, nil
	case key.Matches(keyMsg, keys.copyID):
		sess, ok := m.coordinator.Session()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(sess.UserID)
	}

	return m, nil
}

func (m appModel) accountView() string {
	var b strings.Builder
	b.WriteString(m.state.AccountInfo)

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"l: log out │ c: copy user id │ q: quit")
}

// waitForEvent blocks on the coordinator channel and re-arms itself after
// every delivered event.
func (m appModel) waitForEvent() tea.Cmd {
	events := m.coordinator.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosed{}
		}
		return coordinatorEvent{ev: ev}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
