// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// signupModel holds the three inputs of the account-creation form. Both
// password fields use masked echo.
type signupModel struct {
	inputs []textinput.Model
	focus  int
}

func newSignupModel() signupModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return signupModel{inputs: []textinput.Model{emailInput, passwordInput, confirmInput}}
}

func (m signupModel) email() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m signupModel) password() string {
	return m.inputs[1].Value()
}

func (m signupModel) confirmation() string {
	return m.inputs[2].Value()
}

func (m signupModel) view(statusText string) string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat    │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("\n[Create account]\n")

	if statusText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(statusText))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit")
}

func focusNextSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
