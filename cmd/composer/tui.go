package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/messagekit/composer/composer"
	"github.com/messagekit/composer/session"
)

type keyMap struct {
	Submit key.Binding
	Attach key.Binding
	Detach key.Binding
	Flaky  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Attach: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "attach")),
		Detach: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "detach")),
		Flaky:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "toggle failure")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// stateMsg carries a session notification into the bubbletea loop.
type stateMsg session.State

// submitDoneMsg signals that a Submit call settled (success or failure).
type submitDoneMsg struct{}

type model struct {
	ctx        context.Context
	comp       *composer.Composer
	variant    string
	transcript *transcript

	input   textarea.Model
	keys    keyMap
	updates chan session.State
	state   session.State
	status  string

	attachSeq int
	width     int
	height    int
}

func newModel(ctx context.Context, comp *composer.Composer, variant string, tr *transcript) model {
	input := textarea.New()
	input.Placeholder = "Write a message..."
	input.SetHeight(3)
	input.Focus()

	sess := comp.Session()
	if content := sess.Snapshot().Content; content != "" {
		input.SetValue(content)
	}

	// Whole-state subscription feeding the update loop. The channel is
	// buffered and lossy; the TUI only needs the latest state.
	updates := make(chan session.State, 16)
	sess.Subscribe(nil, func(st session.State) {
		select {
		case updates <- st:
		default:
		}
	})

	return model{
		ctx:        ctx,
		comp:       comp,
		variant:    variant,
		transcript: tr,
		input:      input,
		keys:       defaultKeyMap(),
		updates:    updates,
		state:      sess.Snapshot(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForState())
}

func (m model) waitForState() tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-m.updates)
	}
}

func (m model) submit() tea.Cmd {
	return func() tea.Msg {
		m.comp.Submit(m.ctx, nil)
		return submitDoneMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case stateMsg:
		m.state = session.State(msg)
		return m, m.waitForState()

	case submitDoneMsg:
		if m.comp.Session().Snapshot().Content == "" {
			m.input.Reset()
			m.status = "delivered"
		} else {
			m.status = "delivery failed, draft kept"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			if m.state.Submitting {
				return m, nil // control disabled while in flight
			}
			m.status = "sending..."
			return m, m.submit()

		case key.Matches(msg, m.keys.Attach):
			m.attachSeq++
			m.comp.Session().AddAttachment(session.Attachment{
				ID:        session.NewAttachmentID(),
				Name:      fmt.Sprintf("screenshot-%d.png", m.attachSeq),
				MediaType: "image/png",
			})
			return m, nil

		case key.Matches(msg, m.keys.Detach):
			atts := m.state.Attachments
			if len(atts) > 0 {
				m.comp.Session().RemoveAttachment(atts[len(atts)-1].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Flaky):
			if m.transcript.toggleFailure() {
				m.status = "backend set to fail"
			} else {
				m.status = "backend healthy"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Mirror the textarea into the session so subscribers and the submit
	// snapshot see the live draft.
	if m.input.Value() != m.state.Content {
		m.comp.Session().UpdateContent(m.input.Value())
	}
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.headerLine()) + "\n\n")

	for _, line := range m.transcript.lines() {
		b.WriteString(transcriptStyle.Render(line) + "\n")
	}
	if len(m.transcript.lines()) == 0 {
		b.WriteString(mutedStyle.Render("(no messages yet)") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(inputStyle.Render(m.input.View()) + "\n")

	if len(m.state.Attachments) > 0 {
		names := make([]string, len(m.state.Attachments))
		for i, a := range m.state.Attachments {
			names[i] = a.Name
		}
		b.WriteString(attachmentStyle.Render("attached: "+strings.Join(names, ", ")) + "\n")
	}

	b.WriteString(m.statusLine() + "\n")
	b.WriteString(helpStyle.Render("ctrl+s send · ctrl+a attach · ctrl+x detach · ctrl+f toggle failure · esc quit"))

	return b.String()
}

func (m model) headerLine() string {
	switch m.variant {
	case "thread":
		return "Composer — thread reply"
	case "edit":
		return "Composer — editing message"
	default:
		return "Composer — new channel message"
	}
}

func (m model) statusLine() string {
	if m.state.Submitting {
		return busyStyle.Render("● sending...")
	}
	switch {
	case m.status == "delivered":
		return okStyle.Render("✓ " + m.status)
	case strings.HasPrefix(m.status, "delivery failed"):
		return errStyle.Render("✗ " + m.status)
	case m.transcript.failing():
		return errStyle.Render("backend set to fail (ctrl+f to heal)")
	case m.status != "":
		return mutedStyle.Render(m.status)
	default:
		return ""
	}
}
