package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	statusview "github.com/bnema/lazorkit-wallet-cli/internal/adapters/render/status"
	"github.com/bnema/lazorkit-wallet-cli/internal/application"
	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultRefreshEvery = time.Second
	copyFeedbackFor     = 2 * time.Second
	copiedMessage       = "Copied to clipboard!"
)

// Controller is the wallet behavior the screen drives.
type Controller interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Send(ctx context.Context, req domain.TransferRequest) domain.TransferResult
	View() application.DashboardView
}

type Options struct {
	FaucetURL    string
	Prompt       *Prompt
	RefreshEvery time.Duration
	Now          func() time.Time
}

type (
	refreshTickMsg struct{}
	viewMsg        struct{ view application.DashboardView }
	connectDoneMsg struct{ err error }
	disconnectMsg  struct{ err error }
	sendDoneMsg    struct{ result domain.TransferResult }
	flashDoneMsg   struct{ id int }
)

const (
	focusRecipient = iota
	focusAmount
)

// Model is the interactive wallet screen.
type Model struct {
	ctx       context.Context
	ctrl      Controller
	clipboard ports.Clipboard
	opts      Options

	view      application.DashboardView
	recipient textinput.Model
	amount    textinput.Model
	focus     int
	spinner   spinner.Model
	busy      string
	notice    string
	flash     string
	flashID   int
}

func New(ctx context.Context, ctrl Controller, clipboard ports.Clipboard, opts Options) Model {
	if opts.RefreshEvery <= 0 {
		opts.RefreshEvery = defaultRefreshEvery
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	recipient := textinput.New()
	recipient.Placeholder = "Recipient address"
	recipient.CharLimit = 64
	recipient.Width = 48

	amount := textinput.New()
	amount.Placeholder = "Amount (SOL)"
	amount.CharLimit = 20
	amount.Width = 20

	return Model{
		ctx:       ctx,
		ctrl:      ctrl,
		clipboard: clipboard,
		opts:      opts,
		view:      ctrl.View(),
		recipient: recipient,
		amount:    amount,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.tick(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case refreshTickMsg:
		return m, tea.Batch(m.refresh(), m.tick())
	case viewMsg:
		m.applyView(msg.view)
		return m, nil
	case connectDoneMsg:
		m.busy = ""
		m.opts.Prompt.Clear()
		if msg.err != nil {
			m.notice = msg.err.Error()
		}
		return m, m.refresh()
	case disconnectMsg:
		m.busy = ""
		m.recipient.Reset()
		m.amount.Reset()
		if msg.err != nil {
			m.notice = msg.err.Error()
		}
		return m, m.refresh()
	case sendDoneMsg:
		m.busy = ""
		m.opts.Prompt.Clear()
		if msg.result.OK() {
			m.recipient.Reset()
			m.amount.Reset()
		}
		return m, m.refresh()
	case flashDoneMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.busy != "" {
		return m, nil
	}

	connected := m.view.Session.Phase == domain.PhaseConnected
	if !connected {
		switch key {
		case "q", "esc":
			return m, tea.Quit
		case "enter", "c":
			return m.startConnect()
		}
		return m, nil
	}

	switch key {
	case "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		return m.toggleFocus(), textinput.Blink
	case "enter":
		return m.startSend()
	case "ctrl+y":
		return m.copyAddress()
	case "ctrl+d":
		m.busy = "Disconnecting..."
		return m, m.disconnect()
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusRecipient {
		m.recipient, cmd = m.recipient.Update(msg)
	} else {
		m.amount, cmd = m.amount.Update(msg)
	}
	return m, cmd
}

func (m *Model) applyView(view application.DashboardView) {
	wasConnected := m.view.Session.Phase == domain.PhaseConnected
	m.view = view

	connected := view.Session.Phase == domain.PhaseConnected
	switch {
	case connected && !wasConnected:
		m.notice = ""
		m.focus = focusRecipient
		m.amount.Blur()
		m.recipient.Focus()
	case !connected && wasConnected:
		m.recipient.Blur()
		m.amount.Blur()
	}
}

func (m Model) toggleFocus() Model {
	if m.focus == focusRecipient {
		m.focus = focusAmount
		m.recipient.Blur()
		m.amount.Focus()
	} else {
		m.focus = focusRecipient
		m.amount.Blur()
		m.recipient.Focus()
	}
	return m
}

func (m Model) startConnect() (tea.Model, tea.Cmd) {
	m.busy = "Connecting... approve the passkey in your browser"
	m.notice = ""
	ctx, ctrl := m.ctx, m.ctrl

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return connectDoneMsg{err: ctrl.Connect(ctx)}
	})
}

func (m Model) startSend() (tea.Model, tea.Cmd) {
	req, err := parseForm(m.recipient.Value(), m.amount.Value())
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.busy = "Sending... approve the transaction with your passkey"
	m.notice = ""
	ctx, ctrl := m.ctx, m.ctrl

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return sendDoneMsg{result: ctrl.Send(ctx, req)}
	})
}

func (m Model) copyAddress() (tea.Model, tea.Cmd) {
	address := m.view.Session.Address
	if address.IsZero() || m.clipboard == nil {
		return m, nil
	}
	if err := m.clipboard.WriteAll(address.String()); err != nil {
		m.notice = "copy address: " + err.Error()
		return m, nil
	}

	m.flashID++
	m.flash = copiedMessage
	id := m.flashID

	return m, tea.Tick(copyFeedbackFor, func(time.Time) tea.Msg {
		return flashDoneMsg{id: id}
	})
}

func (m Model) disconnect() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return disconnectMsg{err: ctrl.Disconnect(ctx)}
	}
}

func (m Model) refresh() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return viewMsg{view: ctrl.View()}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.RefreshEvery, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m Model) View() string {
	s := newStyles()
	view := m.view

	status := statusview.WalletStatus{
		Address:      view.Session.Address,
		Connected:    view.Session.Phase == domain.PhaseConnected,
		Network:      view.Network,
		Native:       view.Balance,
		LastTransfer: view.LastTransfer,
	}

	lines := []string{statusview.View(status, statusview.RenderOptions{Now: m.opts.Now(), FaucetURL: m.opts.FaucetURL})}

	if status.Connected {
		lines = append(lines,
			"",
			s.label.Render("Send SOL"),
			m.recipient.View(),
			m.amount.View(),
		)
	} else if view.Session.Phase == domain.PhaseErrored && view.Session.Err != nil {
		lines = append(lines, "", s.errorText.Render("Connection failed: "+view.Session.Err.Error()))
	}

	if m.notice != "" {
		lines = append(lines, "", s.errorText.Render(m.notice))
	}
	if m.flash != "" {
		lines = append(lines, "", s.flash.Render(m.flash))
	}
	if m.busy != "" {
		lines = append(lines, "", m.spinner.View()+" "+m.busy)
		if link := m.opts.Prompt.Current(); link != "" {
			lines = append(lines, s.help.Render("Open this link to approve with your passkey:"), s.link.Render(link))
		}
	}

	lines = append(lines, "", s.help.Render(helpLine(status.Connected)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func helpLine(connected bool) string {
	if !connected {
		return "enter/c connect with passkey • q quit"
	}
	return "tab switch field • enter send • ctrl+y copy address • ctrl+d disconnect • esc quit"
}

func parseForm(recipient, amount string) (domain.TransferRequest, error) {
	req := domain.TransferRequest{Recipient: strings.TrimSpace(recipient)}

	raw := strings.TrimSpace(amount)
	if raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.TransferRequest{}, domain.ErrInvalidAmount
		}
		req.Amount = value
	}

	if err := application.ValidateTransferRequest(req); err != nil {
		return domain.TransferRequest{}, err
	}

	return req, nil
}

// Run shows the screen until the user quits.
func Run(ctx context.Context, model Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}
