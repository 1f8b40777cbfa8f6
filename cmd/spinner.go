package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	degradedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// balanceFetch loads one or more balances. Snapshots marked Fallback are
// reported on the closing line so a zero from a dead node is not mistaken
// for an empty wallet.
type balanceFetch func(context.Context) ([]domain.BalanceSnapshot, error)

type balanceFetchedMsg struct {
	snapshots []domain.BalanceSnapshot
	err       error
}

type balanceSpinnerModel struct {
	spinner   spinner.Model
	label     string
	symbols   map[string]string
	fetch     tea.Cmd
	snapshots []domain.BalanceSnapshot
	err       error
	done      bool
}

// symbols maps token mints to display names for the closing line.
func newBalanceSpinnerModel(label string, symbols map[string]string, fetch tea.Cmd) balanceSpinnerModel {
	return balanceSpinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		label:   label,
		symbols: symbols,
		fetch:   fetch,
	}
}

func (m balanceSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m balanceSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case balanceFetchedMsg:
		m.done = true
		m.snapshots = msg.snapshots
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m balanceSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}
	if m.err != nil {
		return failedStyle.Render("✗ balance unavailable") + "\n"
	}

	var degraded []string
	for _, snapshot := range m.snapshots {
		if snapshot.Fallback {
			degraded = append(degraded, m.unit(snapshot))
		}
	}
	if len(degraded) == 0 {
		return ""
	}

	return degradedStyle.Render(fmt.Sprintf("! rpc unreachable, %s shown as 0", strings.Join(degraded, " and "))) + "\n"
}

func (m balanceSpinnerModel) unit(snapshot domain.BalanceSnapshot) string {
	if snapshot.Mint == "" {
		return "SOL"
	}
	if symbol, ok := m.symbols[snapshot.Mint]; ok {
		return symbol
	}

	return domain.ShortenAddress(snapshot.Mint, 0)
}

func runBalanceSpinner(ctx context.Context, output io.Writer, label string, symbols map[string]string, fetch balanceFetch) error {
	fetchCmd := func() tea.Msg {
		snapshots, err := fetch(ctx)
		return balanceFetchedMsg{snapshots: snapshots, err: err}
	}

	p := tea.NewProgram(
		newBalanceSpinnerModel(label, symbols, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(balanceSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
