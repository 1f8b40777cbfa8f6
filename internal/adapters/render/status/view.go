package status

import (
	"fmt"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// WalletStatus is one smart wallet as the status card shows it.
type WalletStatus struct {
	Address      domain.WalletAddress
	Connected    bool
	Network      string
	Native       *domain.BalanceSnapshot
	Token        *domain.BalanceSnapshot
	TokenSymbol  string
	LastTransfer *domain.TransferResult
}

type RenderOptions struct {
	Now         time.Time
	FaucetURL   string
	FullAddress bool
}

func renderView(status WalletStatus, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Lazorkit Smart Wallet")}

	if status.Address.IsZero() {
		lines = append(lines, s.empty.Render("No wallet connected. Run `lzw connect` to sign in with a passkey."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderCard(status, opts, s)))

	if status.LastTransfer != nil {
		lines = append(lines, s.section.Render(renderTransfer(*status.LastTransfer, status.Network, s)))
	}

	if opts.FaucetURL != "" && status.Native != nil && !status.Native.Fallback && status.Native.Amount == 0 {
		lines = append(lines, s.section.Render(s.hint.Render("Need devnet SOL? Visit "+opts.FaucetURL)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCard(status WalletStatus, opts RenderOptions, s styles) string {
	address := status.Address.Short()
	if opts.FullAddress {
		address = status.Address.String()
	}

	header := s.address.Render(address)
	if status.Connected {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", s.badge.Render("Active"))
	}

	parts := []string{
		header,
		s.detail.Render("network: " + networkLabel(status.Network)),
		balanceLine("SOL", status.Native, opts, s),
	}
	if status.Token != nil {
		symbol := status.TokenSymbol
		if symbol == "" {
			symbol = "token"
		}
		parts = append(parts, balanceLine(symbol, status.Token, opts, s))
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func balanceLine(symbol string, snapshot *domain.BalanceSnapshot, opts RenderOptions, s styles) string {
	label := s.balanceKey.Render(symbol + ":")
	if snapshot == nil {
		return label + " " + s.empty.Render("loading...")
	}

	line := label + " " + s.balance.Render(formatAmount(symbol, snapshot.Amount))
	if snapshot.Fallback {
		line += " " + s.warning.Render("[unavailable]")
	} else if age := formatAge(snapshot.FetchedAt, opts.Now); age != "" {
		line += " " + s.detail.Render("("+age+")")
	}

	return line
}

func renderTransfer(result domain.TransferResult, network string, s styles) string {
	if result.OK() {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.success.Render("Transaction sent"),
			s.detail.Render("signature: "+result.Signature),
			s.link.Render(domain.ExplorerURL(result.Signature, network)),
		)
	}

	return s.failure.Render(result.ErrorMessage)
}

func formatAmount(symbol string, amount float64) string {
	if symbol == "SOL" {
		return fmt.Sprintf("%.4f SOL", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, symbol)
}

func formatAge(fetchedAt, now time.Time) string {
	if fetchedAt.IsZero() || now.IsZero() {
		return ""
	}

	age := now.Sub(fetchedAt)
	switch {
	case age < 2*time.Second:
		return "just now"
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	default:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	}
}

func networkLabel(network string) string {
	if network == "" {
		return "unknown"
	}
	return network
}
