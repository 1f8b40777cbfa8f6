package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type transferJSON struct {
	ID          string    `json:"id"`
	Signature   string    `json:"signature"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Lamports    uint64    `json:"lamports"`
	SOL         float64   `json:"sol"`
	Network     string    `json:"network"`
	SubmittedAt time.Time `json:"submitted_at"`
	ExplorerURL string    `json:"explorer_url"`
}

func newHistoryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transfers sent from this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.history.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]transferJSON, 0, len(records))
				for _, record := range records {
					out = append(out, toTransferJSON(record))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(records) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No transfers yet.")
				return err
			}

			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("TIME", "AMOUNT", "TO", "EXPLORER")
			for _, record := range records {
				t.Row(
					record.SubmittedAt.UTC().Format(time.RFC3339),
					fmt.Sprintf("%.4f SOL", record.Lamports.SOL()),
					record.To.Short(),
					domain.ExplorerURL(record.Signature, record.Network),
				)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func toTransferJSON(record domain.TransferRecord) transferJSON {
	return transferJSON{
		ID:          record.ID,
		Signature:   record.Signature,
		From:        record.From.String(),
		To:          record.To.String(),
		Lamports:    uint64(record.Lamports),
		SOL:         record.Lamports.SOL(),
		Network:     record.Network,
		SubmittedAt: record.SubmittedAt.UTC(),
		ExplorerURL: domain.ExplorerURL(record.Signature, record.Network),
	}
}
