package domain

import (
	"fmt"
	"net/url"
	"time"
)

const explorerBaseURL = "https://explorer.solana.com/tx/"

// TransferRequest is the raw form input for one native transfer.
type TransferRequest struct {
	Recipient string
	Amount    float64
}

// TransferResult carries either a signature or a human readable error.
type TransferResult struct {
	Signature    string
	ErrorMessage string
}

func (r TransferResult) OK() bool {
	return r.Signature != "" && r.ErrorMessage == ""
}

type AccountMeta struct {
	PublicKey  WalletAddress
	IsSigner   bool
	IsWritable bool
}

// Instruction is a chain instruction in wire-neutral form.
type Instruction struct {
	ProgramID WalletAddress
	Accounts  []AccountMeta
	Data      []byte
}

type TransactionOptions struct {
	ClusterSimulation string
}

// TransactionPayload is what the wallet is asked to sign and relay.
type TransactionPayload struct {
	Instructions []Instruction
	Options      TransactionOptions
}

// TransferRecord is a submitted transfer kept in local history.
type TransferRecord struct {
	ID          string
	Signature   string
	From        WalletAddress
	To          WalletAddress
	Lamports    Lamports
	Network     string
	SubmittedAt time.Time
}

// ExplorerURL links a transaction signature on the public block explorer.
func ExplorerURL(signature, network string) string {
	link := explorerBaseURL + url.PathEscape(signature)
	if network == "" || network == "mainnet-beta" {
		return link
	}

	return fmt.Sprintf("%s?cluster=%s", link, url.QueryEscape(network))
}
