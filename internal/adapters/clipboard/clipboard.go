package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/bnema/lazorkit-wallet-cli/internal/ports"
)

var ErrUnavailable = errors.New("no clipboard utility available")

// System writes to the desktop clipboard through xclip, xsel, wl-copy,
// pbcopy or the Windows API.
type System struct{}

var _ ports.Clipboard = System{}

func (System) Available() bool {
	return !clipboard.Unsupported
}

func (s System) WriteAll(text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}
