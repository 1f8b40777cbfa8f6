package dashboard

import "sync"

// Prompt holds the ceremony link the screen shows while a passkey approval
// is pending. Open matches the portal wallet's opener.
type Prompt struct {
	mu  sync.Mutex
	url string
}

func (p *Prompt) Open(ceremonyURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.url = ceremonyURL
	return nil
}

func (p *Prompt) Current() string {
	if p == nil {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.url
}

func (p *Prompt) Clear() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.url = ""
}
