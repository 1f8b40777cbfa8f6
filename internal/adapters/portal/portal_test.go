package portal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bnema/lazorkit-wallet-cli/internal/domain"
	"github.com/mr-tron/base58"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSmartWallet = "Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr"
	testRecipient   = "So11111111111111111111111111111111111111112"
	systemProgram   = "11111111111111111111111111111111"
)

// approvingOpener plays the portal: it follows the redirect with params
// merged into the callback query.
func approvingOpener(t *testing.T, params url.Values, seen *[]*url.URL) Opener {
	t.Helper()

	return func(ceremonyURL string) error {
		parsed, err := url.Parse(ceremonyURL)
		if err != nil {
			return err
		}
		if seen != nil {
			*seen = append(*seen, parsed)
		}

		q := url.Values{}
		q.Set("state", parsed.Query().Get("state"))
		for key, values := range params {
			q[key] = values
		}

		resp, err := http.Get(parsed.Query().Get("redirect_uri") + "?" + q.Encode())
		if err != nil {
			return err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.Body.Close()
	}
}

func TestBuildCeremonyURL(t *testing.T) {
	t.Parallel()

	u, err := BuildCeremonyURL("https://portal.lazor.sh/", CeremonySign, "http://127.0.0.1:9999/lazorkit/callback", "state-xyz",
		url.Values{"challenge": {"abc"}})
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "portal.lazor.sh", parsed.Host)
	assert.Equal(t, "/sign", parsed.Path)
	assert.Equal(t, "http://127.0.0.1:9999/lazorkit/callback", parsed.Query().Get("redirect_uri"))
	assert.Equal(t, "state-xyz", parsed.Query().Get("state"))
	assert.Equal(t, "abc", parsed.Query().Get("challenge"))
}

func TestBuildCeremonyURLValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		portal string
		kind   CeremonyKind
		state  string
		want   string
	}{
		{name: "missing portal", kind: CeremonyConnect, state: "s", want: "portal url is required"},
		{name: "unknown kind", portal: "https://p", kind: "pay", state: "s", want: "unknown ceremony"},
		{name: "bad scheme", portal: "ftp://p", kind: CeremonyConnect, state: "s", want: "http or https"},
		{name: "missing state", portal: "https://p", kind: CeremonyConnect, want: ErrMissingState.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCeremonyURL(tt.portal, tt.kind, "http://127.0.0.1/cb", tt.state, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCallbackServerReturnsValues(t *testing.T) {
	t.Parallel()

	logger, _ := logtest.NewNullLogger()
	server, err := StartCallbackServer("127.0.0.1:0", "expected-state", logger)
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?state=expected-state&smart_wallet=abc")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Passkey approved")

	values, err := server.Wait(context.Background(), 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "abc", values.Get("smart_wallet"))
}

func TestCallbackServerStateMismatch(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "expected-state", nil)
	require.NoError(t, err)

	resp, err := http.Get(server.RedirectURI() + "?state=wrong")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = server.Wait(context.Background(), 2*time.Second)
	assert.ErrorIs(t, err, ErrStateMismatch)
}

func TestCallbackServerPortalError(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "s1", nil)
	require.NoError(t, err)

	resp, err := http.Get(server.RedirectURI() + "?state=s1&error=cancelled&error_description=user+closed+the+dialog")
	require.NoError(t, err)
	_ = resp.Body.Close()

	_, err = server.Wait(context.Background(), 2*time.Second)
	require.Error(t, err)
	assert.Equal(t, "cancelled: user closed the dialog", err.Error())
}

func TestCallbackServerTimeoutAndCancel(t *testing.T) {
	t.Parallel()

	server, err := StartCallbackServer("127.0.0.1:0", "s1", nil)
	require.NoError(t, err)
	_, err = server.Wait(context.Background(), 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrCallbackTimeout)

	server, err = StartCallbackServer("127.0.0.1:0", "s1", nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = server.Wait(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStartCallbackServerRequiresState(t *testing.T) {
	t.Parallel()

	_, err := StartCallbackServer("127.0.0.1:0", "", nil)
	assert.ErrorIs(t, err, ErrMissingState)
}

func TestWalletConnectPublishesAddress(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	wallet, err := NewWallet(Options{
		PortalURL: "https://portal.example.com",
		Open:      approvingOpener(t, url.Values{"smart_wallet": {testSmartWallet}, "credential_id": {"cred-1"}}, nil),
		Timeout:   2 * time.Second,
		Logger:    logger,
	})
	require.NoError(t, err)

	var states []domain.ConnectionState
	unsubscribe := wallet.Subscribe(func(s domain.ConnectionState) { states = append(states, s) })
	defer unsubscribe()

	require.NoError(t, wallet.Connect(context.Background()))

	require.Len(t, states, 2)
	assert.True(t, states[0].IsLoading)
	assert.Equal(t, domain.ConnectionState{IsConnected: true, Address: testSmartWallet}, states[1])
	assert.Equal(t, states[1], wallet.State())

	require.NoError(t, wallet.Disconnect(context.Background()))
	assert.Equal(t, domain.ConnectionState{}, wallet.State())
}

func TestWalletConnectMissingFieldsReportsError(t *testing.T) {
	wallet, err := NewWallet(Options{
		PortalURL: "https://portal.example.com",
		Open:      approvingOpener(t, url.Values{"smart_wallet": {testSmartWallet}}, nil),
		Timeout:   2 * time.Second,
	})
	require.NoError(t, err)

	err = wallet.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing credential_id")

	state := wallet.State()
	assert.False(t, state.IsConnected)
	assert.False(t, state.IsLoading)
	assert.Equal(t, err, state.Err)
}

func TestWalletConnectOpenerFailure(t *testing.T) {
	wallet, err := NewWallet(Options{
		PortalURL: "https://portal.example.com",
		Open:      func(string) error { return errors.New("no browser") },
	})
	require.NoError(t, err)

	err = wallet.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open connect ceremony: no browser")
}

func TestWalletSignAndSendRequiresConnection(t *testing.T) {
	wallet, err := NewWallet(Options{PortalURL: "https://portal.example.com", Open: func(string) error { return nil }})
	require.NoError(t, err)

	_, err = wallet.SignAndSendTransaction(context.Background(), domain.TransactionPayload{})
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestWalletSignAndSendRelaysThroughPaymaster(t *testing.T) {
	var received relayRequest
	paymaster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sign-and-send", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"signature":"5xSig"}`))
	}))
	defer paymaster.Close()

	var seen []*url.URL
	params := url.Values{"smart_wallet": {testSmartWallet}, "credential_id": {"cred-1"}, "assertion": {"assert-1"}}
	wallet, err := NewWallet(Options{
		PortalURL:       "https://portal.example.com",
		PaymasterURL:    paymaster.URL,
		PaymasterAPIKey: "secret-key",
		Open:            approvingOpener(t, params, &seen),
		Timeout:         2 * time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, wallet.Connect(context.Background()))

	data := []byte{2, 0, 0, 0, 0, 101, 205, 29, 0, 0, 0, 0}
	signature, err := wallet.SignAndSendTransaction(context.Background(), domain.TransactionPayload{
		Instructions: []domain.Instruction{{
			ProgramID: systemProgram,
			Accounts: []domain.AccountMeta{
				{PublicKey: testSmartWallet, IsSigner: true, IsWritable: true},
				{PublicKey: testRecipient, IsWritable: true},
			},
			Data: data,
		}},
		Options: domain.TransactionOptions{ClusterSimulation: "devnet"},
	})
	require.NoError(t, err)
	assert.Equal(t, "5xSig", signature)

	assert.Equal(t, testSmartWallet, received.SmartWallet)
	assert.Equal(t, "cred-1", received.CredentialID)
	assert.Equal(t, "assert-1", received.Assertion)
	assert.Equal(t, "devnet", received.TransactionOptions.ClusterSimulation)
	require.Len(t, received.Instructions, 1)
	assert.Equal(t, base58.Encode(data), received.Instructions[0].Data)
	assert.Equal(t, systemProgram, received.Instructions[0].ProgramID)

	require.Len(t, seen, 2)
	assert.Equal(t, "/connect", seen[0].Path)
	assert.Equal(t, "/sign", seen[1].Path)
	challenge, err := challengeFor(received.Instructions, received.TransactionOptions)
	require.NoError(t, err)
	assert.Equal(t, challenge, seen[1].Query().Get("challenge"))
}

func TestRelayErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "relay error field", status: http.StatusBadRequest, body: `{"error":"insufficient funds"}`, wantErr: "insufficient funds"},
		{name: "bad status", status: http.StatusBadGateway, body: `oops`, wantErr: "relay returned status 502"},
		{name: "missing signature", status: http.StatusOK, body: `{}`, wantErr: "missing signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/sign-and-send", r.URL.Path)
				assert.Empty(t, r.Header.Get("x-api-key"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			relay := NewRelay(srv.URL, "", "ignored", srv.Client())
			_, err := relay.submit(context.Background(), relayRequest{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
