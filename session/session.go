// Package session owns the single authenticated context with the tenant.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/hashicorp/go-hclog"

	"github.com/entrakit/groupexport/global"
	"github.com/entrakit/groupexport/prompt"
)

var logger hclog.Logger

func init() {
	logger = global.Logger().Named("session")
}

// ErrAborted is returned when the operator declines to retry a failed
// sign-in. It terminates the program.
var ErrAborted = errors.New("sign-in aborted")

type Config struct {
	TenantId     string
	ClientId     string
	ClientSecret string
}

type Manager struct {
	cfg      Config
	prompter prompt.Prompter
	out      io.Writer

	// dial is swapped out in tests.
	dial func(ctx context.Context, cfg Config) (azcore.TokenCredential, error)

	cred      azcore.TokenCredential
	connected bool
}

func NewManager(cfg Config, p prompt.Prompter, out io.Writer) *Manager {
	return &Manager{
		cfg:      cfg,
		prompter: p,
		out:      out,
		dial:     dial,
	}
}

func dial(ctx context.Context, cfg Config) (azcore.TokenCredential, error) {
	if cfg.ClientSecret != "" {
		return azidentity.NewClientSecretCredential(cfg.TenantId, cfg.ClientId, cfg.ClientSecret, nil)
	}

	return azidentity.NewInteractiveBrowserCredential(&azidentity.InteractiveBrowserCredentialOptions{
		TenantID: cfg.TenantId,
		ClientID: cfg.ClientId,
	})
}

// Connect authenticates against the tenant, asking the operator whether to
// retry with different credentials after every failure. It returns
// ErrAborted once the operator gives up.
func (m *Manager) Connect(ctx context.Context) error {
	for {
		err := m.connectOnce(ctx)
		if err == nil {
			// Drop any retry noise before the interactive loop starts.
			m.prompter.Clear()
			return nil
		}

		fmt.Fprintf(m.out, "Sign-in failed: %v\n", err)
		m.Disconnect(false)

		if !m.prompter.Confirm("Retry with different credentials? [y/N] ") {
			return ErrAborted
		}

		secret, serr := m.prompter.Secret("Client secret (leave empty to keep the current one): ")
		if serr == nil && strings.TrimSpace(secret) != "" {
			m.cfg.ClientSecret = secret
		}
	}
}

func (m *Manager) connectOnce(ctx context.Context) error {
	cred, err := m.dial(ctx, m.cfg)
	if err != nil {
		return fmt.Errorf("could not create a credential: %w", err)
	}

	// Prove the credential before declaring the session usable.
	_, err = cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{global.GraphScope}})
	if err != nil {
		return fmt.Errorf("token request failed: %w", err)
	}

	m.cred = cred
	m.connected = true

	logger.Debug("session established", "tenant", m.cfg.TenantId)

	return nil
}

// Credential exposes the proven credential for the Graph client.
func (m *Manager) Credential() azcore.TokenCredential {
	return m.cred
}

func (m *Manager) Connected() bool {
	return m.connected
}

// Disconnect tears the session down. Safe to call when no session is
// active; with confirm set it tells the operator.
func (m *Manager) Disconnect(confirm bool) {
	if m.connected && confirm {
		fmt.Fprintln(m.out, "Signed out.")
	}

	m.cred = nil
	m.connected = false
}
