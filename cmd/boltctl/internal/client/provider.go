// Package client yields the shared session manager and authenticated SDK
// clients backed by the on-disk credential store.
package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/authstore"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/session"
)

// Provider lazily constructs the credential store, session manager, and SDK
// clients. Every command in one invocation shares the same instances.
type Provider struct {
	serverURL string
	timeout   time.Duration
	log       *zap.Logger

	storeOnce sync.Once
	store     *authstore.FileStore
	jar       *authstore.Jar
	storeErr  error

	sessionOnce sync.Once
	session     *session.Manager
	sessionErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string, timeout time.Duration, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{serverURL: serverURL, timeout: timeout, log: log}
}

// storage returns the shared file store and persistent cookie jar.
func (p *Provider) storage() (*authstore.FileStore, *authstore.Jar, error) {
	p.storeOnce.Do(func() {
		dir, err := authstore.Dir()
		if err != nil {
			p.storeErr = err
			return
		}
		jar, err := authstore.NewJar(dir)
		if err != nil {
			p.storeErr = fmt.Errorf("failed to create cookie jar: %w", err)
			return
		}
		p.store = authstore.NewFileStore(dir)
		p.jar = jar
	})
	return p.store, p.jar, p.storeErr
}

// Session returns the shared session manager with any persisted session
// already restored.
func (p *Provider) Session() (*session.Manager, error) {
	p.sessionOnce.Do(func() {
		store, jar, err := p.storage()
		if err != nil {
			p.sessionErr = err
			return
		}
		authClient := sdk.NewClient(p.serverURL,
			sdk.WithHTTPClient(&http.Client{Jar: jar}),
			sdk.WithTimeout(p.timeout),
			sdk.WithLogger(p.log),
		)
		mgr := session.NewManager(authClient, store, session.WithLogger(p.log))
		mgr.Restore()
		p.session = mgr
	})
	return p.session, p.sessionErr
}

// SDKClient returns an SDK client whose requests carry the stored bearer
// token. It fails when no authenticated session exists.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		mgr, err := p.Session()
		if err != nil {
			p.sdkErr = err
			return
		}
		creds := mgr.Credentials()
		if creds == nil {
			p.sdkErr = fmt.Errorf("%w: please run `boltctl auth login`", sdk.ErrUnauthenticated)
			return
		}

		_, jar, err := p.storage()
		if err != nil {
			p.sdkErr = err
			return
		}

		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: creds.AccessToken,
			TokenType:   creds.TokenType,
		})
		httpClient := oauth2.NewClient(context.Background(), source)
		httpClient.Jar = jar

		p.sdkClient = sdk.NewClient(p.serverURL,
			sdk.WithHTTPClient(httpClient),
			sdk.WithTimeout(p.timeout),
			sdk.WithLogger(p.log),
		)
	})
	return p.sdkClient, p.sdkErr
}

// ClearCookies drops the persisted refresh cookie. Called on logout.
func (p *Provider) ClearCookies() {
	if _, jar, err := p.storage(); err == nil && jar != nil {
		jar.Clear()
	}
}
