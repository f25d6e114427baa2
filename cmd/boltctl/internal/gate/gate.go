// Package gate applies the access policy in front of every page command.
// Pages never re-implement role checks; they ask here once before rendering.
package gate

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// ErrAccessDenied is returned after an Access Denied view has been rendered.
var ErrAccessDenied = errors.New("access denied")

// Ensure resolves the current identity and checks it may open the page.
// Unauthenticated callers are told to log in; a role without the page gets
// an explicit Access Denied view, never a blank page.
func Ensure(cfg *config.GlobalConfig, page string) (sdk.Identity, error) {
	mgr, err := cfg.Provider.Session()
	if err != nil {
		return sdk.Identity{}, err
	}
	who, ok := mgr.Identity()
	if !ok {
		return sdk.Identity{}, fmt.Errorf("%w: please run `boltctl auth login`", sdk.ErrUnauthenticated)
	}
	if !rbac.IsAllowed(who.Role, page) {
		pterm.DefaultBox.WithTitle("Access Denied").Println(
			fmt.Sprintf("Your role (%s) does not have permission to view this page.", who.Role))
		return sdk.Identity{}, fmt.Errorf("%w: role %s cannot open %s", ErrAccessDenied, who.Role, page)
	}
	return who, nil
}
