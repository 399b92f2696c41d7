package cli

import (
	"errors"
	"fmt"

	"github.com/paybatch-io/paybatch/internal/api"
	"github.com/paybatch-io/paybatch/internal/auth"
	"github.com/paybatch-io/paybatch/internal/config"
	"github.com/paybatch-io/paybatch/internal/session"
)

// portalDeps bundles one portal's client, auth manager and token store.
type portalDeps struct {
	portal session.Portal
	store  *session.Store
	auth   *auth.Manager

	// Exactly one of these is set, depending on the portal.
	freelancer *api.Freelancer
	admin      *api.Admin
}

func freelancerDeps() (*portalDeps, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	store, err := session.ForPortal(session.PortalFreelancer)
	if err != nil {
		return nil, err
	}
	client := api.NewFreelancer(config.ResolveBaseURL(settings), store)
	return &portalDeps{
		portal:     session.PortalFreelancer,
		store:      store,
		auth:       auth.NewManager(client, store),
		freelancer: client,
	}, nil
}

func adminDeps() (*portalDeps, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	store, err := session.ForPortal(session.PortalAdmin)
	if err != nil {
		return nil, err
	}
	client := api.NewAdmin(config.ResolveBaseURL(settings), store)
	return &portalDeps{
		portal: session.PortalAdmin,
		store:  store,
		auth:   auth.NewManager(client, store),
		admin:  client,
	}, nil
}

// requireFreelancerSession builds the freelancer portal and refuses to
// proceed when no session is stored. Checked on every invocation, never
// cached, so a logout elsewhere is picked up immediately.
func requireFreelancerSession() (*portalDeps, error) {
	deps, err := freelancerDeps()
	if err != nil {
		return nil, err
	}
	if !deps.store.IsLoggedIn() {
		return nil, fmt.Errorf("not signed in. Run 'paybatch freelancer login' first")
	}
	return deps, nil
}

// requireAdminSession is the admin-portal guard.
func requireAdminSession() (*portalDeps, error) {
	deps, err := adminDeps()
	if err != nil {
		return nil, err
	}
	if !deps.store.IsLoggedIn() {
		return nil, fmt.Errorf("not signed in. Run 'paybatch admin login' first")
	}
	return deps, nil
}

// describeError maps backend failures onto the messages the commands
// print: auth errors become a sign-in hint, missing entities a plain "not
// found", validation failures keep the server's field detail. A rejected
// token is cleared here, so the portal reads as signed out on the next
// invocation instead of repeating the round-trip and the hint.
func (d *portalDeps) describeError(err error) error {
	var apiErr *api.Error
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated), api.IsAuth(err):
		_ = d.store.Clear()
		return fmt.Errorf("session expired or invalid. Run 'paybatch %s login' to sign in again", d.portal)
	case api.IsNotFound(err):
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			return fmt.Errorf("not found: %s", apiErr.Detail)
		}
		return errors.New("not found")
	case api.IsValidation(err):
		if errors.As(err, &apiErr) {
			return fmt.Errorf("invalid request: %s", apiErr.Detail)
		}
		return err
	default:
		return err
	}
}
