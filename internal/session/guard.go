package session

import (
	"context"
)

// LoginRoute is the navigation target for denied access.
const LoginRoute = "/ingresar"

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	// Redirect is the route to send the user to when access is denied.
	Redirect string
	// Username of the session owner when access is allowed.
	Username string
}

// Guard is the authorization gate evaluated before entering any protected
// region. It is a pure predicate over the session marker: no expiry, no
// revocation list.
type Guard struct {
	store *Store
}

func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

var deny = Decision{Allowed: false, Redirect: LoginRoute}

// Check allows access iff a marker exists, is flagged authenticated, and
// its token verifies for the same username. Every other state denies with
// a redirect to the login entry point.
func (g *Guard) Check(ctx context.Context) Decision {
	sess, err := g.store.Current(ctx)
	if err != nil {
		return deny
	}

	if !sess.IsLoggedIn || sess.Username == "" {
		return deny
	}

	username, err := UsernameFromToken(sess.Token, g.store.secret)
	if err != nil || username != sess.Username {
		return deny
	}

	return Decision{Allowed: true, Username: sess.Username}
}
