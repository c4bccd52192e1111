// Package auth holds the session gate guarding the dashboard views.
//
// This is a functional stand-in for real authentication: a fixed credential
// pair and an in-memory flag, not a security boundary. Anything headed for
// production must swap this for a credential exchange against the backend.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/existflow/leadboard/internal/logger"
)

// Gate is the access-control state machine around the leads view.
// It starts anonymous; Login and Logout cycle it. Construct one per test
// rather than sharing a global.
type Gate struct {
	username      string
	password      string
	passwordHash  string
	authenticated bool
}

// NewGate creates a gate expecting the given plaintext credential pair
func NewGate(username, password string) *Gate {
	return &Gate{username: username, password: password}
}

// NewGateHashed creates a gate that verifies the password against a bcrypt
// hash instead of a plaintext value
func NewGateHashed(username, passwordHash string) *Gate {
	return &Gate{username: username, passwordHash: passwordHash}
}

// Login attempts the transition to authenticated. It succeeds only when
// both values match exactly; on failure the state is left untouched and
// there is no lockout or backoff.
func (g *Gate) Login(username, password string) bool {
	if username != g.username || !g.checkPassword(password) {
		logger.Warn("Login failed", logger.F("username", username))
		return false
	}
	g.authenticated = true
	logger.Info("Login succeeded", logger.F("username", username))
	return true
}

func (g *Gate) checkPassword(password string) bool {
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	}
	return password == g.password
}

// Logout unconditionally returns the gate to anonymous
func (g *Gate) Logout() {
	g.authenticated = false
	logger.Info("Logged out")
}

// IsAuthenticated reports the current state
func (g *Gate) IsAuthenticated() bool {
	return g.authenticated
}
