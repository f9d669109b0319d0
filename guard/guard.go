package guard

import (
	"context"
	"sync"

	"github.com/casaview/dashboard/session"
	"github.com/shimmeringbee/logwrap"
)

// Decision is what a protected view should do right now.
type Decision string

const (
	// Loading covers both an unresolved session and the first homes load.
	Loading       Decision = "loading"
	RedirectLogin Decision = "redirect-login"
	Render        Decision = "render"
)

// SessionResolver is the slice of the session manager the guard consults.
type SessionResolver interface {
	Snapshot() session.Snapshot
	Verify(ctx context.Context) bool
	TokenFresh() bool
}

type HomeSource interface {
	FetchHomes(ctx context.Context) error
}

// Guard gates protected views: it resolves the session, probing the server
// only when strictly necessary, and ensures the home list has been loaded
// once before anything renders.
type Guard struct {
	sessions SessionResolver
	homes    HomeSource
	logger   logwrap.Logger

	mu        sync.Mutex
	verifying *verifyRound

	// homesMu is held across the first homes load so concurrent
	// resolutions can not both issue it.
	homesMu     sync.Mutex
	homesLoaded bool
}

type verifyRound struct {
	done chan struct{}
	ok   bool
}

func New(sessions SessionResolver, homes HomeSource, l logwrap.Logger) *Guard {
	return &Guard{
		sessions: sessions,
		homes:    homes,
		logger:   l,
	}
}

// Resolve settles the guard for one navigation. An already authenticated
// session with a fresh access token renders without touching the network; an
// unknown session is verified, concurrent resolutions sharing one probe. A
// session that is unauthenticated and holds no usable token short circuits
// straight to the login redirect.
func (g *Guard) Resolve(ctx context.Context) (Decision, error) {
	snap := g.sessions.Snapshot()

	switch snap.Status {
	case session.StatusAuthenticated:
		if snap.User != nil && g.sessions.TokenFresh() {
			return g.ensureHomes(ctx)
		}

		// The user looked signed in but the token has lapsed; probe
		// silently rather than render on a dead session.
	case session.StatusUnauthenticated:
		if !g.sessions.TokenFresh() {
			return RedirectLogin, nil
		}

		// A fresh cookie appeared since the session was cleared, for
		// example after a sign in elsewhere. Give it one probe.
	case session.StatusUnknown:
	}

	if !g.verify(ctx) {
		return RedirectLogin, nil
	}

	return g.ensureHomes(ctx)
}

// verify runs the silent session probe, collapsing concurrent callers onto
// a single in-flight round.
func (g *Guard) verify(ctx context.Context) bool {
	g.mu.Lock()

	if r := g.verifying; r != nil {
		g.mu.Unlock()

		select {
		case <-r.done:
			return r.ok
		case <-ctx.Done():
			return false
		}
	}

	r := &verifyRound{done: make(chan struct{})}
	g.verifying = r
	g.mu.Unlock()

	g.logger.LogDebug(ctx, "Session state unknown, probing server.")

	r.ok = g.sessions.Verify(ctx)
	close(r.done)

	g.mu.Lock()
	g.verifying = nil
	g.mu.Unlock()

	return r.ok
}

// ensureHomes performs the first home list load. Until that load has
// succeeded once the guard keeps reporting Loading, so views never render
// against an absent home list.
func (g *Guard) ensureHomes(ctx context.Context) (Decision, error) {
	g.homesMu.Lock()
	defer g.homesMu.Unlock()

	if g.homesLoaded {
		return Render, nil
	}

	if err := g.homes.FetchHomes(ctx); err != nil {
		return Loading, err
	}

	g.homesLoaded = true

	return Render, nil
}
