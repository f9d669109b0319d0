package api

import (
	"context"
	"net/http"
	"sync"
)

const refreshPath = "/auth/refresh"

// refreshGroup collapses concurrent 401 recoveries into a single refresh
// call: the first caller performs the request, everyone else waits on the
// same round and shares its outcome.
type refreshGroup struct {
	mu    sync.Mutex
	round *refreshRound
}

type refreshRound struct {
	done chan struct{}
	err  error
}

func (g *refreshGroup) Do(ctx context.Context, fn func(context.Context) error) error {
	g.mu.Lock()

	if r := g.round; r != nil {
		g.mu.Unlock()

		select {
		case <-r.done:
			return r.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := &refreshRound{done: make(chan struct{})}
	g.round = r
	g.mu.Unlock()

	r.err = fn(ctx)
	close(r.done)

	g.mu.Lock()
	g.round = nil
	g.mu.Unlock()

	return r.err
}

// performRefresh runs the one refresh attempt a 401 is entitled to. It must
// not route back through call, or a failing refresh would recurse into
// another refresh.
func (c *Client) performRefresh(ctx context.Context) error {
	resp, data, err := c.roundTrip(ctx, http.MethodPost, refreshPath, nil, nil)
	if err != nil {
		return err
	}

	return decodeResponse(resp.StatusCode, data, nil)
}
