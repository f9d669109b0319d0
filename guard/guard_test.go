package guard

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/casaview/dashboard/model"
	"github.com/casaview/dashboard/session"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionResolver struct {
	mock.Mock
}

func (m *mockSessionResolver) Snapshot() session.Snapshot {
	args := m.Called()
	return args.Get(0).(session.Snapshot)
}

func (m *mockSessionResolver) Verify(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *mockSessionResolver) TokenFresh() bool {
	args := m.Called()
	return args.Bool(0)
}

type mockHomeSource struct {
	mock.Mock
}

func (m *mockHomeSource) FetchHomes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func discardLogger() logwrap.Logger {
	return logwrap.New(golog.Wrap(log.New(io.Discard, "", 0)))
}

func authenticatedSnapshot() session.Snapshot {
	return session.Snapshot{Status: session.StatusAuthenticated, User: &model.User{ID: "u1"}}
}

func TestGuard_Resolve(t *testing.T) {
	t.Run("a fresh authenticated session renders without a probe", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(authenticatedSnapshot())
		sessions.On("TokenFresh").Return(true)
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, Render, decision)
		sessions.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("the home list is loaded once, not per navigation", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(authenticatedSnapshot())
		sessions.On("TokenFresh").Return(true)
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		for i := 0; i < 3; i++ {
			decision, err := g.Resolve(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, Render, decision)
		}
	})

	t.Run("an unknown session is probed and rendered on success", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(session.Snapshot{Status: session.StatusUnknown})
		sessions.On("Verify", mock.Anything).Return(true).Once()
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, Render, decision)
	})

	t.Run("an unknown session that fails the probe redirects to login", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(session.Snapshot{Status: session.StatusUnknown})
		sessions.On("Verify", mock.Anything).Return(false).Once()

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, RedirectLogin, decision)
		homes.AssertNotCalled(t, "FetchHomes", mock.Anything)
	})

	t.Run("an unauthenticated session with no usable token redirects immediately", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(session.Snapshot{Status: session.StatusUnauthenticated})
		sessions.On("TokenFresh").Return(false)

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, RedirectLogin, decision)
		sessions.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("a fresh cookie revives an unauthenticated session via one probe", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(session.Snapshot{Status: session.StatusUnauthenticated})
		sessions.On("TokenFresh").Return(true)
		sessions.On("Verify", mock.Anything).Return(true).Once()
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, Render, decision)
	})

	t.Run("a lapsed token forces a silent re-probe despite a present user", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		sessions.On("Snapshot").Return(authenticatedSnapshot())
		sessions.On("TokenFresh").Return(false)
		sessions.On("Verify", mock.Anything).Return(true).Once()
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, Render, decision)
	})

	t.Run("a failed first homes load keeps the guard in loading", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		failure := errors.New("unreachable")

		sessions.On("Snapshot").Return(authenticatedSnapshot())
		sessions.On("TokenFresh").Return(true)
		homes.On("FetchHomes", mock.Anything).Return(failure).Once()
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		decision, err := g.Resolve(context.Background())
		assert.Equal(t, Loading, decision)
		assert.Equal(t, failure, err)

		decision, err = g.Resolve(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, Render, decision)
	})

	t.Run("concurrent resolutions share a single probe", func(t *testing.T) {
		sessions := mockSessionResolver{}
		homes := mockHomeSource{}
		defer sessions.AssertExpectations(t)
		defer homes.AssertExpectations(t)

		entered := make(chan struct{})
		release := make(chan struct{})

		sessions.On("Snapshot").Return(session.Snapshot{Status: session.StatusUnknown})
		sessions.On("Verify", mock.Anything).Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).Return(true).Once()
		homes.On("FetchHomes", mock.Anything).Return(nil).Once()

		g := New(&sessions, &homes, discardLogger())

		decisions := make(chan Decision, 2)

		go func() {
			decision, err := g.Resolve(context.Background())
			assert.NoError(t, err)
			decisions <- decision
		}()

		<-entered

		wg := sync.WaitGroup{}
		wg.Add(1)

		go func() {
			defer wg.Done()

			decision, err := g.Resolve(context.Background())
			assert.NoError(t, err)
			decisions <- decision
		}()

		close(release)
		wg.Wait()

		assert.Equal(t, Render, <-decisions)
		assert.Equal(t, Render, <-decisions)
	})
}
