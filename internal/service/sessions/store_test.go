package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

type recordingMetrics struct {
	lastActive int
}

func (m *recordingMetrics) SetActiveSessions(n int) { m.lastActive = n }

func TestStore_PutAndDo(t *testing.T) {
	now := time.Now()
	store := NewStore(time.Hour, nil)
	store.Put(wizard.NewSession("sess-1", now), now)

	var visited string
	err := store.Do("sess-1", now, func(session *wizard.Session) error {
		visited = session.ID
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", visited)
	assert.Equal(t, 1, store.Len())
}

func TestStore_DoUnknownSession(t *testing.T) {
	store := NewStore(time.Hour, nil)

	err := store.Do("missing", time.Now(), func(session *wizard.Session) error {
		t.Fatal("fn must not be called for unknown session")
		return nil
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_TTL(t *testing.T) {
	now := time.Now()
	store := NewStore(time.Minute, nil)
	store.Put(wizard.NewSession("sess-1", now), now)

	t.Run("expired session behaves as missing", func(t *testing.T) {
		err := store.Do("sess-1", now.Add(2*time.Minute), func(session *wizard.Session) error {
			return nil
		})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("access refreshes ttl", func(t *testing.T) {
		store.Put(wizard.NewSession("sess-2", now), now)

		// Обращение на 50-й секунде продлевает жизнь сессии
		err := store.Do("sess-2", now.Add(50*time.Second), func(session *wizard.Session) error {
			return nil
		})
		require.NoError(t, err)

		err = store.Do("sess-2", now.Add(100*time.Second), func(session *wizard.Session) error {
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestStore_Delete(t *testing.T) {
	now := time.Now()
	store := NewStore(time.Hour, nil)
	store.Put(wizard.NewSession("sess-1", now), now)

	store.Delete("sess-1")

	assert.Equal(t, 0, store.Len())
	err := store.Do("sess-1", now, func(session *wizard.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_EvictExpired(t *testing.T) {
	now := time.Now()
	metrics := &recordingMetrics{}
	store := NewStore(time.Minute, metrics)

	store.Put(wizard.NewSession("old", now.Add(-2*time.Minute)), now.Add(-2*time.Minute))
	store.Put(wizard.NewSession("fresh", now), now)
	require.Equal(t, 2, store.Len())

	store.evictExpired(now)

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, metrics.lastActive)

	err := store.Do("fresh", now, func(session *wizard.Session) error { return nil })
	assert.NoError(t, err)
}
