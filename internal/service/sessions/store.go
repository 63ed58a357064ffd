package sessions

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// Store потокобезопасное in-memory хранилище сессий визарда с TTL.
// Все мутации сессии выполняются под блокировкой хранилища, поэтому
// каскадный сброс выбора всегда наблюдается атомарно: ни один читатель
// не увидит наполовину примененное обновление.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*storeEntry
	ttl      time.Duration
	metrics  MetricsCollector
}

type storeEntry struct {
	session   *wizard.Session
	expiresAt time.Time
}

// NewStore создает новое хранилище сессий.
// metrics может быть nil — тогда gauge активных сессий не обновляется.
func NewStore(ttl time.Duration, metrics MetricsCollector) *Store {
	return &Store{
		sessions: make(map[string]*storeEntry),
		ttl:      ttl,
		metrics:  metrics,
	}
}

// Put добавляет сессию в хранилище
func (s *Store) Put(session *wizard.Session, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = &storeEntry{
		session:   session,
		expiresAt: now.Add(s.ttl),
	}
	s.reportLen()
}

// Do выполняет fn над сессией под блокировкой хранилища.
// Обращение продлевает TTL сессии.
func (s *Store) Do(id string, now time.Time, fn func(session *wizard.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || now.After(entry.expiresAt) {
		return ErrSessionNotFound
	}

	entry.expiresAt = now.Add(s.ttl)
	return fn(entry.session)
}

// Delete удаляет сессию (после успешного submit или по запросу)
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	s.reportLen()
}

// Len возвращает количество сессий в хранилище
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor запускает фоновую очистку истекших сессий.
// Останавливается закрытием stopCh.
func (s *Store) StartJanitor(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.evictExpired(time.Now())
			case <-stopCh:
				return
			}
		}
	}()
}

func (s *Store) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.reportLen()
}

// reportLen обновляет gauge активных сессий; вызывается под блокировкой
func (s *Store) reportLen() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(len(s.sessions))
	}
}
