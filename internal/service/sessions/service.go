package sessions

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// Service сервис управления сессиями визарда бронирования
type Service struct {
	store  *Store
	logger Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store *Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create создает новую сессию визарда на первом шаге
func (s *Service) Create() (*models.SessionState, error) {
	now := time.Now()
	session := wizard.NewSession(uuid.NewString(), now)
	s.store.Put(session, now)

	s.logger.Info("Create: wizard session created id=%s", session.ID)
	return models.FromSession(session), nil
}

// Get возвращает снимок состояния сессии
func (s *Service) Get(id string) (*models.SessionState, error) {
	var state *models.SessionState

	err := s.store.Do(id, time.Now(), func(session *wizard.Session) error {
		state = models.FromSession(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// UpdateSelection применяет частичное обновление выбора с каскадным сбросом
func (s *Service) UpdateSelection(id string, update wizard.SelectionUpdate) (*models.SessionState, error) {
	var state *models.SessionState
	now := time.Now()

	err := s.store.Do(id, now, func(session *wizard.Session) error {
		session.ApplyUpdate(update, now)
		state = models.FromSession(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSelection: session=%s step=%s", id, state.Step)
	return state, nil
}

// Advance переводит сессию на следующий шаг.
// Возвращает ErrStepGateClosed, если гейт текущего шага закрыт.
// На последнем шаге переход — no-op без ошибки.
func (s *Service) Advance(id string) (*models.SessionState, error) {
	var state *models.SessionState
	now := time.Now()

	err := s.store.Do(id, now, func(session *wizard.Session) error {
		if session.Step < wizard.LastStep && !session.Next(now) {
			s.logger.Warn("Advance: gate closed for session=%s step=%s", id, session.Step)
			return ErrStepGateClosed
		}
		state = models.FromSession(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Advance: session=%s now at step=%s", id, state.Step)
	return state, nil
}

// Retreat переводит сессию на предыдущий шаг.
// Back на первом шаге означает выход из визарда: сессия удаляется,
// exited == true, навигацию выполняет фронтенд.
func (s *Service) Retreat(id string) (*models.SessionState, bool, error) {
	var (
		state  *models.SessionState
		exited bool
	)
	now := time.Now()

	err := s.store.Do(id, now, func(session *wizard.Session) error {
		exited = session.Back(now)
		state = models.FromSession(session)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if exited {
		s.store.Delete(id)
		s.logger.Info("Retreat: session=%s exited wizard", id)
		return state, true, nil
	}

	s.logger.Info("Retreat: session=%s now at step=%s", id, state.Step)
	return state, false, nil
}

// Finish удаляет сессию после успешного создания бронирования
func (s *Service) Finish(id string) {
	s.store.Delete(id)
	s.logger.Info("Finish: session=%s completed and removed", id)
}

// Do выполняет fn над сессией под блокировкой хранилища.
// Используется use case'ами, которым нужен прямой доступ к сессии.
func (s *Service) Do(id string, fn func(session *wizard.Session) error) error {
	return s.store.Do(id, time.Now(), fn)
}
