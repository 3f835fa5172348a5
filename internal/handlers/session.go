package handlers

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Nick07092003/FitAI/internal/fitness"
)

const sessionCookie = "fitai_session"

// SessionStore — последняя оценка каждой сессии. Ключ — uuid из cookie,
// так что параллельные пользователи не перетирают результаты друг друга.
// Хранилище принадлежит HTTP-слою: ядро своего состояния не держит.
type SessionStore struct {
	mu sync.RWMutex
	m  map[string]fitness.Result
}

func NewSessionStore() *SessionStore {
	return &SessionStore{m: make(map[string]fitness.Result)}
}

// Get возвращает сохранённую оценку сессии.
func (s *SessionStore) Get(id string) (fitness.Result, bool) {
	if id == "" {
		return fitness.Result{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.m[id]
	return res, ok
}

// Put сохраняет оценку сессии, перезаписывая предыдущую.
func (s *SessionStore) Put(id string, res fitness.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = res
}

// sessionID — id сессии из cookie; если cookie ещё нет, выдаёт новый
// и ставит его в ответ.
func (h *Handler) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(sessionCookie); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}
