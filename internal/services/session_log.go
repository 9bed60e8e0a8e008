package services

import (
	"sync"

	"alfredoptarigan/hrms-assistant/internal/models"
)

// SessionLog is an append-only, insertion-ordered chat log. Turns are never
// removed, reordered or modified once appended.
type SessionLog struct {
	mu    sync.RWMutex
	turns []models.ChatTurn
}

func NewSessionLog() *SessionLog {
	return &SessionLog{}
}

func (l *SessionLog) Append(turn models.ChatTurn) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.turns = append(l.turns, turn)
}

// Turns returns a snapshot copy of the log.
func (l *SessionLog) Turns() []models.ChatTurn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.ChatTurn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *SessionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.turns)
}
