package breakout

import "sync"

// ScoreStore persists the best-ever score. ReadHighScore returns 0 when
// nothing has been stored yet.
type ScoreStore interface {
	ReadHighScore() int
	WriteHighScore(score int)
}

// MemoryScoreStore keeps the high score in memory. It is used when no
// database is available and in tests.
type MemoryScoreStore struct {
	mu     sync.Mutex
	value  int
	writes int
}

// NewMemoryScoreStore creates a store holding initial.
func NewMemoryScoreStore(initial int) *MemoryScoreStore {
	return &MemoryScoreStore{value: initial}
}

// ReadHighScore implements ScoreStore.
func (m *MemoryScoreStore) ReadHighScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// WriteHighScore implements ScoreStore.
func (m *MemoryScoreStore) WriteHighScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = score
	m.writes++
}

// Writes returns how many times WriteHighScore was called.
func (m *MemoryScoreStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Scorekeeper tracks the high score for the lifetime of the process. The
// store is read once, on construction, and written on every new record.
type Scorekeeper struct {
	store ScoreStore
	high  int
}

// NewScorekeeper reads the stored high score. A nil store keeps scores in memory.
func NewScorekeeper(store ScoreStore) *Scorekeeper {
	if store == nil {
		store = NewMemoryScoreStore(0)
	}
	high := store.ReadHighScore()
	if high < 0 {
		high = 0
	}
	return &Scorekeeper{store: store, high: high}
}

// Observe records the current score and persists it immediately if it is a
// new record. It returns true when a new record was set.
func (k *Scorekeeper) Observe(score int) bool {
	if score <= k.high {
		return false
	}
	k.high = score
	k.store.WriteHighScore(score)
	return true
}

// HighScore returns the best score seen so far.
func (k *Scorekeeper) HighScore() int {
	return k.high
}
