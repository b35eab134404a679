package memstore

import "sync"

// articleLocks hands out one mutex per article id. Locks are dropped when
// their article is deleted.
type articleLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newArticleLocks() *articleLocks {
	return &articleLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *articleLocks) get(articleID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[articleID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[articleID] = lock
	}

	return lock
}

// withLock runs fn while holding the article lock.
func (l *articleLocks) withLock(articleID int, fn func() error) error {
	lock := l.get(articleID)
	lock.Lock()
	defer lock.Unlock()

	return fn()
}

func (l *articleLocks) forget(articleID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.locks, articleID)
}
