package cache

import (
	"sync"
	"time"
)

type entry struct {
	productID int64
	value     interface{}
	expiresAt time.Time
}

// MemoryStore потокобезопасное in-memory хранилище записей кеша с TTL
// Протухшие записи отбрасываются лениво при чтении; janitor периодически
// подчищает то, что никто не перечитывает
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uint64]entry
}

// NewMemoryStore создает новое пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[uint64]entry),
	}
}

// Get возвращает значение по ключу, если запись существует и не протухла
func (s *MemoryStore) Get(key uint64, now time.Time) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || now.After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Put сохраняет значение с моментом истечения
func (s *MemoryStore) Put(key uint64, productID int64, value interface{}, expiresAt time.Time) {
	s.mu.Lock()
	s.entries[key] = entry{productID: productID, value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

// InvalidateProduct удаляет все записи указанного продукта
// Обычно не требуется — смена версии конфигурации меняет fingerprint — но
// позволяет освободить память немедленно после редактирования продукта
func (s *MemoryStore) InvalidateProduct(productID int64) {
	s.mu.Lock()
	for key, e := range s.entries {
		if e.productID == productID {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Cleanup удаляет все протухшие записи
func (s *MemoryStore) Cleanup(now time.Time) {
	s.mu.Lock()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Len возвращает текущее количество записей (включая протухшие)
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// StartJanitor запускает фоновую горутину периодической очистки
// Останавливается закрытием stopCh
func (s *MemoryStore) StartJanitor(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Cleanup(time.Now())
			case <-stopCh:
				return
			}
		}
	}()
}
