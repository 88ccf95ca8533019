package course

import "sync"

// Store provides thread-safe in-memory storage for courses.
// Insertion order is preserved; all reads return copies.
type Store struct {
	mu      sync.RWMutex
	courses []Course

	// onUpdate runs under the write lock after a course was changed, so
	// concurrent updates reach it in the order they were applied. It must
	// not call back into the store.
	onUpdate func(Course)
}

// NewStore creates a store populated with a copy of the given courses.
func NewStore(seed []Course) *Store {
	courses := make([]Course, len(seed))
	copy(courses, seed)
	return &Store{courses: courses}
}

// SetOnUpdate registers a callback invoked after each successful update.
// The callback runs while the store is locked and must not use the store.
func (s *Store) SetOnUpdate(fn func(Course)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// All returns every course in insertion order.
func (s *Store) All() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Course, len(s.courses))
	copy(result, s.courses)
	return result
}

// Len returns the number of courses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// Get returns the first course with the given id.
func (s *Store) Get(id int) (Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// UpdateTopic overwrites the topic of every course with the given id and
// returns the first one after the change. Nothing is touched when no course
// matches.
func (s *Store) UpdateTopic(id int, topic string) (Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		updated Course
		found   bool
	)
	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		s.courses[i].Topic = topic
		if !found {
			updated = s.courses[i]
			found = true
		}
	}
	if found && s.onUpdate != nil {
		s.onUpdate(updated)
	}
	return updated, found
}
