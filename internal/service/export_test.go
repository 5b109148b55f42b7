package service

// ActiveLocks is the number of partition keys currently held or waited on.
func (s *SagaService) ActiveLocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
