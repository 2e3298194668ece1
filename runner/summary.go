package runner

// Summary accumulates order-independent per-run statistics.
type Summary struct {
	EventsWithHit int64
}

// Merge folds other into s. The merge is plain addition, commutative and
// associative, so the merged result does not depend on the order in which
// workers finish.
func (s *Summary) Merge(other Summary) {
	s.EventsWithHit += other.EventsWithHit
}
