package core

// Entity is a unique identifier for a simulation entity
// Zero is reserved and means "no entity"
type Entity uint64

// NoEntity is the zero id
const NoEntity Entity = 0

// IDSource hands out sequential entity ids, starting at 1
// Single-threaded by design; the simulation allocates only from its tick
type IDSource struct {
	next Entity
}

func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

func (s *IDSource) Next() Entity {
	id := s.next
	s.next++
	return id
}
