package bootstrap

// cleanupStack releases acquired handles in reverse acquisition order.
type cleanupStack struct {
	entries []cleanupEntry
}

type cleanupEntry struct {
	name    string
	release func()
}

func (s *cleanupStack) push(name string, release func()) {
	s.entries = append(s.entries, cleanupEntry{name: name, release: release})
}

func (s *cleanupStack) len() int {
	return len(s.entries)
}

// unwind pops and runs every entry. visit, when non-nil, is told each entry's name before
// it is released.
func (s *cleanupStack) unwind(visit func(name string)) {
	for len(s.entries) > 0 {
		last := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]

		if visit != nil {
			visit(last.name)
		}
		last.release()
	}
}
