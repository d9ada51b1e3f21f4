package solver

import "fmt"

// applyFeedback folds one round of feedback into the letter records and
// the known-letters board. The caller holds a snapshot; partial
// mutation before a Contradiction is undone by the rollback.
func (s *Solver) applyFeedback(word string, fb Feedback) error {
	// Positional knowledge. PRESENT and ABSENT both prove the letter
	// does not occupy that slot.
	for i := 0; i < WordLength; i++ {
		c := word[i]
		rec := &s.letters[c-'a']
		if fb[i] == Exact {
			if s.known[i] != 0 && s.known[i] != c {
				return fmt.Errorf("%w: position %d is already bound to %q, got EXACT %q",
					ErrContradiction, i, string(s.known[i]), string(c))
			}
			if rec.doesNotAppearAt.Contains(i) {
				return fmt.Errorf("%w: letter %q was excluded from position %d, got EXACT",
					ErrContradiction, string(c), i)
			}
			if s.known[i] == 0 {
				s.known[i] = c
				rec.appearsAt.Add(i)
			}
		} else {
			if rec.appearsAt.Contains(i) {
				return fmt.Errorf("%w: letter %q is bound at position %d, got %s",
					ErrContradiction, string(c), i, fb[i])
			}
			rec.doesNotAppearAt.Add(i)
		}
	}

	// Count knowledge, grouped per distinct letter of the guess. A
	// repeated letter encodes position and count jointly: every
	// EXACT/PRESENT occurrence raises the floor, and any ABSENT
	// occurrence proves the secret holds no further copies. A round
	// crediting more copies than a frozen count is contradictory.
	var exact, present, absent [26]int
	var seen [26]bool
	for i := 0; i < WordLength; i++ {
		li := word[i] - 'a'
		seen[li] = true
		switch fb[i] {
		case Exact:
			exact[li]++
		case Present:
			present[li]++
		default:
			absent[li]++
		}
	}
	for li := range seen {
		if !seen[li] {
			continue
		}
		rec := &s.letters[li]
		hits := exact[li] + present[li]
		if rec.exactCount && hits > rec.count {
			return fmt.Errorf("%w: letter %q is fixed at %d occurrences, got %d hits",
				ErrContradiction, string(rune('a'+li)), rec.count, hits)
		}
		if hits > rec.count {
			rec.count = hits
		}
		if absent[li] > 0 {
			rec.exactCount = true
		}
	}
	return nil
}

func (m Mark) String() string {
	switch m {
	case Exact:
		return "EXACT"
	case Present:
		return "PRESENT"
	case Absent:
		return "ABSENT"
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}
