package solver

// Filter predicates are data-carrying values evaluated against a
// candidate word, never closures. Each one is derived from a letter
// record when the possible-word set is recomputed.

type constraintKind uint8

const (
	positionEquals constraintKind = iota
	positionNotEquals
	countAtLeast
	countExactly
	notContains
)

type constraint struct {
	kind   constraintKind
	letter byte
	pos    int
	count  int
}

func (c constraint) match(w string) bool {
	switch c.kind {
	case positionEquals:
		return w[c.pos] == c.letter
	case positionNotEquals:
		return w[c.pos] != c.letter
	case countAtLeast:
		return countLetter(w, c.letter) >= c.count
	case countExactly:
		return countLetter(w, c.letter) == c.count
	case notContains:
		return countLetter(w, c.letter) == 0
	}
	return false
}

func (s *Solver) buildConstraints() []constraint {
	cons := make([]constraint, 0, 2*WordLength)
	for li := range s.letters {
		rec := &s.letters[li]
		c := byte('a' + li)
		for pos := 0; pos < WordLength; pos++ {
			if rec.appearsAt.Contains(pos) {
				cons = append(cons, constraint{kind: positionEquals, letter: c, pos: pos})
			}
			if rec.doesNotAppearAt.Contains(pos) {
				cons = append(cons, constraint{kind: positionNotEquals, letter: c, pos: pos})
			}
		}
		switch {
		case rec.exactCount && rec.count == 0:
			cons = append(cons, constraint{kind: notContains, letter: c})
		case rec.exactCount:
			cons = append(cons, constraint{kind: countExactly, letter: c, count: rec.count})
		case rec.count > 0:
			cons = append(cons, constraint{kind: countAtLeast, letter: c, count: rec.count})
		}
	}
	return cons
}

// recompute narrows the possible-word set to the words satisfying every
// constraint, then runs the inference pass. An empty result is a
// genuine inconsistency between feedback rounds and must roll the
// transaction back, so it is reported as ErrUnsatisfiable.
func (s *Solver) recompute() error {
	cons := s.buildConstraints()
	for i, ok := s.possible.NextSet(0); ok; i, ok = s.possible.NextSet(i + 1) {
		w := s.words[i]
		for _, c := range cons {
			if !c.match(w) {
				s.possible.Clear(i)
				break
			}
		}
	}
	if s.possible.Count() == 0 {
		return ErrUnsatisfiable
	}
	s.infer()
	return nil
}

// infer promotes letters every remaining possible word agrees on to
// EXACT knowledge, exactly as if the feedback had said so. It cannot
// shrink the set it was derived from, so no re-filtering is needed.
// With a single word left there is nothing useful to learn.
func (s *Solver) infer() {
	if s.possible.Count() <= 1 {
		return
	}
	first, _ := s.possible.NextSet(0)
	for pos := 0; pos < WordLength; pos++ {
		if s.known[pos] != 0 {
			continue
		}
		c := s.words[first][pos]
		unanimous := true
		for i, ok := s.possible.NextSet(first + 1); ok; i, ok = s.possible.NextSet(i + 1) {
			if s.words[i][pos] != c {
				unanimous = false
				break
			}
		}
		if !unanimous {
			continue
		}
		rec := &s.letters[c-'a']
		rec.appearsAt.Add(pos)
		if n := rec.appearsAt.Cardinality(); n > rec.count && !rec.exactCount {
			rec.count = n
		}
		s.known[pos] = c
		s.log.Debug().
			Int("position", pos).
			Str("letter", string(c)).
			Msg("every possible word agrees, letter inferred")
	}
}
