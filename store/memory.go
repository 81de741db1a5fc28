package store

// termPair keys the two-position indexes.
type termPair struct {
	a, b Term
}

// Memory is an in-memory Store with set semantics: adding a triple twice
// has no effect. Query results preserve first-insertion order so repeated
// runs over the same input are deterministic.
type Memory struct {
	triples []Triple
	seen    map[Triple]bool

	bySubject map[Term][]PredicateObject
	byPredObj map[termPair][]Term // (predicate, object) -> subjects
	bySubPred map[termPair][]Term // (subject, predicate) -> objects
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		seen:      make(map[Triple]bool),
		bySubject: make(map[Term][]PredicateObject),
		byPredObj: make(map[termPair][]Term),
		bySubPred: make(map[termPair][]Term),
	}
}

// Add inserts a triple, ignoring duplicates.
func (m *Memory) Add(t Triple) {
	if m.seen[t] {
		return
	}
	m.seen[t] = true
	m.triples = append(m.triples, t)

	m.bySubject[t.Subject] = append(m.bySubject[t.Subject], PredicateObject{
		Predicate: t.Predicate,
		Object:    t.Object,
	})
	m.byPredObj[termPair{t.Predicate, t.Object}] = append(
		m.byPredObj[termPair{t.Predicate, t.Object}], t.Subject)
	m.bySubPred[termPair{t.Subject, t.Predicate}] = append(
		m.bySubPred[termPair{t.Subject, t.Predicate}], t.Object)
}

// Len returns the number of distinct triples held.
func (m *Memory) Len() int {
	return len(m.triples)
}

// Subjects returns every subject of a triple matching (?, predicate, object).
func (m *Memory) Subjects(predicate, object Term) []Term {
	if !predicate.IsWildcard() && !object.IsWildcard() {
		return m.byPredObj[termPair{predicate, object}]
	}
	var out []Term
	dup := make(map[Term]bool)
	for _, t := range m.triples {
		if !matches(predicate, t.Predicate) || !matches(object, t.Object) {
			continue
		}
		if !dup[t.Subject] {
			dup[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// Objects returns every object of a triple matching (subject, predicate, ?).
func (m *Memory) Objects(subject, predicate Term) []Term {
	if !subject.IsWildcard() && !predicate.IsWildcard() {
		return m.bySubPred[termPair{subject, predicate}]
	}
	var out []Term
	dup := make(map[Term]bool)
	for _, t := range m.triples {
		if !matches(subject, t.Subject) || !matches(predicate, t.Predicate) {
			continue
		}
		if !dup[t.Object] {
			dup[t.Object] = true
			out = append(out, t.Object)
		}
	}
	return out
}

// PredicateObjects returns every outgoing (predicate, object) pair of the
// subject.
func (m *Memory) PredicateObjects(subject Term) []PredicateObject {
	return m.bySubject[subject]
}

// Contains reports whether any triple matches the pattern; wildcard terms
// match every position.
func (m *Memory) Contains(subject, predicate, object Term) bool {
	switch {
	case !subject.IsWildcard() && !predicate.IsWildcard() && !object.IsWildcard():
		return m.seen[Triple{subject, predicate, object}]
	case !subject.IsWildcard() && !predicate.IsWildcard():
		return len(m.bySubPred[termPair{subject, predicate}]) > 0
	case !predicate.IsWildcard() && !object.IsWildcard():
		return len(m.byPredObj[termPair{predicate, object}]) > 0
	case !subject.IsWildcard() && predicate.IsWildcard() && object.IsWildcard():
		return len(m.bySubject[subject]) > 0
	}
	for _, t := range m.triples {
		if matches(subject, t.Subject) && matches(predicate, t.Predicate) && matches(object, t.Object) {
			return true
		}
	}
	return false
}

func matches(pattern, term Term) bool {
	return pattern.IsWildcard() || pattern == term
}
