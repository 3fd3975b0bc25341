package graph

import "fmt"

// Graph is an in-memory triple set indexed subject -> predicate -> objects.
// Subjects keep the order in which they were first added and objects keep
// their parse order, so "last parsed" is well defined for callers.
type Graph struct {
	subjects []Term
	spo      map[string]map[string][]Term
	count    int
}

func New() *Graph {
	return &Graph{
		spo: make(map[string]map[string][]Term),
	}
}

// Add inserts a triple. Adding an existing triple is a no-op.
func (g *Graph) Add(t Triple) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid triple %s", t.NTriples())
	}

	key := t.Subject.String()
	predicates, ok := g.spo[key]
	if !ok {
		predicates = make(map[string][]Term)
		g.spo[key] = predicates
		g.subjects = append(g.subjects, t.Subject)
	}

	for _, existing := range predicates[t.Predicate.Value] {
		if existing == t.Object {
			return nil
		}
	}

	predicates[t.Predicate.Value] = append(predicates[t.Predicate.Value], t.Object)
	g.count++
	return nil
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return g.count
}

// Subjects returns subjects in first-seen order.
func (g *Graph) Subjects() []Term {
	out := make([]Term, len(g.subjects))
	copy(out, g.subjects)
	return out
}

// Objects returns every object for subject/predicate in parse order.
func (g *Graph) Objects(subject Term, predicate string) []Term {
	objects := g.spo[subject.String()][predicate]
	out := make([]Term, len(objects))
	copy(out, objects)
	return out
}

// Last returns the most recently parsed object for subject/predicate.
func (g *Graph) Last(subject Term, predicate string) (Term, bool) {
	objects := g.spo[subject.String()][predicate]
	if len(objects) == 0 {
		return Term{}, false
	}
	return objects[len(objects)-1], true
}

// Has reports whether the exact triple is present.
func (g *Graph) Has(subject Term, predicate string, object Term) bool {
	for _, o := range g.spo[subject.String()][predicate] {
		if o == object {
			return true
		}
	}
	return false
}

// SubjectsOfType returns, in first-seen order, subjects with rdf:type class.
func (g *Graph) SubjectsOfType(class string) []Term {
	classTerm := IRI(class)
	var out []Term
	for _, subject := range g.subjects {
		if g.Has(subject, RDFType, classTerm) {
			out = append(out, subject)
		}
	}
	return out
}
