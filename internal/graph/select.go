package graph

// Pattern binds Variable to the object of Predicate on the matched subject.
type Pattern struct {
	Variable  string
	Predicate string
}

// Select is a fixed-shape query: every subject typed Class that has all
// Required predicates, plus whichever Optional predicates it carries. It is
// the star-shaped subset of
//
//	SELECT * WHERE { ?s rdf:type <Class> ; <req> ?v . OPTIONAL { ?s <opt> ?w } }
//
// When a predicate has several objects the last parsed one is bound.
type Select struct {
	Class    string
	Required []Pattern
	Optional []Pattern
}

// Row is one solution of a Select.
type Row struct {
	Subject  Term
	bindings map[string]Term
}

// Get returns the term bound to variable, if any.
func (r Row) Get(variable string) (Term, bool) {
	t, ok := r.bindings[variable]
	return t, ok
}

// Bound reports how many variables the row binds.
func (r Row) Bound() int {
	return len(r.bindings)
}

// Select evaluates q and returns rows in subject first-seen order.
func (g *Graph) Select(q Select) []Row {
	var rows []Row

	for _, subject := range g.SubjectsOfType(q.Class) {
		row, ok := g.solve(subject, q)
		if ok {
			rows = append(rows, row)
		}
	}

	return rows
}

func (g *Graph) solve(subject Term, q Select) (Row, bool) {
	row := Row{
		Subject:  subject,
		bindings: make(map[string]Term, len(q.Required)+len(q.Optional)),
	}

	for _, p := range q.Required {
		object, ok := g.Last(subject, p.Predicate)
		if !ok {
			return Row{}, false
		}
		row.bindings[p.Variable] = object
	}

	for _, p := range q.Optional {
		if object, ok := g.Last(subject, p.Predicate); ok {
			row.bindings[p.Variable] = object
		}
	}

	return row, true
}
