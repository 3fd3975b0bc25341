// Package graph holds a small in-memory RDF graph: terms, triples, an
// insertion-ordered subject index and a fixed-shape pattern select.
package graph

import (
	"fmt"
	"strings"
)

// Namespaces used by every element data file.
const (
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFType      = NamespaceRDF + "type"
)

// TermKind distinguishes IRI references from literals and blank nodes.
type TermKind int

const (
	KindIRI TermKind = iota
	KindLiteral
	KindBlank
)

func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindLiteral:
		return "literal"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Term is one node of a triple. Value holds the IRI, the lexical form of a
// literal, or the blank node label.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

func TypedLiteral(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

func (t Term) IsIRI() bool     { return t.Kind == KindIRI }
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }
func (t Term) IsZero() bool    { return t == Term{} }

// String renders the term in N-Triples style.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		s := fmt.Sprintf("%q", t.Value)
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" {
			return s + "^^<" + t.Datatype + ">"
		}
		return s
	}
}

// Text is the display form: the local name of an IRI, the literal's lexical
// form, or the blank label.
func (t Term) Text() string {
	if t.Kind == KindIRI {
		return LocalName(t.Value)
	}
	return t.Value
}

// LocalName returns the fragment after the last '#', or failing that after the
// last '/'. Values with neither separator are returned unchanged.
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// Triple represents an RDF Subject-Predicate-Object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func NewTriple(subject, predicate, object Term) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// IsValid reports whether the triple is well formed: IRI or blank subject,
// IRI predicate, any non-empty object.
func (t Triple) IsValid() bool {
	if t.Subject.IsZero() || t.Object.IsZero() {
		return false
	}
	if t.Subject.Kind == KindLiteral {
		return false
	}
	return t.Predicate.Kind == KindIRI && t.Predicate.Value != ""
}

// NTriples returns the triple as one N-Triples line.
func (t Triple) NTriples() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}
