package graph

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

// Format is an RDF serialization understood by Decode.
type Format int

const (
	FormatRDFXML Format = iota
	FormatTurtle
	FormatNTriples
)

func (f Format) String() string {
	switch f {
	case FormatTurtle:
		return "turtle"
	case FormatNTriples:
		return "n-triples"
	default:
		return "rdf/xml"
	}
}

func (f Format) decoderFormat() rdf.Format {
	switch f {
	case FormatTurtle:
		return rdf.Turtle
	case FormatNTriples:
		return rdf.NTriples
	default:
		return rdf.RDFXML
	}
}

// Datatypes that carry no information beyond a plain or language-tagged string.
const (
	xsdString     = "http://www.w3.org/2001/XMLSchema#string"
	rdfLangString = NamespaceRDF + "langString"
)

// FormatForPath picks the syntax from the file extension; anything
// unrecognised is read as RDF/XML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl", ".turtle":
		return FormatTurtle
	case ".nt":
		return FormatNTriples
	default:
		return FormatRDFXML
	}
}

// ParseFile opens path and decodes it with the format implied by its extension.
func ParseFile(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file, FormatForPath(path))
}

// Decode reads every triple from r into a new Graph.
func Decode(r io.Reader, format Format) (*Graph, error) {
	dec := rdf.NewTripleDecoder(r, format.decoderFormat())
	g := New()

	for {
		tr, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", format, err)
		}

		triple, err := convertTriple(tr)
		if err != nil {
			return nil, err
		}
		if err := g.Add(triple); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func convertTriple(tr rdf.Triple) (Triple, error) {
	subject, err := convertTerm(tr.Subj)
	if err != nil {
		return Triple{}, err
	}
	predicate, err := convertTerm(tr.Pred)
	if err != nil {
		return Triple{}, err
	}
	object, err := convertTerm(tr.Obj)
	if err != nil {
		return Triple{}, err
	}
	return NewTriple(subject, predicate, object), nil
}

func convertTerm(term interface{}) (Term, error) {
	switch v := term.(type) {
	case rdf.IRI:
		return IRI(v.String()), nil
	case rdf.Literal:
		return convertLiteral(v), nil
	case rdf.Blank:
		return Blank(strings.TrimPrefix(v.String(), "_:")), nil
	default:
		return Term{}, fmt.Errorf("unsupported term type %T", term)
	}
}

// convertLiteral keeps the lexical form, the language tag and any datatype
// other than the implicit string types.
func convertLiteral(l rdf.Literal) Term {
	datatype := l.DataType.String()
	if datatype == xsdString || datatype == rdfLangString {
		datatype = ""
	}
	term := TypedLiteral(l.String(), datatype)
	term.Lang = l.Lang()
	return term
}
