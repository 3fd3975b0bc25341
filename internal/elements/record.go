// Package elements builds the read-only periodic table from an RDF source.
package elements

import "fmt"

// Unknown is shown for every attribute that the data file does not provide.
const Unknown = "Unknown"

// Value is a resolved attribute or Unknown. The zero Value is Unknown.
type Value struct {
	text  string
	known bool
}

func Known(text string) Value {
	if text == "" {
		return Value{}
	}
	return Value{text: text, known: true}
}

func (v Value) IsKnown() bool { return v.known }

// String returns the resolved text or Unknown.
func (v Value) String() string {
	if !v.known {
		return Unknown
	}
	return v.text
}

// Record is everything the detail panel shows for one element.
type Record struct {
	AtomicNumber      int
	Name              Value
	Symbol            Value
	Group             Value
	Period            Value
	Category          Value
	State             Value
	MeltingPoint      Value
	BoilingPoint      Value
	Electronegativity Value
}

// UnknownRecord is the LookupMiss stand-in: every field Unknown except the number.
func UnknownRecord(atomicNumber int) Record {
	return Record{AtomicNumber: atomicNumber}
}

// Field is one labelled line of the detail view.
type Field struct {
	Label string
	Value string
}

// Fields lists the record in display order.
func (r Record) Fields() []Field {
	return []Field{
		{"Name", r.Name.String()},
		{"Atomic Number", fmt.Sprintf("%d", r.AtomicNumber)},
		{"Symbol", r.Symbol.String()},
		{"Group", r.Group.String()},
		{"Period", r.Period.String()},
		{"Category", r.Category.String()},
		{"State", r.State.String()},
		{"Melting Point", r.MeltingPoint.String()},
		{"Boiling Point", r.BoilingPoint.String()},
		{"Electronegativity", r.Electronegativity.String()},
	}
}

// Lines renders Fields as "Label: value" strings.
func (r Record) Lines() []string {
	fields := r.Fields()
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.Label + ": " + f.Value
	}
	return lines
}
