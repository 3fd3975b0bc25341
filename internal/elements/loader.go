package elements

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"periodic-tutor/internal/graph"
	"periodic-tutor/internal/logger"
)

const DefaultNamespace = "http://periodic.org/ontology#"

// Query variables bound by the element select.
const (
	varAtomicNumber      = "atomicNumber"
	varSymbol            = "symbol"
	varGroup             = "group"
	varPeriod            = "period"
	varCategory          = "category"
	varState             = "state"
	varMeltingPoint      = "meltingPoint"
	varBoilingPoint      = "boilingPoint"
	varElectronegativity = "electronegativity"
)

// LoadError reports a data file that is missing, unreadable or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load elements from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadStats summarises one load for logging and tests.
type LoadStats struct {
	Rows        int
	Loaded      int
	Skipped     int
	Overwritten int
	Duration    time.Duration
}

// Loader turns an element graph into a Table.
type Loader struct {
	namespace string
	logger    logger.Logger
}

func NewLoader(namespace string, log logger.Logger) *Loader {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{namespace: namespace, logger: log}
}

// Options configures LoadWithOptions. Zero values select the default
// namespace and no logging.
type Options struct {
	Namespace string
	Logger    logger.Logger
}

// Load reads the element table from the default namespace without logging.
func Load(path string) (*Table, error) {
	return LoadWithOptions(path, Options{})
}

func LoadWithOptions(path string, opts Options) (*Table, error) {
	return NewLoader(opts.Namespace, opts.Logger).Load(path)
}

// Load parses path and returns the table. Any parse failure is a *LoadError;
// the caller decides whether to continue with Empty().
func (l *Loader) Load(path string) (*Table, error) {
	start := time.Now()

	g, err := graph.ParseFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	l.logger.Debug("ElementLoader", "graph parsed", map[string]interface{}{
		"path":    path,
		"triples": g.Len(),
		"format":  graph.FormatForPath(path).String(),
	})

	table, stats := l.FromGraph(g)
	stats.Duration = time.Since(start)

	fields := map[string]interface{}{
		"path":        path,
		"rows":        stats.Rows,
		"skipped":     stats.Skipped,
		"overwritten": stats.Overwritten,
		"duration_ms": stats.Duration.Milliseconds(),
	}
	message := fmt.Sprintf("Loaded %d elements.", stats.Loaded)
	if stats.Loaded == 0 {
		l.logger.Warning("ElementLoader", message, fields)
	} else {
		l.logger.Info("ElementLoader", message, fields)
	}

	return table, nil
}

// Query returns the fixed element select for the loader's namespace.
func (l *Loader) Query() graph.Select {
	ns := l.namespace
	return graph.Select{
		Class: ns + "Element",
		Required: []graph.Pattern{
			{Variable: varAtomicNumber, Predicate: ns + "hasAtomicNumber"},
			{Variable: varSymbol, Predicate: ns + "hasSymbol"},
		},
		Optional: []graph.Pattern{
			{Variable: varGroup, Predicate: ns + "belongsToGroup"},
			{Variable: varPeriod, Predicate: ns + "belongsToPeriod"},
			{Variable: varCategory, Predicate: ns + "hasCategory"},
			{Variable: varState, Predicate: ns + "hasState"},
			{Variable: varMeltingPoint, Predicate: ns + "hasMeltingPoint"},
			{Variable: varBoilingPoint, Predicate: ns + "hasBoilingPoint"},
			{Variable: varElectronegativity, Predicate: ns + "hasElectronegativity"},
		},
	}
}

// FromGraph runs the element select over g. Rows are applied in subject
// order, so a later subject with the same atomic number replaces an earlier one.
func (l *Loader) FromGraph(g *graph.Graph) (*Table, LoadStats) {
	rows := g.Select(l.Query())
	records := make(map[int]Record, len(rows))
	stats := LoadStats{Rows: len(rows)}

	for _, row := range rows {
		record, err := recordFromRow(row)
		if err != nil {
			stats.Skipped++
			l.logger.Warning("ElementLoader", "element skipped", map[string]interface{}{
				"subject": row.Subject.String(),
				"reason":  err.Error(),
			})
			continue
		}

		if previous, exists := records[record.AtomicNumber]; exists {
			stats.Overwritten++
			l.logger.Debug("ElementLoader", "duplicate atomic number, keeping last", map[string]interface{}{
				"atomic_number": record.AtomicNumber,
				"replaced":      previous.Name.String(),
				"by":            record.Name.String(),
			})
		}
		records[record.AtomicNumber] = record
	}

	stats.Loaded = len(records)
	return &Table{records: records}, stats
}

func recordFromRow(row graph.Row) (Record, error) {
	numberTerm, _ := row.Get(varAtomicNumber)
	number, err := strconv.Atoi(strings.TrimSpace(numberTerm.Text()))
	if err != nil {
		return Record{}, fmt.Errorf("atomic number %q is not an integer", numberTerm.Value)
	}
	if number <= 0 {
		return Record{}, fmt.Errorf("atomic number %d is not positive", number)
	}

	symbolTerm, _ := row.Get(varSymbol)
	symbol := strings.TrimSpace(symbolTerm.Text())
	if symbol == "" {
		return Record{}, fmt.Errorf("empty symbol")
	}

	var name string
	if row.Subject.IsIRI() {
		name = graph.LocalName(row.Subject.Value)
	}

	return Record{
		AtomicNumber:      number,
		Name:              Known(name),
		Symbol:            Known(symbol),
		Group:             optional(row, varGroup),
		Period:            optional(row, varPeriod),
		Category:          optional(row, varCategory),
		State:             optional(row, varState),
		MeltingPoint:      optional(row, varMeltingPoint),
		BoilingPoint:      optional(row, varBoilingPoint),
		Electronegativity: optional(row, varElectronegativity),
	}, nil
}

// optional resolves a bound term to its display text; references keep only
// their local name.
func optional(row graph.Row, variable string) Value {
	term, ok := row.Get(variable)
	if !ok {
		return Value{}
	}
	return Known(strings.TrimSpace(term.Text()))
}
