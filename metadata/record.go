package metadata

// Attribute names one field of a Record
type Attribute string

const (
	Speaker  Attribute = "speaker"
	Gender   Attribute = "gender"
	Language Attribute = "language"
	Item     Attribute = "item"
)

// Attributes lists every attribute a Record carries
var Attributes = []Attribute{Speaker, Gender, Language, Item}

// Valid reports whether a is one of the four record attributes
func (a Attribute) Valid() bool {
	switch a {
	case Speaker, Gender, Language, Item:
		return true
	}
	return false
}

type Record struct {
	Speaker  string // Speaker ID, shared by every recording of one person
	Gender   string // "m" or "f"
	Language string // "ch" or "en"
	Item     string // "1".."10", no leading zero
}

// Get returns the value stored under attr. The second result is false for unknown attributes.
func (r Record) Get(attr Attribute) (string, bool) {
	switch attr {
	case Speaker:
		return r.Speaker, true
	case Gender:
		return r.Gender, true
	case Language:
		return r.Language, true
	case Item:
		return r.Item, true
	}
	return "", false
}

// Table maps audio file paths to their Record.
// It is read-only once built and keeps paths in first-insertion order.
type Table struct {
	records map[string]Record
	paths   []string
}

// Entry pairs a path with its record when building a Table
type Entry struct {
	Path   string
	Record Record
}

// NewTable builds a Table from entries. A repeated path overwrites the earlier record but keeps its position.
func NewTable(entries ...Entry) *Table {
	t := &Table{
		records: make(map[string]Record, len(entries)),
		paths:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		t.put(e.Path, e.Record)
	}
	return t
}

func (t *Table) put(path string, rec Record) {
	if _, exists := t.records[path]; !exists {
		t.paths = append(t.paths, path)
	}
	t.records[path] = rec
}

// Len returns the number of files in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.paths)
}

// Paths returns a copy of the table keys in table order
func (t *Table) Paths() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Lookup returns the record for path
func (t *Table) Lookup(path string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	rec, ok := t.records[path]
	return rec, ok
}

// Each calls fn for every entry in table order
func (t *Table) Each(fn func(path string, rec Record)) {
	if t == nil {
		return
	}
	for _, p := range t.paths {
		fn(p, t.records[p])
	}
}
