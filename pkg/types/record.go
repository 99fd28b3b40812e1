package types

// Record is an ordered mapping of field name to field value. Field order
// follows insertion order, which for loaded corpora is the column order of
// the data source. Records are identified by their load position within a
// category; the position is assigned at load time and never changes.
//
// The zero value is an empty record ready for use.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]string)}
}

// Set stores a field value, preserving first-insertion order for the key.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key, or the empty string if the field is absent.
func (r Record) Get(key string) string {
	return r.values[key]
}

// Has reports whether the field is present, even if its value is empty.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the field names in insertion order. The returned slice must
// not be modified.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// IsEmpty reports whether the record has no fields.
func (r Record) IsEmpty() bool {
	return len(r.keys) == 0
}

// Map returns a copy of the record's fields for serialization. Field order
// is not preserved; use Keys for ordered iteration.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.keys))
	for _, k := range r.keys {
		m[k] = r.values[k]
	}
	return m
}

// Field-name conventions consumed by the recommendation composer. These are
// data-source conventions, not a fixed schema: records missing them are
// simply skipped by the derivations that need them.
const (
	// FieldAntiPatterns holds semicolon-separated anti-pattern phrases on
	// product records.
	FieldAntiPatterns = "anti_patterns"

	// FieldGuidelineName and FieldRule are required for a ux record to
	// contribute a checklist entry. FieldCategory is optional and defaults
	// to "general".
	FieldGuidelineName = "guideline_name"
	FieldRule          = "rule"
	FieldCategory      = "category"
)
