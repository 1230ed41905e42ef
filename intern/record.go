package intern

// Record is a single interned string entry: a reference count, the numeric
// identifier assigned at insertion, and the de-duplicated text value.
type Record struct {
	RefCount uint32
	ID       uint32
	Text     string
}

// NewRecord creates a record holding text under the given id. The reference
// count starts at zero; the owning table sets it when the record enters the
// indices.
func NewRecord(text string, id uint32) *Record {
	return &Record{ID: id, Text: text}
}

// Clone returns a deep copy of r. Cloning a nil record yields nil.
// Go strings are immutable, so copying the struct copies the payload.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// CopyFrom overwrites r's fields with src's. A nil receiver or a nil
// source is a no-op.
func (r *Record) CopyFrom(src *Record) {
	if r == nil || src == nil {
		return
	}
	*r = *src
}
