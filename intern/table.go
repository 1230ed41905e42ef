// Package intern implements a de-duplicating string table. Each distinct
// text value is stored exactly once, receives a stable numeric identifier,
// and can be looked up by either its text or its identifier in logarithmic
// time.
//
// Every record lives in a single owning arena; two ordered indices (one by
// text, one by id) map their keys to arena slots, so there is exactly one
// mutable record per logical value and the two indices can never disagree
// about its contents.
//
// A Table is not safe for concurrent use. Because every mutating operation
// spans both indices, a concurrent wrapper must serialize access to the
// whole table, not to the indices individually.
package intern

import (
	"fortio.org/safecast"

	"strtab/deepsize"
	"strtab/intern/index"
)

// Table is a de-duplicating string table. The zero value is not usable;
// create instances with New.
type Table struct {
	recs     map[int64]*Record // slot → record (the owning arena)
	byText   index.Index       // text → slot, lexicographic order
	byID     index.Index       // id → slot, numeric order
	nextID   uint32            // next identifier to assign on Add
	nextSlot int64             // next arena slot to allocate
}

// New creates an empty table with both indices initialized.
func New() *Table {
	return &Table{
		recs:   make(map[int64]*Record),
		byText: index.NewBTree(compareText),
		byID:   index.NewBTree(compareID),
	}
}

// allocateSlot reserves and returns the next arena slot.
func (t *Table) allocateSlot() int64 {
	slot := t.nextSlot
	t.nextSlot++
	return slot
}

// Add interns text. If an equal value already exists, its reference count
// is incremented and Add returns StatusFound. Otherwise the value is
// inserted with the table's next identifier and a reference count of 1,
// also returning StatusFound. StatusFailed reports an invalid argument or
// an exhausted identifier space; a failed Add leaves the table unchanged.
// The final identifier (MaxUint32) is deliberately reserved so the counter
// can never wrap onto a live identifier.
func (t *Table) Add(text string) Status {
	if t == nil {
		return StatusFailed
	}

	if slot, ok := t.byText.Get(text); ok {
		t.recs[slot].RefCount++
		return StatusFound
	}

	// Refuse before mutating anything if assigning this id would wrap the
	// counter: a wrapped nextID could collide with a live identifier.
	if _, err := safecast.Conv[uint32](uint64(t.nextID) + 1); err != nil {
		return StatusFailed
	}

	slot := t.allocateSlot()
	if !t.byText.Put(text, slot) {
		return StatusFailed
	}
	if !t.byID.Put(t.nextID, slot) {
		// Roll back the text entry so both indices stay in step.
		t.byText.Delete(text)
		return StatusFailed
	}

	t.recs[slot] = &Record{RefCount: 1, ID: t.nextID, Text: text}
	t.nextID++
	return StatusFound
}

// Remove deletes the entry with the given text from both indices and the
// arena, regardless of its reference count. Callers wanting shared-
// ownership semantics must consult RefCount before removing. Returns
// StatusFailed when the text is absent. Identifiers of the remaining
// entries are not compacted.
func (t *Table) Remove(text string) Status {
	if t == nil {
		return StatusFailed
	}

	slot, ok := t.byText.Get(text)
	if !ok {
		return StatusFailed
	}
	rec := t.recs[slot]

	t.byText.Delete(text)
	t.byID.Delete(rec.ID)
	delete(t.recs, slot)
	return StatusFound
}

// FindByText returns the record holding exactly the given text, or nil.
// The returned pointer aliases table storage and stays valid only until
// the next mutating operation.
func (t *Table) FindByText(text string) *Record {
	if t == nil {
		return nil
	}
	slot, ok := t.byText.Get(text)
	if !ok {
		return nil
	}
	return t.recs[slot]
}

// FindByID returns the record assigned the given identifier, or nil.
// The returned pointer aliases table storage and stays valid only until
// the next mutating operation.
func (t *Table) FindByID(id uint32) *Record {
	if t == nil {
		return nil
	}
	slot, ok := t.byID.Get(id)
	if !ok {
		return nil
	}
	return t.recs[slot]
}

// Walk invokes fn once per record in strictly ascending key order:
// lexicographic when key is KeyText, numeric when key is KeyID. fn must
// not mutate the table. The traversal always runs to completion.
func (t *Table) Walk(key Key, fn func(*Record)) {
	if t == nil || fn == nil {
		return
	}
	idx := t.byText
	if key == KeyID {
		idx = t.byID
	}
	idx.Ascend(func(_ any, slot int64) {
		fn(t.recs[slot])
	})
}

// Renumber rebuilds the id index from scratch, assigning fresh dense
// identifiers 0..n-1 in ascending text order. Identifiers obtained before
// a Renumber are invalidated by it. Reference counts and text values are
// untouched; afterwards the next identifier to assign equals Len.
func (t *Table) Renumber() {
	if t == nil {
		return
	}

	byID := index.NewBTree(compareID)
	var next uint32
	t.byText.Ascend(func(_ any, slot int64) {
		rec := t.recs[slot]
		rec.ID = next
		byID.Put(next, slot)
		next++
	})

	t.byID = byID
	t.nextID = next
}

// Clone produces an independent table containing every distinct text value
// of t, re-interned in ascending id order through the ordinary Add path.
// Every copied record therefore starts with a reference count of 1; counts
// from the source are not carried over. Cloning a nil table yields nil.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	dst := New()
	t.byID.Ascend(func(_ any, slot int64) {
		dst.Add(t.recs[slot].Text)
	})
	return dst
}

// Len returns the number of distinct text values in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.byText.Len()
}

// NextID returns the identifier the next fresh Add would assign.
func (t *Table) NextID() uint32 {
	if t == nil {
		return 0
	}
	return t.nextID
}

// MemoryUsage estimates the total heap memory occupied by the table,
// including the arena, both indices, and all text payloads.
func (t *Table) MemoryUsage() int64 {
	if t == nil {
		return 0
	}
	return deepsize.Of(t)
}
