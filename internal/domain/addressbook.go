package domain

import "iter"

// AddressBook keys records by contact name. Iteration follows the order in
// which names were first added; overwriting a name keeps its position.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: map[string]*Record{},
	}
}

// AddRecord stores r under its name, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	if r == nil {
		return
	}
	key := r.name.value
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find looks a record up by exact name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name, if any.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, k := range b.order {
		if k == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns the stored names in iteration order.
func (b *AddressBook) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Records returns a snapshot of the stored records in iteration order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}

// Iterator snapshots the book and returns a cursor over batches of at most
// batchSize records.
func (b *AddressBook) Iterator(batchSize int) (*BatchIterator, error) {
	if batchSize <= 0 {
		return nil, &OpError{
			Op:   "addressbook.iterator",
			Kind: KindValidation,
			Err:  ErrInvalidBatchSize,
		}
	}
	return &BatchIterator{
		snapshot: b.Records(),
		size:     batchSize,
	}, nil
}

// Batches is a range-over-func view of Iterator. An invalid batchSize yields
// nothing; use Iterator to observe the error.
func (b *AddressBook) Batches(batchSize int) iter.Seq[[]*Record] {
	return func(yield func([]*Record) bool) {
		it, err := b.Iterator(batchSize)
		if err != nil {
			return
		}
		for {
			batch, ok := it.Next()
			if !ok || !yield(batch) {
				return
			}
		}
	}
}

// BatchIterator walks a fixed snapshot of records in consecutive chunks. It
// cannot be restarted.
type BatchIterator struct {
	snapshot []*Record
	size     int
	pos      int
}

// Next returns the next batch, or false once every record has been returned.
func (it *BatchIterator) Next() ([]*Record, bool) {
	if it.pos >= len(it.snapshot) {
		return nil, false
	}
	end := min(it.pos+it.size, len(it.snapshot))
	batch := make([]*Record, end-it.pos)
	copy(batch, it.snapshot[it.pos:end])
	it.pos = end
	return batch, true
}

// Remaining reports how many records have not been returned yet.
func (it *BatchIterator) Remaining() int {
	return len(it.snapshot) - it.pos
}
