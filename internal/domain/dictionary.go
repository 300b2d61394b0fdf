package domain

// Entry is a single dictionary row: a Toki Pona word, the form it is
// displayed as in the target script, and a short gloss.
type Entry struct {
	Word    string `json:"word"`
	Display string `json:"display"`
	Gloss   string `json:"gloss"`
}

// Dictionary is an insertion-ordered word table.
//
// Iteration order is the order in which words were first inserted. Reverse
// conversion scans entries in this order, so it is part of the contract.
// Re-inserting an existing word keeps its original position and replaces
// its values. A Dictionary must not be modified once it has been handed to
// a converter; build a new one instead.
type Dictionary struct {
	words   []string
	entries map[string]Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Entry)}
}

// Set inserts or replaces the entry for word.
func (d *Dictionary) Set(word, display, gloss string) {
	if _, ok := d.entries[word]; !ok {
		d.words = append(d.words, word)
	}
	d.entries[word] = Entry{Word: word, Display: display, Gloss: gloss}
}

// Lookup returns the entry for word and whether it exists.
func (d *Dictionary) Lookup(word string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[word]
	return e, ok
}

// Has reports whether word is a key of the dictionary.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.Lookup(word)
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns the keys in insertion order. The slice is a copy.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Entries returns all entries in insertion order.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, len(d.words))
	for i, w := range d.words {
		out[i] = d.entries[w]
	}
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (d *Dictionary) Each(fn func(Entry) bool) {
	if d == nil {
		return
	}
	for _, w := range d.words {
		if !fn(d.entries[w]) {
			return
		}
	}
}
