package intrabc

const (
	crcBits = 16
	crcMask = 1<<crcBits - 1
)

// SizeIndex maps a hashed block edge (2..128) to its index 0..6, or -1.
func SizeIndex(size int) int {
	switch size {
	case 2:
		return 0
	case 4:
		return 1
	case 8:
		return 2
	case 16:
		return 3
	case 32:
		return 4
	case 64:
		return 5
	case 128:
		return 6
	default:
		return -1
	}
}

// Key forms the table key of a block from its edge and primary hash.
func Key(size int, hash1 uint32) uint32 {
	return hash1&crcMask + uint32(SizeIndex(size))<<crcBits
}

// Entry is one hashed block position.
type Entry struct {
	X, Y  int
	Hash2 uint32
}

// Table maps block keys to the positions hashing to them. It is built by
// one worker and read-only afterwards.
type Table struct {
	buckets map[uint32][]Entry
	n       int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{buckets: make(map[uint32][]Entry)}
}

// Add enters e under key.
func (t *Table) Add(key uint32, e Entry) {
	t.buckets[key] = append(t.buckets[key], e)
	t.n++
}

// Lookup returns the entries under key. The slice must not be modified.
func (t *Table) Lookup(key uint32) []Entry {
	return t.buckets[key]
}

// HasExactMatch reports whether a block with both hashes is present.
func (t *Table) HasExactMatch(key, hash2 uint32) bool {
	for _, e := range t.buckets[key] {
		if e.Hash2 == hash2 {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (t *Table) Len() int { return t.n }

// addPlane enters every flagged size x size block of one hash generation,
// column by column, so a bucket lists its entries in x-then-y order.
func (t *Table) addPlane(s *scratch, width, height, size int) {
	add := uint32(SizeIndex(size)) << crcBits
	added := s.same[sameAdd]
	for x := 0; x <= width-size; x++ {
		for y := 0; y <= height-size; y++ {
			pos := y*width + x
			if added[pos] == 0 {
				continue
			}
			t.Add(s.hash[0][pos]&crcMask+add, Entry{X: x, Y: y, Hash2: s.hash[1][pos]})
		}
	}
}
