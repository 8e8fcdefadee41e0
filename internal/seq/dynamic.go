package seq

// DefaultCapacity is the slot count of a container built without an explicit capacity.
const DefaultCapacity = 20

// Dynamic is a contiguous, resizable integer sequence.
type Dynamic struct {
	storage []int
	length  int
}

// New returns an empty sequence with DefaultCapacity slots.
func New() *Dynamic {
	return &Dynamic{storage: make([]int, DefaultCapacity)}
}

// NewWithCapacity returns an empty sequence with capacity slots.
func NewWithCapacity(capacity int) (*Dynamic, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Dynamic{storage: make([]int, capacity)}, nil
}

func (d *Dynamic) IsEmpty() bool { return d.length == 0 }
func (d *Dynamic) IsFull() bool  { return d.length == len(d.storage) }
func (d *Dynamic) Size() int     { return d.length }
func (d *Dynamic) Cap() int      { return len(d.storage) }

// Contains reports whether value occupies any slot in [0, Size()).
func (d *Dynamic) Contains(value int) bool {
	if d.IsEmpty() {
		return false
	}
	for i := 0; i < d.length; i++ {
		if d.storage[i] == value {
			return true
		}
	}
	return false
}

func (d *Dynamic) Get(index int) (int, error) {
	if index < 0 || index > d.length-1 {
		return 0, &IndexError{Op: "get", Index: index, Length: d.length}
	}
	return d.storage[index], nil
}

func (d *Dynamic) First() (int, error) {
	if d.IsEmpty() {
		return 0, emptyErr("first")
	}
	return d.storage[0], nil
}

func (d *Dynamic) Last() (int, error) {
	if d.IsEmpty() {
		return 0, emptyErr("last")
	}
	return d.storage[d.length-1], nil
}

// Values returns a copy of the occupied span.
func (d *Dynamic) Values() []int {
	out := make([]int, d.length)
	copy(out, d.storage[:d.length])
	return out
}

// grow doubles the buffer, keeping every element at its index.
func (d *Dynamic) grow() {
	next := make([]int, len(d.storage)*2)
	for i := 0; i < d.length; i++ {
		next[i] = d.storage[i]
	}
	d.storage = next
}

func (d *Dynamic) Append(value int) {
	if d.IsFull() {
		d.grow()
	}
	d.storage[d.length] = value
	d.length++
}

func (d *Dynamic) InsertFirst(value int) {
	d.shiftRight(0)
	d.storage[0] = value
	d.length++
}

// InsertAt places value at index, moving [index, Size()) one slot right.
// index == Size() appends.
func (d *Dynamic) InsertAt(value, index int) error {
	if index < 0 || index > d.length {
		return &IndexError{Op: "insert", Index: index, Length: d.length}
	}
	d.shiftRight(index)
	d.storage[index] = value
	d.length++
	return nil
}

// shiftRight opens a gap at index. The caller writes the slot and bumps length.
func (d *Dynamic) shiftRight(index int) {
	if d.IsFull() {
		d.grow()
	}
	for i := d.length; i > index; i-- {
		d.storage[i] = d.storage[i-1]
	}
}

func (d *Dynamic) RemoveLast() error {
	if d.IsEmpty() {
		return emptyErr("remove last")
	}
	d.length--
	return nil
}

func (d *Dynamic) RemoveFirst() error {
	if d.IsEmpty() {
		return emptyErr("remove first")
	}
	d.shiftLeft(0)
	return nil
}

func (d *Dynamic) RemoveAt(index int) error {
	if d.IsEmpty() {
		return emptyErr("remove")
	}
	if index < 0 || index >= d.length {
		return &IndexError{Op: "remove", Index: index, Length: d.length}
	}
	d.shiftLeft(index)
	return nil
}

// shiftLeft closes the gap at index and drops the last occupied slot.
func (d *Dynamic) shiftLeft(index int) {
	for i := index; i < d.length-1; i++ {
		d.storage[i] = d.storage[i+1]
	}
	d.length--
}
