package seq

// Queue is a circular integer buffer with the same positional operations as
// Dynamic. Both ends are O(1); positional operations move the shorter side
// of the gap.
type Queue struct {
	storage []int
	head    int
	length  int
}

// NewQueue returns an empty queue with DefaultCapacity slots.
func NewQueue() *Queue {
	return &Queue{storage: make([]int, DefaultCapacity)}
}

// NewQueueWithCapacity returns an empty queue with capacity slots.
func NewQueueWithCapacity(capacity int) (*Queue, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Queue{storage: make([]int, capacity)}, nil
}

func (q *Queue) IsEmpty() bool { return q.length == 0 }
func (q *Queue) IsFull() bool  { return q.length == len(q.storage) }
func (q *Queue) Size() int     { return q.length }
func (q *Queue) Cap() int      { return len(q.storage) }

// slot maps a logical index to its physical position.
func (q *Queue) slot(index int) int {
	return (q.head + index) % len(q.storage)
}

func (q *Queue) Contains(value int) bool {
	for i := 0; i < q.length; i++ {
		if q.storage[q.slot(i)] == value {
			return true
		}
	}
	return false
}

func (q *Queue) Get(index int) (int, error) {
	if index < 0 || index > q.length-1 {
		return 0, &IndexError{Op: "get", Index: index, Length: q.length}
	}
	return q.storage[q.slot(index)], nil
}

func (q *Queue) First() (int, error) {
	if q.IsEmpty() {
		return 0, emptyErr("first")
	}
	return q.storage[q.head], nil
}

func (q *Queue) Last() (int, error) {
	if q.IsEmpty() {
		return 0, emptyErr("last")
	}
	return q.storage[q.slot(q.length-1)], nil
}

// Peek is First under its queue name.
func (q *Queue) Peek() (int, error) {
	return q.First()
}

// Values returns the occupied slots in logical order.
func (q *Queue) Values() []int {
	out := make([]int, q.length)
	for i := range out {
		out[i] = q.storage[q.slot(i)]
	}
	return out
}

// grow doubles the buffer and unrolls the ring so head lands on slot 0.
func (q *Queue) grow() {
	next := make([]int, len(q.storage)*2)
	for i := 0; i < q.length; i++ {
		next[i] = q.storage[q.slot(i)]
	}
	q.storage = next
	q.head = 0
}

func (q *Queue) Append(value int) {
	if q.IsFull() {
		q.grow()
	}
	q.storage[q.slot(q.length)] = value
	q.length++
}

// Enqueue is Append under its queue name.
func (q *Queue) Enqueue(value int) {
	q.Append(value)
}

func (q *Queue) InsertFirst(value int) {
	if q.IsFull() {
		q.grow()
	}
	q.head = (q.head - 1 + len(q.storage)) % len(q.storage)
	q.storage[q.head] = value
	q.length++
}

func (q *Queue) InsertAt(value, index int) error {
	if index < 0 || index > q.length {
		return &IndexError{Op: "insert", Index: index, Length: q.length}
	}
	if q.IsFull() {
		q.grow()
	}
	if index < q.length/2 {
		// step head back, then pull [0, index) down one slot
		q.head = (q.head - 1 + len(q.storage)) % len(q.storage)
		for i := 0; i < index; i++ {
			q.storage[q.slot(i)] = q.storage[q.slot(i+1)]
		}
	} else {
		for i := q.length; i > index; i-- {
			q.storage[q.slot(i)] = q.storage[q.slot(i-1)]
		}
	}
	q.storage[q.slot(index)] = value
	q.length++
	return nil
}

func (q *Queue) RemoveLast() error {
	if q.IsEmpty() {
		return emptyErr("remove last")
	}
	q.length--
	return nil
}

func (q *Queue) RemoveFirst() error {
	if q.IsEmpty() {
		return emptyErr("remove first")
	}
	q.head = (q.head + 1) % len(q.storage)
	q.length--
	return nil
}

// Dequeue removes and returns the first element.
func (q *Queue) Dequeue() (int, error) {
	if q.IsEmpty() {
		return 0, emptyErr("dequeue")
	}
	v := q.storage[q.head]
	q.head = (q.head + 1) % len(q.storage)
	q.length--
	return v, nil
}

func (q *Queue) RemoveAt(index int) error {
	if q.IsEmpty() {
		return emptyErr("remove")
	}
	if index < 0 || index >= q.length {
		return &IndexError{Op: "remove", Index: index, Length: q.length}
	}
	if index < q.length/2 {
		for i := index; i > 0; i-- {
			q.storage[q.slot(i)] = q.storage[q.slot(i-1)]
		}
		q.head = (q.head + 1) % len(q.storage)
	} else {
		for i := index; i < q.length-1; i++ {
			q.storage[q.slot(i)] = q.storage[q.slot(i+1)]
		}
	}
	q.length--
	return nil
}
