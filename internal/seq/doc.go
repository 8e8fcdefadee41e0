// Package seq provides fixed-buffer integer containers with positional
// insertion and removal.
//
// Two containers share one operation set:
//
//   - [Dynamic]: contiguous array list, amortized O(1) append, O(n) positional insert/remove
//   - [Queue]: circular buffer, O(1) at both ends, O(n) in the middle
//
// Both grow by doubling when an insertion finds them full and never shrink.
// Removal only moves the occupied boundary; vacated slots are not cleared.
//
// # Example
//
//	s := seq.New()
//	s.Append(10)
//	s.Append(30)
//	_ = s.InsertAt(20, 1)
//	v, _ := s.Get(1) // 20
//
// # Errors
//
// Index violations wrap [ErrIndexOutOfRange] in an [IndexError]; removal or
// first/last access on an empty container wraps [ErrEmptyContainer]. A failed
// call leaves the container unchanged.
//
// # Thread Safety
//
// Containers are NOT thread-safe. Callers sharing one instance across
// goroutines must serialize access themselves.
package seq
