package seq_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seqbench/internal/seq"
)

// wrapped builds a queue whose head sits away from slot 0, so every
// positional path crosses the physical end of the buffer.
func wrapped(capacity int, values ...int) *seq.Queue {
	q, err := seq.NewQueueWithCapacity(capacity)
	Expect(err).NotTo(HaveOccurred())
	for i := 0; i < capacity-1; i++ {
		q.Append(0)
	}
	for i := 0; i < capacity-1; i++ {
		Expect(q.RemoveFirst()).To(Succeed())
	}
	for _, v := range values {
		q.Append(v)
	}
	return q
}

var _ = Describe("Queue", func() {
	It("starts empty with the default capacity", func() {
		q := seq.NewQueue()
		Expect(q.IsEmpty()).To(BeTrue())
		Expect(q.Cap()).To(Equal(seq.DefaultCapacity))
	})

	It("rejects non-positive capacity", func() {
		_, err := seq.NewQueueWithCapacity(0)
		Expect(err).To(MatchError(seq.ErrInvalidConfiguration))
	})

	It("is FIFO through Enqueue and Dequeue", func() {
		q := seq.NewQueue()
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)
		Expect(q.Peek()).To(Equal(1))
		Expect(q.Dequeue()).To(Equal(1))
		Expect(q.Dequeue()).To(Equal(2))
		Expect(q.Values()).To(Equal([]int{3}))
	})

	It("doubles when the 21st element is appended", func() {
		q := seq.NewQueue()
		for i := 1; i <= 21; i++ {
			q.Append(i)
		}
		Expect(q.Cap()).To(Equal(40))
		Expect(q.Get(20)).To(Equal(21))
		Expect(q.Get(0)).To(Equal(1))
	})

	It("unrolls a wrapped ring on growth", func() {
		q := wrapped(4, 1, 2, 3, 4)
		Expect(q.IsFull()).To(BeTrue())
		q.Append(5)
		Expect(q.Cap()).To(Equal(8))
		Expect(q.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
	})

	It("prepends in place", func() {
		q := wrapped(8, 1, 2, 3)
		q.InsertFirst(0)
		q.InsertFirst(-1)
		Expect(q.Values()).To(Equal([]int{-1, 0, 1, 2, 3}))
		Expect(q.First()).To(Equal(-1))
		Expect(q.Last()).To(Equal(3))
	})

	DescribeTable("inserts at every position of a wrapped ring",
		func(index int, want []int) {
			q := wrapped(8, 10, 20, 30, 40, 50)
			Expect(q.InsertAt(99, index)).To(Succeed())
			Expect(q.Values()).To(Equal(want))
		},
		Entry("head", 0, []int{99, 10, 20, 30, 40, 50}),
		Entry("near head", 1, []int{10, 99, 20, 30, 40, 50}),
		Entry("middle", 2, []int{10, 20, 99, 30, 40, 50}),
		Entry("near tail", 4, []int{10, 20, 30, 40, 99, 50}),
		Entry("tail", 5, []int{10, 20, 30, 40, 50, 99}),
	)

	DescribeTable("removes at every position of a wrapped ring",
		func(index int, want []int) {
			q := wrapped(8, 10, 20, 30, 40, 50)
			Expect(q.RemoveAt(index)).To(Succeed())
			Expect(q.Values()).To(Equal(want))
		},
		Entry("head", 0, []int{20, 30, 40, 50}),
		Entry("near head", 1, []int{10, 30, 40, 50}),
		Entry("middle", 2, []int{10, 20, 40, 50}),
		Entry("near tail", 3, []int{10, 20, 30, 50}),
		Entry("tail", 4, []int{10, 20, 30, 40}),
	)

	It("shares the error contract of Dynamic", func() {
		q := seq.NewQueue()
		Expect(q.RemoveLast()).To(MatchError(seq.ErrEmptyContainer))
		Expect(q.RemoveFirst()).To(MatchError(seq.ErrEmptyContainer))
		Expect(q.RemoveAt(0)).To(MatchError(seq.ErrEmptyContainer))
		_, err := q.Dequeue()
		Expect(err).To(MatchError(seq.ErrEmptyContainer))
		_, err = q.First()
		Expect(err).To(MatchError(seq.ErrEmptyContainer))

		q.Append(1)
		_, err = q.Get(1)
		Expect(err).To(MatchError(seq.ErrIndexOutOfRange))
		Expect(q.InsertAt(0, 2)).To(MatchError(seq.ErrIndexOutOfRange))
		Expect(q.RemoveAt(1)).To(MatchError(seq.ErrIndexOutOfRange))
		Expect(q.Values()).To(Equal([]int{1}))
	})

	It("matches Dynamic over a mixed workload", func() {
		q, _ := seq.NewQueueWithCapacity(3)
		d, _ := seq.NewWithCapacity(3)
		for i := 0; i < 300; i++ {
			switch i % 7 {
			case 0, 1:
				q.Append(i)
				d.Append(i)
			case 2:
				q.InsertFirst(i)
				d.InsertFirst(i)
			case 3:
				mid := d.Size() / 3
				Expect(q.InsertAt(i, mid)).To(Succeed())
				Expect(d.InsertAt(i, mid)).To(Succeed())
			case 4:
				Expect(q.RemoveFirst()).To(Succeed())
				Expect(d.RemoveFirst()).To(Succeed())
			case 5:
				mid := 2 * d.Size() / 3
				Expect(q.RemoveAt(mid)).To(Succeed())
				Expect(d.RemoveAt(mid)).To(Succeed())
			case 6:
				Expect(q.Contains(i - 1)).To(Equal(d.Contains(i - 1)))
			}
			Expect(q.Values()).To(Equal(d.Values()))
		}
	})
})
