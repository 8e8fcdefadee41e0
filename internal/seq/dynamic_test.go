package seq_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seqbench/internal/seq"
)

func filled(values ...int) *seq.Dynamic {
	d := seq.New()
	for _, v := range values {
		d.Append(v)
	}
	return d
}

var _ = Describe("Dynamic", func() {
	Describe("construction", func() {
		It("starts empty with the default capacity", func() {
			d := seq.New()
			Expect(d.IsEmpty()).To(BeTrue())
			Expect(d.Size()).To(Equal(0))
			Expect(d.Cap()).To(Equal(seq.DefaultCapacity))
		})

		It("honours an explicit capacity per instance", func() {
			small, err := seq.NewWithCapacity(4)
			Expect(err).NotTo(HaveOccurred())
			Expect(small.Cap()).To(Equal(4))

			// a later default instance is unaffected
			Expect(seq.New().Cap()).To(Equal(seq.DefaultCapacity))
			Expect(small.Cap()).To(Equal(4))
		})

		DescribeTable("rejects non-positive capacity",
			func(capacity int) {
				d, err := seq.NewWithCapacity(capacity)
				Expect(d).To(BeNil())
				Expect(err).To(MatchError(seq.ErrInvalidConfiguration))
			},
			Entry("zero", 0),
			Entry("negative", -3),
		)
	})

	Describe("growth", func() {
		It("doubles when the 21st element is appended", func() {
			d := seq.New()
			for i := 1; i <= 20; i++ {
				d.Append(i)
			}
			Expect(d.IsFull()).To(BeTrue())
			Expect(d.Cap()).To(Equal(20))

			d.Append(21)
			Expect(d.Cap()).To(Equal(40))
			Expect(d.Size()).To(Equal(21))
			Expect(d.Get(20)).To(Equal(21))
			Expect(d.Get(0)).To(Equal(1))
		})

		It("preserves order across several doublings", func() {
			d, err := seq.NewWithCapacity(1)
			Expect(err).NotTo(HaveOccurred())
			want := make([]int, 0, 100)
			for i := 0; i < 100; i++ {
				d.Append(i * 3)
				want = append(want, i*3)
			}
			Expect(d.Values()).To(Equal(want))
			Expect(d.Cap()).To(Equal(128))
		})

		It("grows before shifting on a full positional insert", func() {
			d, _ := seq.NewWithCapacity(3)
			d.Append(1)
			d.Append(2)
			d.Append(3)

			Expect(d.InsertAt(9, 1)).To(Succeed())
			Expect(d.Cap()).To(Equal(6))
			Expect(d.Values()).To(Equal([]int{1, 9, 2, 3}))

			d.InsertFirst(0)
			d.InsertFirst(-1)
			Expect(d.Cap()).To(Equal(6))
			d.InsertFirst(-2)
			Expect(d.Cap()).To(Equal(12))
			Expect(d.Values()).To(Equal([]int{-2, -1, 0, 1, 9, 2, 3}))
		})

		It("never shrinks", func() {
			d := seq.New()
			for i := 0; i < 21; i++ {
				d.Append(i)
			}
			for !d.IsEmpty() {
				Expect(d.RemoveLast()).To(Succeed())
			}
			Expect(d.Cap()).To(Equal(40))
		})
	})

	Describe("insertion", func() {
		It("inserts in the middle and removes back", func() {
			d := filled(10, 20, 30)
			Expect(d.InsertAt(99, 1)).To(Succeed())
			Expect(d.Values()).To(Equal([]int{10, 99, 20, 30}))
			Expect(d.Size()).To(Equal(4))

			Expect(d.RemoveAt(1)).To(Succeed())
			Expect(d.Values()).To(Equal([]int{10, 20, 30}))
		})

		It("prepends with InsertFirst", func() {
			d := filled(1, 2, 3)
			d.InsertFirst(7)
			Expect(d.Values()).To(Equal([]int{7, 1, 2, 3}))
		})

		It("accepts insertion at the end index", func() {
			d := filled(1, 2)
			Expect(d.InsertAt(3, 2)).To(Succeed())
			Expect(d.Values()).To(Equal([]int{1, 2, 3}))
		})

		It("accepts insertion at 0 on an empty sequence", func() {
			d := seq.New()
			Expect(d.InsertAt(5, 0)).To(Succeed())
			Expect(d.Values()).To(Equal([]int{5}))
		})

		DescribeTable("round-trips InsertAt with Get",
			func(index int) {
				d := filled(1, 2, 3, 4, 5)
				before := d.Size()
				Expect(d.InsertAt(42, index)).To(Succeed())
				Expect(d.Get(index)).To(Equal(42))
				Expect(d.Size()).To(Equal(before + 1))
			},
			Entry("head", 0),
			Entry("middle", 2),
			Entry("tail", 5),
		)

		It("rejects out-of-range indices without touching state", func() {
			d := filled(1, 2, 3)
			for _, idx := range []int{-1, 4} {
				err := d.InsertAt(0, idx)
				Expect(err).To(MatchError(seq.ErrIndexOutOfRange))

				var ie *seq.IndexError
				Expect(errors.As(err, &ie)).To(BeTrue())
				Expect(ie.Index).To(Equal(idx))
				Expect(ie.Length).To(Equal(3))
			}
			Expect(d.Values()).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("access", func() {
		It("reads first, last and by index", func() {
			d := filled(4, 5, 6)
			Expect(d.First()).To(Equal(4))
			Expect(d.Last()).To(Equal(6))
			Expect(d.Get(1)).To(Equal(5))
		})

		It("fails Get at length and at -1", func() {
			d := filled(4, 5, 6)
			_, err := d.Get(3)
			Expect(err).To(MatchError(seq.ErrIndexOutOfRange))
			_, err = d.Get(-1)
			Expect(err).To(MatchError(seq.ErrIndexOutOfRange))
		})

		It("fails First and Last when empty", func() {
			d := seq.New()
			_, err := d.First()
			Expect(err).To(MatchError(seq.ErrEmptyContainer))
			_, err = d.Last()
			Expect(err).To(MatchError(seq.ErrEmptyContainer))
		})

		It("checks containment over occupied slots only", func() {
			d := filled(1, 2, 3)
			Expect(d.Contains(2)).To(BeTrue())
			Expect(d.Contains(9)).To(BeFalse())

			Expect(d.RemoveLast()).To(Succeed())
			Expect(d.Contains(3)).To(BeFalse())
			Expect(seq.New().Contains(0)).To(BeFalse())
		})

		It("hands out copies", func() {
			d := filled(1, 2)
			vals := d.Values()
			vals[0] = 100
			Expect(d.Get(0)).To(Equal(1))
		})
	})

	Describe("removal", func() {
		It("drops the head with RemoveFirst", func() {
			d := filled(1, 2, 3)
			Expect(d.RemoveFirst()).To(Succeed())
			Expect(d.Values()).To(Equal([]int{2, 3}))
		})

		It("drops the tail with RemoveLast", func() {
			d := filled(1, 2, 3)
			Expect(d.RemoveLast()).To(Succeed())
			Expect(d.Values()).To(Equal([]int{1, 2}))
		})

		It("removes the last index through RemoveAt", func() {
			d := filled(1, 2, 3)
			Expect(d.RemoveAt(2)).To(Succeed())
			Expect(d.Values()).To(Equal([]int{1, 2}))
		})

		It("is empty again after removing everything", func() {
			d := filled(1, 2, 3)
			Expect(d.RemoveFirst()).To(Succeed())
			Expect(d.RemoveAt(1)).To(Succeed())
			Expect(d.RemoveLast()).To(Succeed())
			Expect(d.IsEmpty()).To(BeTrue())
			Expect(d.Size()).To(Equal(0))
		})

		It("fails every removal on an empty sequence", func() {
			d := seq.New()
			Expect(d.RemoveLast()).To(MatchError(seq.ErrEmptyContainer))
			Expect(d.RemoveFirst()).To(MatchError(seq.ErrEmptyContainer))
			Expect(d.RemoveAt(0)).To(MatchError(seq.ErrEmptyContainer))
		})

		It("bounds-checks RemoveAt", func() {
			d := filled(1, 2, 3)
			Expect(d.RemoveAt(3)).To(MatchError(seq.ErrIndexOutOfRange))
			Expect(d.RemoveAt(-1)).To(MatchError(seq.ErrIndexOutOfRange))
			Expect(d.Values()).To(Equal([]int{1, 2, 3}))
		})
	})

	It("keeps length within capacity over a mixed workload", func() {
		d, _ := seq.NewWithCapacity(2)
		var model []int
		for i := 0; i < 200; i++ {
			switch i % 5 {
			case 0, 1:
				d.Append(i)
				model = append(model, i)
			case 2:
				d.InsertFirst(i)
				model = append([]int{i}, model...)
			case 3:
				mid := len(model) / 2
				Expect(d.InsertAt(i, mid)).To(Succeed())
				model = append(model[:mid], append([]int{i}, model[mid:]...)...)
			case 4:
				mid := len(model) / 2
				Expect(d.RemoveAt(mid)).To(Succeed())
				model = append(model[:mid], model[mid+1:]...)
			}
			Expect(d.Size()).To(BeNumerically("<=", d.Cap()))
			Expect(d.Size()).To(Equal(len(model)))
		}
		Expect(d.Values()).To(Equal(model))
	})
})
