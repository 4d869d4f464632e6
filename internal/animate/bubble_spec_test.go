package animate_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/seq"
)

func record(input seq.Sequence[int], p animate.Palette) []animate.Frame[int] {
	b := animate.NewBubble[int](p, animate.DefaultDelay)
	b.SetClock(animate.InstantClock{})
	rec := animate.NewRecorder[int]()
	b.AddObserver(rec)
	Expect(b.Run(context.Background(), input, rec)).To(Succeed())
	return rec.Frames()
}

func countKind(frames []animate.Frame[int], k animate.StepKind) int {
	n := 0
	for _, f := range frames {
		if f.Step.Kind == k {
			n++
		}
	}
	return n
}

var _ = Describe("Bubble", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	Context("with shuffled input", func() {
		var (
			input  seq.Sequence[int]
			frames []animate.Frame[int]
		)

		BeforeEach(func() {
			input = seq.Shuffle(seq.Range(1, 12, "black"), rng)
			frames = record(input, animate.DefaultPalette)
		})

		It("starts with the input and ends sorted and done", func() {
			Expect(frames[0].Step.Kind).To(Equal(animate.KindInitial))
			Expect(frames[0].Items.Values()).To(Equal(input.Values()))

			last := frames[len(frames)-1]
			Expect(last.Step.Kind).To(Equal(animate.KindFinal))
			Expect(last.Items.IsSorted()).To(BeTrue())
			for _, it := range last.Items {
				Expect(it.Color).To(Equal(seq.Color("green")))
			}
		})

		It("never changes the sequence length", func() {
			for _, f := range frames {
				Expect(f.Items).To(HaveLen(len(input)))
			}
		})

		It("pushes a select and a restore per comparison and a swap per inversion", func() {
			pairs := seq.MaxInversions(len(input))
			Expect(countKind(frames, animate.KindSelect)).To(Equal(pairs))
			Expect(countKind(frames, animate.KindRestore)).To(Equal(pairs))
			Expect(countKind(frames, animate.KindSwap)).To(Equal(input.Inversions()))
			Expect(frames).To(HaveLen(animate.TotalPushes(input)))
		})

		It("numbers pushes in order", func() {
			for i, f := range frames {
				Expect(f.Step.Push).To(Equal(i + 1))
			}
		})
	})

	Context("with sorted input", func() {
		It("performs every select and restore but never swaps, twice in a row", func() {
			input := seq.Range(1, 8, "black")
			for run := 0; run < 2; run++ {
				frames := record(input, animate.DefaultPalette)
				Expect(countKind(frames, animate.KindSwap)).To(BeZero())
				Expect(countKind(frames, animate.KindSelect)).To(Equal(seq.MaxInversions(8)))
				Expect(countKind(frames, animate.KindRestore)).To(Equal(seq.MaxInversions(8)))
			}
		})
	})

	Context("with default palette entries", func() {
		It("leaves colors unset", func() {
			p := animate.Palette{Selected: seq.Scale("reds"), Base: seq.Default, Done: seq.Scale("greens")}
			frames := record(seq.Shuffle(seq.Range(1, 5, seq.Default), rng), p)

			for _, f := range frames {
				if f.Step.Kind == animate.KindRestore {
					Expect(f.Items[f.Step.J].Color).To(Equal(seq.Default))
					Expect(f.Items[f.Step.J+1].Color).To(Equal(seq.Default))
				}
			}
			last := frames[len(frames)-1]
			Expect(last.Items[0].Color).To(Equal(seq.Scale("greens")))
		})
	})
})
