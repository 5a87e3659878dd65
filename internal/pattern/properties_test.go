package pattern_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nestframe/internal/pattern"
)

var _ = Describe("Generate", func() {
	DescribeTable("keeps its invariants",
		func(width, height, padding int) {
			g := pattern.Generate(width, height, padding)

			By("having exactly height rows of width columns")
			Expect(g.Height()).To(Equal(height))
			Expect(g.Width()).To(Equal(width))
			for _, row := range g.Rows() {
				Expect(row).To(HaveLen(width))
			}

			By("mirroring left to right and top to bottom")
			for r := 0; r < height; r++ {
				for c := 0; c < width; c++ {
					Expect(g.At(r, c)).To(Equal(g.At(r, width-1-c)), "cell (%d,%d)", r, c)
					Expect(g.At(r, c)).To(Equal(g.At(height-1-r, c)), "cell (%d,%d)", r, c)
				}
			}

			By("being deterministic")
			Expect(pattern.Generate(width, height, padding).Equal(g)).To(BeTrue())

			By("drawing the outer frame on the border")
			for c := 0; c < width; c++ {
				Expect(g.At(0, c)).To(Equal(pattern.Horizontal))
				Expect(g.At(height-1, c)).To(Equal(pattern.Horizontal))
			}
			for r := 1; r < height-1; r++ {
				Expect(g.At(r, 0)).To(Equal(pattern.Vertical))
				Expect(g.At(r, width-1)).To(Equal(pattern.Vertical))
			}
		},
		Entry("default form values", 20, 20, 4),
		Entry("landing banner", 120, 40, 4),
		Entry("tall", 20, 60, 4),
		Entry("no padding", 16, 16, 0),
		Entry("wide padding", 100, 100, 30),
		Entry("smallest frame", 2, 2, 4),
	)

	It("only ever uses the three known symbols", func() {
		g := pattern.Generate(64, 48, 6)
		for _, row := range g.Rows() {
			for _, s := range row {
				Expect(s.Valid()).To(BeTrue())
			}
		}
	})

	It("is safe to call concurrently", func() {
		want := pattern.Generate(40, 40, 4)
		var wg sync.WaitGroup
		results := make([]pattern.Grid, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = pattern.Generate(40, 40, 4)
			}(i)
		}
		wg.Wait()
		for _, g := range results {
			Expect(g.Equal(want)).To(BeTrue())
		}
	})

	It("does not panic on degenerate input", func() {
		Expect(func() { pattern.Generate(0, 0, 0) }).NotTo(Panic())
		Expect(func() { pattern.Generate(0, 9, -3) }).NotTo(Panic())
		Expect(func() { pattern.Generate(7, 0, 1) }).NotTo(Panic())
		Expect(func() { pattern.Generate(3, 3, -1) }).NotTo(Panic())
	})
})

var _ = Describe("Corners", func() {
	DescribeTable("form a strictly increasing sequence below half the shorter side",
		func(width, height, padding int) {
			corners := pattern.Corners(width, height, padding)
			Expect(corners).NotTo(BeEmpty())
			Expect(corners[0]).To(Equal(0))
			step := padding/2 + 1
			for i, c := range corners {
				Expect(2 * c).To(BeNumerically("<", min(width, height)))
				if i > 0 {
					Expect(c - corners[i-1]).To(Equal(step))
				}
			}
			next := corners[len(corners)-1] + step
			Expect(2 * next).To(BeNumerically(">=", min(width, height)))
		},
		Entry("8x8 padding 2", 8, 8, 2),
		Entry("20x20 padding 4", 20, 20, 4),
		Entry("120x40 padding 4", 120, 40, 4),
		Entry("40x120 padding 10", 40, 120, 10),
		Entry("padding 0", 30, 30, 0),
	)

	It("stops at [0, 2] for an 8x8 grid with padding 2", func() {
		Expect(pattern.Corners(8, 8, 2)).To(Equal([]int{0, 2}))
	})
})
