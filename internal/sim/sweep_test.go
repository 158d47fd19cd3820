package sim

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pksim/internal/drugs"
)

var _ = Describe("Sweep", func() {
	It("evaluates the whole grid best first", func() {
		grid := SweepGrid{
			DosesMg: []float64{0, 1000, 2000},
			TimesH:  []float64{0, 4, 8},
		}
		points, err := Sweep(context.Background(), drugs.NewAmphetamine(), vitaminC, defaultInputs(), grid, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(9))

		for i := 1; i < len(points); i++ {
			Expect(points[i-1].Score()).To(BeNumerically(">=", points[i].Score()))
		}
		Expect(points[0].DoseMg).To(BeNumerically(">", 0))
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		grid := SweepGrid{DosesMg: []float64{1000}, TimesH: []float64{0, 1}}
		_, err := Sweep(ctx, drugs.NewAmphetamine(), vitaminC, defaultInputs(), grid, nil)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("spans linear grids inclusively", func() {
		Expect(LinearGrid(0, 4000, 5)).To(Equal([]float64{0, 1000, 2000, 3000, 4000}))
		Expect(LinearGrid(2, 10, 1)).To(Equal([]float64{2}))
	})
})
