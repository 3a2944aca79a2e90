package prices_test

import (
	"dexgate/internal/prices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Feed", func() {
	var feed *prices.Feed

	BeforeEach(func() {
		feed = prices.NewFeed(zap.NewNop().Sugar())
	})

	Describe("Snapshot", func() {
		It("should serve the static defaults before any refresh", func() {
			snapshot := feed.Snapshot()
			Expect(snapshot).To(HaveLen(10))
			Expect(snapshot["BNB"]).To(Equal(263.42))
			Expect(snapshot["BUSD"]).To(Equal(1.0))
			Expect(feed.LastUpdated()).To(BeZero())
		})

		It("should return a copy, not the live map", func() {
			snapshot := feed.Snapshot()
			snapshot["BNB"] = 0

			Expect(feed.Price("BNB")).To(Equal(263.42))
		})
	})

	Describe("Refresh", func() {
		JustBeforeEach(func() {
			feed.Refresh()
		})

		It("should overlay the upstream pair prices", func() {
			snapshot := feed.Snapshot()
			Expect(snapshot["BNB"]).To(Equal(574.32))
			Expect(snapshot["BTCB"]).To(Equal(57893.45))
			Expect(snapshot["USDT"]).To(Equal(1.0))
		})

		It("should record the refresh time", func() {
			Expect(feed.LastUpdated()).NotTo(BeZero())
		})
	})

	Describe("Price", func() {
		It("should default to 1.0 for unknown symbols", func() {
			Expect(feed.Price("DOGE")).To(Equal(1.0))
		})

		It("should return the known price", func() {
			Expect(feed.Price("ETH")).To(Equal(2238.76))
		})
	})
})
