package store_test

import (
	"context"
	"time"

	"dexgate/internal/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemStore", func() {
	var (
		mem *store.MemStore
		ctx context.Context
	)

	BeforeEach(func() {
		mem = store.NewMemStore()
		ctx = context.Background()
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = mem.MigrateAndSeed()
		})

		It("should seed the demo users", func() {
			Expect(err).NotTo(HaveOccurred())

			user, err := mem.UserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.PasswordHash).To(HavePrefix("$2a$"))
		})

		When("called twice", func() {
			It("should keep the original users", func() {
				Expect(err).NotTo(HaveOccurred())
				first, err := mem.UserByUsername(ctx, "bob")
				Expect(err).NotTo(HaveOccurred())

				Expect(mem.MigrateAndSeed()).To(Succeed())
				second, err := mem.UserByUsername(ctx, "bob")
				Expect(err).NotTo(HaveOccurred())
				Expect(second.ID).To(Equal(first.ID))
			})
		})
	})

	Describe("SaveTransaction", func() {
		var (
			saved store.Transaction
			err   error
		)

		JustBeforeEach(func() {
			saved, err = mem.SaveTransaction(ctx, store.Transaction{
				WalletAddress: "0x007",
				FromToken:     "BNB",
				ToToken:       "CAKE",
				FromAmount:    "1",
				ToAmount:      "100",
				TxHash:        "0xabc",
			})
		})

		It("should assign ids starting from 1", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.ID).To(Equal(uint(1)))

			second, err := mem.SaveTransaction(ctx, store.Transaction{WalletAddress: "0x007"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(uint(2)))
		})

		It("should default status and timestamp", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Status).To(Equal(store.StatusCompleted))
			Expect(saved.Timestamp).NotTo(BeZero())
		})

		When("status and timestamp are set", func() {
			var stamp time.Time

			BeforeEach(func() {
				stamp = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
			})

			It("should keep the provided values", func() {
				saved, err := mem.SaveTransaction(ctx, store.Transaction{
					WalletAddress: "0x007",
					Status:        store.StatusFailed,
					Timestamp:     stamp,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(saved.Status).To(Equal(store.StatusFailed))
				Expect(saved.Timestamp).To(Equal(stamp))
			})
		})
	})

	Describe("TransactionsByWallet", func() {
		var (
			transactions []store.Transaction
			err          error
		)

		JustBeforeEach(func() {
			transactions, err = mem.TransactionsByWallet(ctx, "0x007")
		})

		When("the wallet has no records", func() {
			It("should return an empty slice, not nil", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).NotTo(BeNil())
				Expect(transactions).To(BeEmpty())
			})
		})

		When("several wallets have records", func() {
			BeforeEach(func() {
				_, err := mem.SaveTransaction(ctx, store.Transaction{WalletAddress: "0x007", TxHash: "0x1"})
				Expect(err).NotTo(HaveOccurred())
				_, err = mem.SaveTransaction(ctx, store.Transaction{WalletAddress: "0x008", TxHash: "0x2"})
				Expect(err).NotTo(HaveOccurred())
				_, err = mem.SaveTransaction(ctx, store.Transaction{WalletAddress: "0x007", TxHash: "0x3"})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return only matching records in insertion order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))
				Expect(transactions[0].TxHash).To(Equal("0x1"))
				Expect(transactions[1].TxHash).To(Equal("0x3"))
			})
		})
	})

	Describe("UserByUsername", func() {
		When("the user does not exist", func() {
			It("should return user not found error", func() {
				_, err := mem.UserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(store.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUser", func() {
		When("the id is empty", func() {
			It("should assign a fresh id", func() {
				created, err := mem.CreateUser(ctx, store.User{Username: "eve", PasswordHash: "hash"})
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).NotTo(BeEmpty())

				found, err := mem.UserByUsername(ctx, "eve")
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(Equal(created))
			})
		})

		When("the id is provided", func() {
			It("should keep it", func() {
				created, err := mem.CreateUser(ctx, store.User{ID: "fixed", Username: "eve"})
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(Equal("fixed"))
			})
		})
	})
})
