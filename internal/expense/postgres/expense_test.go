package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/finance-tracker/internal"
	expenseDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/expense"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	expensePostgres "github.com/frahmantamala/finance-tracker/internal/expense/postgres"
)

func TestExpensePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Postgres Suite")
}

var _ = Describe("Expense Repository", func() {
	var (
		db   *gorm.DB
		repo expense.Repository
	)

	note := func(s string) *string { return &s }

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&expenseDatamodel.Expense{})
		Expect(err).NotTo(HaveOccurred())

		repo = expensePostgres.NewExpenseRepository(db)
	})

	Describe("Create", func() {
		It("assigns an id and a creation timestamp", func() {
			exp := &expenseDatamodel.Expense{UserID: 1, Amount: 12.5, Category: "Food", Note: note("lunch")}

			err := repo.Create(exp)
			Expect(err).NotTo(HaveOccurred())
			Expect(exp.ID).To(BeNumerically(">", 0))
			Expect(exp.CreatedAt).NotTo(BeZero())
		})
	})

	Describe("GetByID", func() {
		It("fails with not found for a missing id", func() {
			_, err := repo.GetByID(12345)
			Expect(err).To(MatchError(internal.ErrExpenseNotFound))
		})
	})

	Describe("GetByUserID", func() {
		It("returns only the owner's rows in insertion order", func() {
			Expect(repo.Create(&expenseDatamodel.Expense{UserID: 1, Amount: 1, Category: "Food"})).To(Succeed())
			Expect(repo.Create(&expenseDatamodel.Expense{UserID: 2, Amount: 2, Category: "Food"})).To(Succeed())
			Expect(repo.Create(&expenseDatamodel.Expense{UserID: 1, Amount: 3, Category: "Rent"})).To(Succeed())

			rows, err := repo.GetByUserID(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].Amount).To(Equal(1.0))
			Expect(rows[1].Amount).To(Equal(3.0))
		})

		It("returns an empty slice for a user with no expenses", func() {
			rows, err := repo.GetByUserID(99)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("persists changed fields", func() {
			exp := &expenseDatamodel.Expense{UserID: 1, Amount: 10, Category: "Food"}
			Expect(repo.Create(exp)).To(Succeed())

			exp.Amount = 42
			Expect(repo.Update(exp)).To(Succeed())

			reloaded, err := repo.GetByID(exp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Amount).To(Equal(42.0))
		})
	})

	Describe("Delete", func() {
		It("removes the row permanently", func() {
			exp := &expenseDatamodel.Expense{UserID: 1, Amount: 10, Category: "Food"}
			Expect(repo.Create(exp)).To(Succeed())

			Expect(repo.Delete(exp.ID)).To(Succeed())

			_, err := repo.GetByID(exp.ID)
			Expect(err).To(MatchError(internal.ErrExpenseNotFound))
		})

		It("fails with not found for a missing id", func() {
			Expect(repo.Delete(12345)).To(MatchError(internal.ErrExpenseNotFound))
		})
	})
})
