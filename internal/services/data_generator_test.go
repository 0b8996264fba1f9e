package services_test

import (
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DataGeneratorTestSuite struct {
	suite.Suite
	generator services.DataGeneratorInterface
	lookups   *services.Lookups
	start     time.Time
	end       time.Time
	now       time.Time
}

func TestDataGeneratorSuite(t *testing.T) {
	suite.Run(t, new(DataGeneratorTestSuite))
}

func (s *DataGeneratorTestSuite) SetupTest() {
	s.generator = services.NewDataGenerator(7)
	s.lookups = s.generator.GenerateLookups(12, 30)
	s.start = mustDay("2024-01-01")
	s.end = mustDay("2024-07-01")
	s.now = mustDay("2024-06-15")
}

func (s *DataGeneratorTestSuite) TestGenerateLookups_Sizes() {
	s.Len(s.lookups.Categories, 10)
	s.Len(s.lookups.Products, 12)
	s.Len(s.lookups.Customers, 30)

	ids := make(map[uuid.UUID]bool)
	for _, c := range s.lookups.Customers {
		s.NotEmpty(c.Name)
		s.NotEmpty(c.Region)
		s.True(c.IsActive)
		s.False(ids[c.ID], "duplicate customer id")
		ids[c.ID] = true
	}
}

func (s *DataGeneratorTestSuite) TestGenerateTransactions_SameSeedSameData() {
	other := services.NewDataGenerator(7)
	otherLookups := other.GenerateLookups(12, 30)

	first := s.generator.GenerateTransactions(s.lookups, s.start, s.end, s.now, 50)
	second := other.GenerateTransactions(otherLookups, s.start, s.end, s.now, 50)

	s.Require().Len(second, len(first))
	for i := range first {
		s.Equal(first[i].ID, second[i].ID)
		s.True(first[i].Amount.Equal(second[i].Amount))
		s.Equal(first[i].OccurredAt, second[i].OccurredAt)
	}
}

func (s *DataGeneratorTestSuite) TestGenerateTransactions_Invariants() {
	transactions := s.generator.GenerateTransactions(s.lookups, s.start, s.end, s.now, 500)

	s.Require().Len(transactions, 500)
	types := map[string]int{}
	for i, txn := range transactions {
		s.NoError(txn.Validate())
		s.False(txn.OccurredAt.Before(s.start))
		s.True(txn.OccurredAt.Before(s.end))
		if i > 0 {
			s.False(txn.OccurredAt.Before(transactions[i-1].OccurredAt), "not sorted")
		}
		s.True(txn.Amount.IsPositive())
		s.Require().NotNil(txn.DueDate)
		s.True(txn.DueDate.After(txn.OccurredAt))

		switch txn.PaymentStatus {
		case models.PaymentStatusPaid:
			s.Require().NotNil(txn.PaidAt)
			s.False(txn.PaidAt.After(s.now))
			s.False(txn.PaidAt.After(*txn.DueDate))
		case models.PaymentStatusOverdue:
			s.Nil(txn.PaidAt)
			s.True(txn.DueDate.Before(s.now))
		default:
			s.Nil(txn.PaidAt)
		}

		if txn.TransactionType == models.TransactionTypeRevenue {
			s.NotNil(txn.CustomerID)
			s.NotNil(txn.ProductID)
			s.GreaterOrEqual(txn.Quantity, 1)
		}
		types[txn.TransactionType]++
	}

	s.Greater(types[models.TransactionTypeRevenue], types[models.TransactionTypeExpense])
	s.Positive(types[models.TransactionTypeExpense])
}

func (s *DataGeneratorTestSuite) TestGenerateTransactions_EmptyInputs() {
	s.Empty(s.generator.GenerateTransactions(s.lookups, s.start, s.end, s.now, 0))
	s.Empty(s.generator.GenerateTransactions(s.lookups, s.end, s.start, s.now, 10))
	s.Empty(s.generator.GenerateTransactions(&services.Lookups{}, s.start, s.end, s.now, 10))
}
