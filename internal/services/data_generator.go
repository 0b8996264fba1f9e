package services

import (
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	revenueShare       = 0.65
	paidShare          = 0.55
	cancelledShare     = 0.03
	overdueMarkedShare = 0.7
	minTermDays        = 7
	maxTermDays        = 45
	businessHoursStart = 8
	businessHoursEnd   = 19
)

var regionPool = []string{"North", "Northeast", "Central-West", "Southeast", "South"}

var categoryPool = map[string][]string{
	models.TransactionTypeRevenue: {"Consulting", "Hardware", "Licenses", "Support", "Training"},
	models.TransactionTypeExpense: {"Payroll", "Rent", "Utilities", "Marketing", "Travel"},
}

// Lookups are the dimension rows generated transactions point at
type Lookups struct {
	Categories []*models.Category
	Products   []*models.Product
	Customers  []*models.Customer
}

type dataGenerator struct {
	faker *gofakeit.Faker
}

// NewDataGenerator creates a generator; equal seeds produce equal datasets
func NewDataGenerator(seed uint64) DataGeneratorInterface {
	return &dataGenerator{faker: gofakeit.New(seed)}
}

// GenerateLookups creates the fixed category pool plus the requested number of products and customers
func (g *dataGenerator) GenerateLookups(products, customers int) *Lookups {
	lookups := &Lookups{}

	for _, txnType := range []string{models.TransactionTypeRevenue, models.TransactionTypeExpense} {
		for _, name := range categoryPool[txnType] {
			lookups.Categories = append(lookups.Categories, &models.Category{
				ID:       g.uuid(),
				Name:     name,
				IsActive: true,
			})
		}
	}

	for i := 0; i < products; i++ {
		lookups.Products = append(lookups.Products, &models.Product{
			ID:       g.uuid(),
			Name:     g.faker.ProductName(),
			IsActive: true,
		})
	}

	for i := 0; i < customers; i++ {
		lookups.Customers = append(lookups.Customers, &models.Customer{
			ID:       g.uuid(),
			Name:     g.faker.Company(),
			Region:   g.faker.RandomString(regionPool),
			IsActive: true,
		})
	}

	return lookups
}

// GenerateTransactions creates count transactions spread over [start, end), sorted by occurrence.
// Payment status is consistent with now: settled rows carry paidAt, unpaid rows past due are mostly OVERDUE.
func (g *dataGenerator) GenerateTransactions(lookups *Lookups, start, end, now time.Time, count int) []*models.Transaction {
	if count <= 0 || len(lookups.Categories) == 0 || !end.After(start) {
		return []*models.Transaction{}
	}

	byType := g.categoriesByType(lookups.Categories)
	transactions := make([]*models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.generateTransaction(lookups, byType, start, end, now))
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].OccurredAt.Before(transactions[j].OccurredAt)
	})
	return transactions
}

func (g *dataGenerator) categoriesByType(categories []*models.Category) map[string][]*models.Category {
	names := make(map[string]string)
	for txnType, pool := range categoryPool {
		for _, name := range pool {
			names[name] = txnType
		}
	}

	byType := make(map[string][]*models.Category)
	for _, c := range categories {
		txnType, ok := names[c.Name]
		if !ok {
			txnType = models.TransactionTypeRevenue
		}
		byType[txnType] = append(byType[txnType], c)
	}
	// fall back to every category when a type has none of its own
	for _, txnType := range []string{models.TransactionTypeRevenue, models.TransactionTypeExpense} {
		if len(byType[txnType]) == 0 {
			byType[txnType] = categories
		}
	}
	return byType
}

func (g *dataGenerator) generateTransaction(lookups *Lookups, byType map[string][]*models.Category, start, end, now time.Time) *models.Transaction {
	txnType := models.TransactionTypeExpense
	if g.faker.Float64() < revenueShare {
		txnType = models.TransactionTypeRevenue
	}

	categories := byType[txnType]
	category := categories[g.faker.Number(0, len(categories)-1)]
	occurredAt := g.occurrence(start, end)

	txn := &models.Transaction{
		ID:              g.uuid(),
		TransactionType: txnType,
		CategoryID:      category.ID,
		OccurredAt:      occurredAt,
		CreatedAt:       occurredAt,
		UpdatedAt:       occurredAt,
	}

	if txnType == models.TransactionTypeRevenue {
		txn.Quantity = g.faker.Number(1, 10)
		txn.Amount = g.amount(50, 5000).Mul(decimal.NewFromInt(int64(txn.Quantity)))
		if len(lookups.Products) > 0 {
			product := lookups.Products[g.faker.Number(0, len(lookups.Products)-1)]
			txn.ProductID = &product.ID
		}
		if len(lookups.Customers) > 0 {
			customer := lookups.Customers[g.faker.Number(0, len(lookups.Customers)-1)]
			txn.CustomerID = &customer.ID
			txn.Description = "Sale to " + customer.Name
		}
	} else {
		txn.Amount = g.amount(100, 20000)
		txn.Description = category.Name + " - " + g.faker.Sentence(4)
	}

	g.settle(txn, now)
	return txn
}

// settle assigns due date, payment date and status
func (g *dataGenerator) settle(txn *models.Transaction, now time.Time) {
	due := txn.OccurredAt.AddDate(0, 0, g.faker.Number(minTermDays, maxTermDays))
	txn.DueDate = &due

	roll := g.faker.Float64()
	switch {
	case roll < cancelledShare:
		txn.PaymentStatus = models.PaymentStatusCancelled
	case roll < cancelledShare+paidShare:
		paidAt := txn.OccurredAt.Add(time.Duration(g.faker.Number(1, int(due.Sub(txn.OccurredAt).Hours()))) * time.Hour)
		if paidAt.After(now) {
			txn.PaymentStatus = models.PaymentStatusPending
			return
		}
		txn.PaidAt = &paidAt
		txn.PaymentStatus = models.PaymentStatusPaid
	case due.Before(now) && g.faker.Float64() < overdueMarkedShare:
		txn.PaymentStatus = models.PaymentStatusOverdue
	default:
		txn.PaymentStatus = models.PaymentStatusPending
	}
}

func (g *dataGenerator) occurrence(start, end time.Time) time.Time {
	day := g.faker.DateRange(start, end).UTC()
	hour := g.faker.Number(businessHoursStart, businessHoursEnd)
	minute := g.faker.Number(0, 59)
	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	if ts.Before(start) {
		return start.UTC()
	}
	if !ts.Before(end) {
		return end.Add(-time.Minute).UTC()
	}
	return ts
}

func (g *dataGenerator) amount(low, high float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Price(low, high)).Round(2)
}

// uuid derives ids from the faker so that seeded runs are reproducible
func (g *dataGenerator) uuid() uuid.UUID {
	id, err := uuid.Parse(g.faker.UUID())
	if err != nil {
		return uuid.New()
	}
	return id
}
