package queries_test

import (
	"context"
	"testing"
	"time"

	"toyrental/internal/adapters/out/postgres/pricingrepo"
	"toyrental/internal/core/application/usecases/queries"
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPriceHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetPriceHistoryQueryHandler
	pricingRepo *pricingrepo.GormPricingRepository
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&pricingrepo.PriceHistoryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPriceHistoryQueryHandler(db)
	suite.pricingRepo = pricingrepo.NewGormPricingRepository(db)
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE price_history").Error
	suite.Require().NoError(err)
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) TestHandle_ReturnsChangesNewestFirst() {
	ctx := context.Background()
	toyID := kernel.NewUUID()

	suite.appendChange(toyID, pricing.TypeDaily, 10, 12, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	suite.appendChange(toyID, pricing.TypeDaily, 12, 15, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	suite.appendChange(kernel.NewUUID(), pricing.TypeDaily, 5, 6, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewGetPriceHistoryQuery(toyID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Changes, 2)
	suite.InDelta(15, result.Changes[0].NewPrice, 0.001)
	suite.InDelta(12, result.Changes[1].NewPrice, 0.001)
	for _, change := range result.Changes {
		suite.True(change.ToyID.IsEqual(toyID))
		suite.Equal("manual adjustment", change.Reason)
		suite.Equal("admin", change.ChangedBy)
	}
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) TestHandle_FiltersByPricingType() {
	toyID := kernel.NewUUID()
	at := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.appendChange(toyID, pricing.TypeDaily, 10, 12, at)
	suite.appendChange(toyID, pricing.TypeWeekly, 50, 60, at)

	weekly := pricing.TypeWeekly
	query, err := queries.NewGetPriceHistoryQuery(toyID, &weekly)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Changes, 1)
	suite.Equal(string(pricing.TypeWeekly), result.Changes[0].PricingType)
	suite.InDelta(60, result.Changes[0].NewPrice, 0.001)
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) TestHandle_NoChanges_ReturnsEmptyTrail() {
	query, err := queries.NewGetPriceHistoryQuery(kernel.NewUUID(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Changes)
}

func (suite *GetPriceHistoryQueryHandlerTestSuite) appendChange(
	toyID kernel.UUID, pricingType pricing.Type, oldPrice, newPrice float64, effectiveDate time.Time,
) {
	record, err := pricing.RestoreHistory(kernel.NewUUID(), toyID, nil, pricingType,
		oldPrice, newPrice, "manual adjustment", "admin", effectiveDate)
	suite.Require().NoError(err)

	err = suite.pricingRepo.AppendHistory(context.Background(), record)
	suite.Require().NoError(err)
}

func TestGetPriceHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPriceHistoryQueryHandlerTestSuite))
}
