package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/assignmentrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.repository = assignmentrepo.NewGormAssignmentRepository(db)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE courier_assignments").Error)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) newAssignment(orderID kernel.UUID) *courier.Assignment {
	a, err := courier.NewAssignment(orderID, kernel.NewUUID(), time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return a
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestFind_Absent_ReturnsNil() {
	a, err := suite.repository.Find(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Nil(a)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_ThenFind() {
	ctx := context.Background()
	a := suite.newAssignment(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, a))

	found, err := suite.repository.Find(ctx, a.OrderID())
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(a.CourierID(), found.CourierID())
	suite.True(a.AssignedAt().Equal(found.AssignedAt()))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_SecondAssignmentForOrder_IsConcurrentModification() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAssignment(orderID)))

	err := suite.repository.Add(ctx, suite.newAssignment(orderID))

	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestRemove() {
	ctx := context.Background()
	a := suite.newAssignment(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, a))

	suite.Require().NoError(suite.repository.Remove(ctx, a.OrderID()))
	suite.Require().NoError(suite.repository.Remove(ctx, a.OrderID()))

	found, err := suite.repository.Find(ctx, a.OrderID())
	suite.Require().NoError(err)
	suite.Nil(found)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
