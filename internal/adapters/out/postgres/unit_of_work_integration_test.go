package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/eventrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work against
// a real PostgreSQL instance, including the conditional status write and the
// append-only event log ordering.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects, and migrates the
// schema used by the parcel store and the event log.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &eventrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, parcel_events RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.ParcelEventRepository())
	suite.NotNil(uow2.ParcelRepository())
	suite.NotNil(uow2.ParcelEventRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcelRepository_RoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := createTestParcel(suite.T(), "Istanbul", "Ankara")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(testParcel.ID().IsEqual(retrieved.ID()))
	suite.Equal(testParcel.TrackingNumber().String(), retrieved.TrackingNumber().String())
	suite.Equal(parcel.Created, retrieved.Status())
	suite.Equal([]string{"Istanbul", "Ankara"}, retrieved.Route().Cities())
	suite.Equal(parcel.NoRouteProgress, retrieved.Route().CurrentIndex())
	suite.Nil(retrieved.ActualDelivery())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcelRepository_GetByTrackingNumber() {
	ctx := context.Background()
	testParcel := createTestParcel(suite.T(), "Istanbul")
	suite.addParcel(testParcel)

	retrieved, err := suite.factory.Create().ParcelRepository().
		GetByTrackingNumber(ctx, testParcel.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(testParcel.ID().IsEqual(retrieved.ID()))

	_, err = suite.factory.Create().ParcelRepository().
		GetByTrackingNumber(ctx, kernel.NewTrackingNumber())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcelRepository_DuplicateTrackingNumber() {
	ctx := context.Background()
	first := createTestParcel(suite.T(), "Istanbul")
	suite.addParcel(first)

	duplicate, err := parcel.NewParcel(
		kernel.NewUUID(),
		first.TrackingNumber(),
		kernel.NewUUID(),
		mustRoute(suite.T()),
		nil,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.factory.Create().ParcelRepository().Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, ports.ErrTrackingNumberTaken)
}

// TestParcelRepository_ConditionalUpdateRace runs two writers racing on the
// same parcel; the conditional WHERE must let exactly one of them win.
func (suite *UnitOfWorkIntegrationTestSuite) TestParcelRepository_ConditionalUpdateRace() {
	ctx := context.Background()
	testParcel := createTestParcel(suite.T(), "Istanbul", "Ankara")
	suite.addParcel(testParcel)

	// both writers read the same CREATED snapshot before either one writes,
	// so their conditional updates are guaranteed to collide
	targets := []parcel.Status{parcel.Assigned, parcel.Cancelled}
	snapshots := make([]*parcel.Parcel, len(targets))
	for i, target := range targets {
		aggregate, err := suite.factory.Create().ParcelRepository().Get(ctx, testParcel.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(aggregate.TransitionTo(target, time.Now().UTC()))
		snapshots[i] = aggregate
	}

	var wg sync.WaitGroup
	results := make([]error, len(targets))
	for i := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.factory.Create().ParcelRepository().
				Update(ctx, snapshots[i], parcel.Created)
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrConcurrentModification,
			"loser must fail with a concurrent modification error")
	}
	suite.Equal(1, winners, "exactly one racing update should win")

	final, err := suite.factory.Create().ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Contains(targets, final.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcelRepository_UpdateMissingParcel() {
	ctx := context.Background()
	orphan := createTestParcel(suite.T(), "Istanbul")

	err := suite.factory.Create().ParcelRepository().Update(ctx, orphan, parcel.Created)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParcelRepository_GetAllOverdue() {
	ctx := context.Background()
	now := time.Now().UTC()

	pastETA := now.Add(-2 * time.Hour)
	futureETA := now.Add(24 * time.Hour)

	overdue := createTestParcelWithETA(suite.T(), &pastETA)
	onTime := createTestParcelWithETA(suite.T(), &futureETA)
	noETA := createTestParcelWithETA(suite.T(), nil)
	suite.addParcel(overdue)
	suite.addParcel(onTime)
	suite.addParcel(noETA)

	// delivered parcels are never overdue, whatever their ETA says
	deliveredLate := createTestParcelWithETA(suite.T(), &pastETA)
	suite.addParcel(deliveredLate)
	suite.deliver(deliveredLate)

	parcels, err := suite.factory.Create().ParcelRepository().GetAllOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 1)
	suite.True(overdue.ID().IsEqual(parcels[0].ID()))
}

// TestEventRepository_SequenceOrder appends events with the same wall-clock
// timestamp and verifies the storage sequence keeps them in append order.
func (suite *UnitOfWorkIntegrationTestSuite) TestEventRepository_SequenceOrder() {
	ctx := context.Background()
	testParcel := createTestParcel(suite.T(), "Istanbul")
	suite.addParcel(testParcel)

	createdAt := time.Now().UTC().Truncate(time.Second)
	descriptions := []string{"first", "second", "third"}

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	eventRepo := uow.ParcelEventRepository()
	for _, description := range descriptions {
		event, eventErr := parcel.NewEvent(
			kernel.NewUUID(),
			testParcel.ID(),
			parcel.EventTypeLocationUpdate,
			description,
			"Istanbul depot",
			nil,
			createdAt,
		)
		suite.Require().NoError(eventErr)

		suite.Require().NoError(eventRepo.Add(ctx, event))
		suite.Positive(event.Sequence(), "sequence must be assigned on insert")
	}

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	events, err := suite.factory.Create().ParcelEventRepository().
		ListByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)

	var lastSequence int64
	for i, event := range events {
		suite.Equal(descriptions[i], event.Description())
		suite.Greater(event.Sequence(), lastSequence,
			"sequences must be strictly increasing")
		lastSequence = event.Sequence()
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEventRepository_CoordinatesRoundTrip() {
	ctx := context.Background()
	testParcel := createTestParcel(suite.T(), "Istanbul")
	suite.addParcel(testParcel)

	coordinates, err := kernel.NewCoordinates(41.0082, 28.9784)
	suite.Require().NoError(err)

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		testParcel.ID(),
		parcel.EventTypeLocationUpdate,
		"position reported",
		"Istanbul depot",
		&coordinates,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	repo := suite.factory.Create().ParcelEventRepository()
	suite.Require().NoError(repo.Add(ctx, event))

	events, err := repo.ListByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Require().NotNil(events[0].Coordinates())
	suite.True(coordinates.IsEqual(*events[0].Coordinates()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEventRepository_HasEventOfType() {
	ctx := context.Background()
	testParcel := createTestParcel(suite.T(), "Istanbul")
	suite.addParcel(testParcel)

	repo := suite.factory.Create().ParcelEventRepository()

	found, err := repo.HasEventOfType(ctx, testParcel.ID(), parcel.EventTypeDeliveryDelayed)
	suite.Require().NoError(err)
	suite.False(found)

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		testParcel.ID(),
		parcel.EventTypeDeliveryDelayed,
		"estimated delivery has passed",
		"",
		nil,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, event))

	found, err = repo.HasEventOfType(ctx, testParcel.ID(), parcel.EventTypeDeliveryDelayed)
	suite.Require().NoError(err)
	suite.True(found)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackSpansBothRepositories() {
	ctx := context.Background()
	testParcel := createTestParcel(suite.T(), "Istanbul")

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		testParcel.ID(),
		parcel.EventTypeCreated,
		"parcel registered",
		"",
		nil,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = uow.ParcelEventRepository().Add(ctx, event)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().Error(err, "Parcel should not exist after rollback")

	events, err := suite.factory.Create().ParcelEventRepository().
		ListByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Empty(events, "Events should not exist after rollback")
}

// addParcel persists a parcel outside any explicit transaction.
func (suite *UnitOfWorkIntegrationTestSuite) addParcel(aggregate *parcel.Parcel) {
	err := suite.factory.Create().ParcelRepository().Add(context.Background(), aggregate)
	suite.Require().NoError(err)
}

// deliver walks a parcel through the full happy path to Delivered.
func (suite *UnitOfWorkIntegrationTestSuite) deliver(aggregate *parcel.Parcel) {
	ctx := context.Background()
	steps := []parcel.Status{
		parcel.Assigned, parcel.PickedUp, parcel.InTransit,
		parcel.OutForDelivery, parcel.Delivered,
	}
	for _, step := range steps {
		expected := aggregate.Status()
		suite.Require().NoError(aggregate.TransitionTo(step, time.Now().UTC()))
		err := suite.factory.Create().ParcelRepository().Update(ctx, aggregate, expected)
		suite.Require().NoError(err)
	}
}

func mustRoute(t *testing.T, cities ...string) parcel.Route {
	t.Helper()
	route, err := parcel.NewRoute(cities)
	if err != nil {
		t.Fatal(err)
	}
	return route
}

// createTestParcel creates a valid freshly registered parcel.
func createTestParcel(t *testing.T, cities ...string) *parcel.Parcel {
	t.Helper()
	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(),
		kernel.NewUUID(),
		mustRoute(t, cities...),
		nil,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	return testParcel
}

// createTestParcelWithETA creates a parcel with the given estimated delivery.
func createTestParcelWithETA(t *testing.T, eta *time.Time) *parcel.Parcel {
	t.Helper()
	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(),
		kernel.NewUUID(),
		mustRoute(t, "Istanbul", "Ankara"),
		eta,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	return testParcel
}
