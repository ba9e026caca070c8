package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(
	ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllOverdue(
	ctx context.Context, asOf time.Time,
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockParcelEventRepository struct{ mock.Mock }

func (m *MockParcelEventRepository) Add(ctx context.Context, event *parcel.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockParcelEventRepository) ListByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.Event, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Event), args.Error(1)
}

func (m *MockParcelEventRepository) HasEventOfType(
	ctx context.Context, parcelID kernel.UUID, eventType parcel.EventType,
) (bool, error) {
	args := m.Called(ctx, parcelID, eventType)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) ParcelEventRepository() ports.ParcelEventRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelEventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockEventUoWFactory struct{ mock.Mock }

func (m *MockEventUoWFactory) Create() commands.EventUoW {
	args := m.Called()
	return args.Get(0).(commands.EventUoW)
}

type MockOrderDirectory struct{ mock.Mock }

func (m *MockOrderDirectory) VerifyOrderExists(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockCourierDirectory struct{ mock.Mock }

func (m *MockCourierDirectory) VerifyCourierExists(ctx context.Context, courierID kernel.UUID) error {
	args := m.Called(ctx, courierID)
	return args.Error(0)
}
