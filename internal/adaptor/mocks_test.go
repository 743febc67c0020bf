package adaptor

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID int) (*entity.Booking, error) {
	args := m.Called(ctx, userID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingService) ReserveRoom(ctx context.Context, userID, roomID int) (*entity.Booking, error) {
	args := m.Called(ctx, userID, roomID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingService) ChangeRoom(ctx context.Context, userID, roomID int) (*entity.Booking, error) {
	args := m.Called(ctx, userID, roomID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, req *request.SignUpRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, req *request.SignInRequest) (*entity.User, *entity.Session, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*entity.User)
	session, _ := args.Get(1).(*entity.Session)
	return user, session, args.Error(2)
}
