package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

// memStore is an in-memory store behind every repository interface the
// services use. Its booking writes apply the same capacity guard and unique
// user constraint as Postgres.
type memStore struct {
	mu sync.Mutex

	users       map[int]*entity.User
	sessions    map[string]*entity.Session
	enrollments map[int]*entity.Enrollment // by user id
	tickets     map[int]*entity.Ticket     // by enrollment id
	rooms       map[int]*entity.Room
	bookings    map[int]*entity.Booking

	nextID int
	calls  int

	// err fails every call when set
	err error
	// beforeWrite runs inside the guarded writes before the capacity re-check
	beforeWrite func(s *memStore)
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int]*entity.User{},
		sessions:    map[string]*entity.Session{},
		enrollments: map[int]*entity.Enrollment{},
		tickets:     map[int]*entity.Ticket{},
		rooms:       map[int]*entity.Room{},
		bookings:    map[int]*entity.Booking{},
		nextID:      100,
	}
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:       memUsers{s},
		Session:    memSessions{s},
		Enrollment: memEnrollments{s},
		Ticket:     memTickets{s},
		Room:       memRooms{s},
		Booking:    memBookings{s},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

// hit counts a store access. Callers hold mu.
func (s *memStore) hit() error {
	s.calls++
	return s.err
}

// ------------- fixtures -------------

func (s *memStore) addEnrollment(userID int) *entity.Enrollment {
	e := &entity.Enrollment{Base: entity.Base{ID: s.id()}, Name: "Guest", UserID: userID}
	s.enrollments[userID] = e
	return e
}

func (s *memStore) addTicket(enrollment *entity.Enrollment, status entity.TicketStatus, includesHotel, isRemote bool) *entity.Ticket {
	t := &entity.Ticket{
		Base:         entity.Base{ID: s.id()},
		EnrollmentID: enrollment.ID,
		Status:       status,
		TicketType: entity.TicketType{
			Base:          entity.Base{ID: s.id()},
			Name:          "Presencial",
			Price:         600,
			IncludesHotel: includesHotel,
			IsRemote:      isRemote,
		},
	}
	t.TicketTypeID = t.TicketType.ID
	s.tickets[enrollment.ID] = t
	return t
}

// addEligibleUser enrolls userID with a ticket of the given status that includes the hotel
func (s *memStore) addEligibleUser(userID int, status entity.TicketStatus) {
	s.addTicket(s.addEnrollment(userID), status, true, false)
}

func (s *memStore) addRoom(capacity int) *entity.Room {
	r := &entity.Room{Base: entity.Base{ID: s.id()}, Name: "101", Capacity: capacity, HotelID: 1}
	s.rooms[r.ID] = r
	return r
}

func (s *memStore) addBooking(userID, roomID int) *entity.Booking {
	b := &entity.Booking{Base: entity.Base{ID: s.id()}, UserID: userID, RoomID: roomID}
	s.bookings[b.ID] = b
	return b
}

func (s *memStore) userBookings(userID int) int {
	n := 0
	for _, b := range s.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n
}

func (s *memStore) roomCount(roomID, excludeBookingID int) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.ID != excludeBookingID {
			n++
		}
	}
	return n
}

// ------------- repositories -------------

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return err
	}

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.s.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.s.users[user.ID] = &stored
	return nil
}

func (r memUsers) FindByID(_ context.Context, id int) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	return r.s.users[id], nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memSessions struct{ s *memStore }

func (r memSessions) Create(_ context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return err
	}

	session.ID = r.s.id()
	r.s.sessions[session.Token] = session
	return nil
}

func (r memSessions) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	return r.s.sessions[token], nil
}

type memEnrollments struct{ s *memStore }

func (r memEnrollments) FindByUserID(_ context.Context, userID int) (*entity.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	return r.s.enrollments[userID], nil
}

type memTickets struct{ s *memStore }

func (r memTickets) FindByEnrollmentID(_ context.Context, enrollmentID int) (*entity.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	return r.s.tickets[enrollmentID], nil
}

type memRooms struct{ s *memStore }

func (r memRooms) FindByID(_ context.Context, id int) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	return r.s.rooms[id], nil
}

type memBookings struct{ s *memStore }

func (r memBookings) FindByUserID(_ context.Context, userID int) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	for _, b := range r.s.bookings {
		if b.UserID == userID {
			found := *b
			found.Room = r.s.rooms[b.RoomID]
			return &found, nil
		}
	}
	return nil, nil
}

func (r memBookings) CountByRoomID(_ context.Context, roomID int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return 0, err
	}

	return r.s.roomCount(roomID, 0), nil
}

func (r memBookings) Create(_ context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return err
	}

	if err := r.guard(booking.RoomID, 0); err != nil {
		return err
	}
	for _, b := range r.s.bookings {
		if b.UserID == booking.UserID {
			return repository.ErrDuplicate
		}
	}

	booking.ID = r.s.id()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.s.bookings[booking.ID] = &entity.Booking{Base: booking.Base, UserID: booking.UserID, RoomID: booking.RoomID}
	return nil
}

func (r memBookings) UpdateRoom(_ context.Context, bookingID, roomID int) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(); err != nil {
		return nil, err
	}

	if err := r.guard(roomID, bookingID); err != nil {
		return nil, err
	}

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, errors.New("booking not found")
	}
	b.RoomID = roomID
	b.UpdatedAt = time.Now()
	updated := *b
	return &updated, nil
}

func (r memBookings) guard(roomID, excludeBookingID int) error {
	if r.s.beforeWrite != nil {
		r.s.beforeWrite(r.s)
	}
	room, ok := r.s.rooms[roomID]
	if !ok {
		return repository.ErrRoomMissing
	}
	if r.s.roomCount(roomID, excludeBookingID) >= room.Capacity {
		return repository.ErrRoomCapacityExceeded
	}
	return nil
}
