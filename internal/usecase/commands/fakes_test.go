//go:build unit

package commands_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/cart"
	"rentwheels/internal/domain/recurring"
	"rentwheels/internal/domain/review"
	"rentwheels/internal/domain/user"
	"rentwheels/internal/domain/vehicle"
	"rentwheels/internal/domain/waitlist"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"
)

var errNoRows = errs.New("no rows in result set")

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errNoRows, infra.KindNotFound)
}

type tripStats struct {
	Trips  int
	Points int64
}

// fakeState is the in-memory store shared by every fake repository of
// one test case. Each map plays the role of a table.
type fakeState struct {
	vehicleSnaps map[uuid.UUID]*shared.VehicleSnapshot
	bookingSnaps map[uuid.UUID]*shared.BookingSnapshot
	occupied     map[uuid.UUID][]booking.DateRange

	vehicles  map[uuid.UUID]*vehicle.Vehicle
	bookings  map[uuid.UUID]*booking.Booking
	cartItems map[uuid.UUID][]*cart.Item
	rentals   map[uuid.UUID]*recurring.Rental
	entries   map[uuid.UUID]*waitlist.Entry
	reviews   map[uuid.UUID]*review.Review
	reviewed  map[uuid.UUID]bool
	users     map[uuid.UUID]*user.User
	emails    map[string]bool
	stats     map[uuid.UUID]*tripStats
	lastLogin map[uuid.UUID]int
}

func newFakeState() *fakeState {
	return &fakeState{
		vehicleSnaps: make(map[uuid.UUID]*shared.VehicleSnapshot),
		bookingSnaps: make(map[uuid.UUID]*shared.BookingSnapshot),
		occupied:     make(map[uuid.UUID][]booking.DateRange),
		vehicles:     make(map[uuid.UUID]*vehicle.Vehicle),
		bookings:     make(map[uuid.UUID]*booking.Booking),
		cartItems:    make(map[uuid.UUID][]*cart.Item),
		rentals:      make(map[uuid.UUID]*recurring.Rental),
		entries:      make(map[uuid.UUID]*waitlist.Entry),
		reviews:      make(map[uuid.UUID]*review.Review),
		reviewed:     make(map[uuid.UUID]bool),
		users:        make(map[uuid.UUID]*user.User),
		emails:       make(map[string]bool),
		stats:        make(map[uuid.UUID]*tripStats),
		lastLogin:    make(map[uuid.UUID]int),
	}
}

func (s *fakeState) seedVehicleSnap(priceCents int64) *shared.VehicleSnapshot {
	snap := &shared.VehicleSnapshot{
		ID:          uuid.New(),
		AgentID:     uuid.New(),
		Name:        "Test Sedan",
		VehicleType: "Sedan",
		PriceCents:  priceCents,
		Status:      "Available",
		Location:    "Airport",
	}
	s.vehicleSnaps[snap.ID] = snap
	return snap
}

func (s *fakeState) statsFor(userID uuid.UUID) *tripStats {
	if st, ok := s.stats[userID]; ok {
		return st
	}
	return &tripStats{}
}

// fakeUoW passes the callback a transaction bound to the shared state.
// There is no rollback; tests assert against the final state only.
type fakeUoW struct {
	state *fakeState
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newFakeState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Bookings() shared.BookingRepository   { return &fakeBookingRepo{t.state} }
func (t *fakeTx) Carts() shared.CartRepository         { return &fakeCartRepo{t.state} }
func (t *fakeTx) Recurring() shared.RecurringRepository { return &fakeRecurringRepo{t.state} }
func (t *fakeTx) Waitlist() shared.WaitlistRepository  { return &fakeWaitlistRepo{t.state} }
func (t *fakeTx) Reviews() shared.ReviewRepository     { return &fakeReviewRepo{t.state} }
func (t *fakeTx) Vehicles() shared.VehicleRepository   { return &fakeVehicleRepo{t.state} }
func (t *fakeTx) Users() shared.UserRepository         { return &fakeUserRepo{t.state} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{t.state} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) VehicleByID(_ context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	if snap, ok := r.state.vehicleSnaps[id]; ok {
		return snap, nil
	}
	return nil, notFoundErr("vehicle not found")
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if snap, ok := r.state.bookingSnaps[id]; ok {
		return snap, nil
	}
	return nil, notFoundErr("booking not found")
}

func (r *fakeReads) OccupiedRanges(_ context.Context, vehicleID uuid.UUID) ([]booking.DateRange, error) {
	return r.state.occupied[vehicleID], nil
}

func (r *fakeReads) HasOccupyingBookings(_ context.Context, vehicleID uuid.UUID) (bool, error) {
	return len(r.state.occupied[vehicleID]) > 0, nil
}

type fakeBookingRepo struct {
	state *fakeState
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	r.state.bookings[b.ID()] = b
	return b.ID(), nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if b, ok := r.state.bookings[id]; ok {
		return b, nil
	}
	return nil, notFoundErr("booking not found")
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.state.bookings[b.ID()]; !ok {
		return notFoundErr("booking not found")
	}
	r.state.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindUpcomingByRecurringParent(_ context.Context, parentID uuid.UUID, from time.Time) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.state.bookings {
		if b.RecurringParentID() == nil || *b.RecurringParentID() != parentID {
			continue
		}
		if !b.Dates().Pickup().After(from) || !b.Status().OccupiesVehicle() {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Dates().Pickup().Before(out[j].Dates().Pickup())
	})
	return out, nil
}

func (r *fakeBookingRepo) FindOverdue(_ context.Context, asOf time.Time) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.state.bookings {
		if b.IsOverdue(asOf) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	state *fakeState
}

func (r *fakeCartRepo) AddItem(_ context.Context, userID uuid.UUID, item *cart.Item) (uuid.UUID, error) {
	r.state.cartItems[userID] = append(r.state.cartItems[userID], item)
	return item.ID(), nil
}

func (r *fakeCartRepo) FindByUser(_ context.Context, userID uuid.UUID) (*cart.Cart, error) {
	return cart.NewCart(userID, r.state.cartItems[userID]), nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, userID, itemID uuid.UUID) error {
	items := r.state.cartItems[userID]
	for i, item := range items {
		if item.ID() == itemID {
			r.state.cartItems[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return notFoundErr("cart item not found")
}

func (r *fakeCartRepo) Clear(_ context.Context, userID uuid.UUID) error {
	delete(r.state.cartItems, userID)
	return nil
}

type fakeRecurringRepo struct {
	state *fakeState
}

func (r *fakeRecurringRepo) Create(_ context.Context, rental *recurring.Rental) (uuid.UUID, error) {
	r.state.rentals[rental.ID()] = rental
	return rental.ID(), nil
}

func (r *fakeRecurringRepo) FindByID(_ context.Context, id uuid.UUID) (*recurring.Rental, error) {
	if rental, ok := r.state.rentals[id]; ok {
		return rental, nil
	}
	return nil, notFoundErr("recurring rental not found")
}

func (r *fakeRecurringRepo) UpdateStatus(_ context.Context, rental *recurring.Rental) error {
	if _, ok := r.state.rentals[rental.ID()]; !ok {
		return notFoundErr("recurring rental not found")
	}
	r.state.rentals[rental.ID()] = rental
	return nil
}

type fakeWaitlistRepo struct {
	state *fakeState
}

func (r *fakeWaitlistRepo) Create(_ context.Context, e *waitlist.Entry) (uuid.UUID, error) {
	r.state.entries[e.ID()] = e
	return e.ID(), nil
}

func (r *fakeWaitlistRepo) FindByID(_ context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	if e, ok := r.state.entries[id]; ok {
		return e, nil
	}
	return nil, notFoundErr("waiting list entry not found")
}

func (r *fakeWaitlistRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*waitlist.Entry, error) {
	var out []*waitlist.Entry
	for _, e := range r.state.entries {
		if e.UserID() == userID && e.Status() == waitlist.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWaitlistRepo) FindAllActive(_ context.Context) ([]*waitlist.Entry, error) {
	var out []*waitlist.Entry
	for _, e := range r.state.entries {
		if e.Status() == waitlist.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWaitlistRepo) ExistsActive(_ context.Context, userID, vehicleID uuid.UUID, pickupDate time.Time) (bool, error) {
	for _, e := range r.state.entries {
		if e.Conflicts(userID, vehicleID, pickupDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWaitlistRepo) UpdateStatus(_ context.Context, e *waitlist.Entry) error {
	if _, ok := r.state.entries[e.ID()]; !ok {
		return notFoundErr("waiting list entry not found")
	}
	r.state.entries[e.ID()] = e
	return nil
}

type fakeReviewRepo struct {
	state *fakeState
}

func (r *fakeReviewRepo) Create(_ context.Context, rev *review.Review) (uuid.UUID, error) {
	if r.state.reviewed[rev.BookingID()] {
		return uuid.Nil, infra.WrapRepoErr("review already exists", errs.New("duplicate key"), infra.KindDuplicateKey)
	}
	r.state.reviewed[rev.BookingID()] = true
	r.state.reviews[rev.ID()] = rev
	return rev.ID(), nil
}

type fakeVehicleRepo struct {
	state *fakeState
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) (uuid.UUID, error) {
	r.state.vehicles[v.ID()] = v
	return v.ID(), nil
}

func (r *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	if v, ok := r.state.vehicles[id]; ok {
		return v, nil
	}
	return nil, notFoundErr("vehicle not found")
}

func (r *fakeVehicleRepo) Update(_ context.Context, v *vehicle.Vehicle) error {
	if _, ok := r.state.vehicles[v.ID()]; !ok {
		return notFoundErr("vehicle not found")
	}
	r.state.vehicles[v.ID()] = v
	return nil
}

func (r *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.vehicles[id]; !ok {
		return notFoundErr("vehicle not found")
	}
	delete(r.state.vehicles, id)
	return nil
}

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	if r.state.emails[u.Email().Value()] {
		return uuid.Nil, infra.WrapRepoErr("email taken", errs.New("duplicate key"), infra.KindDuplicateKey)
	}
	r.state.emails[u.Email().Value()] = true
	r.state.users[u.ID()] = u
	return u.ID(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	r.state.lastLogin[userID]++
	return nil
}

func (r *fakeUserRepo) ApplyTripStats(_ context.Context, userID uuid.UUID, tripsDelta int, pointsDelta int64) error {
	st, ok := r.state.stats[userID]
	if !ok {
		st = &tripStats{}
		r.state.stats[userID] = st
	}
	st.Trips += tripsDelta
	st.Points += pointsDelta
	return nil
}

// fakeNotifier records every availability notification it receives.
type fakeNotifier struct {
	notified []*queries.WaitlistEntryView
	err      error
}

func (n *fakeNotifier) VehicleAvailable(_ context.Context, entry *queries.WaitlistEntryView) error {
	if n.err != nil {
		return n.err
	}
	n.notified = append(n.notified, entry)
	return nil
}
