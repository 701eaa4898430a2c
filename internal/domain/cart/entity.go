package cart

import (
	"errors"
	"time"

	"rentwheels/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrDuplicateItem = errors.New("vehicle with these dates is already in the cart")

// Item is one pending rental waiting for checkout. Items are durable per
// user, so a cart survives across sessions.
type Item struct {
	id          uuid.UUID
	vehicleID   uuid.UUID
	vehicleName string
	vehicleType string
	pricePerDay booking.Money
	dates       booking.DateRange
	location    string
	duration    int
	total       booking.Money
	createdAt   time.Time
}

func NewItem(
	vehicleID uuid.UUID,
	vehicleName, vehicleType string,
	pricePerDay booking.Money,
	dates booking.DateRange,
	location string,
) *Item {
	duration := dates.Days()
	return &Item{
		id:          uuid.New(),
		vehicleID:   vehicleID,
		vehicleName: vehicleName,
		vehicleType: vehicleType,
		pricePerDay: pricePerDay,
		dates:       dates,
		location:    location,
		duration:    duration,
		total:       booking.Quote(duration, pricePerDay, 1),
	}
}

func ReconstructItem(
	id, vehicleID uuid.UUID,
	vehicleName, vehicleType string,
	pricePerDay booking.Money,
	dates booking.DateRange,
	location string,
	duration int,
	total booking.Money,
	createdAt time.Time,
) *Item {
	return &Item{
		id:          id,
		vehicleID:   vehicleID,
		vehicleName: vehicleName,
		vehicleType: vehicleType,
		pricePerDay: pricePerDay,
		dates:       dates,
		location:    location,
		duration:    duration,
		total:       total,
		createdAt:   createdAt,
	}
}

func (i *Item) ID() uuid.UUID              { return i.id }
func (i *Item) VehicleID() uuid.UUID       { return i.vehicleID }
func (i *Item) VehicleName() string        { return i.vehicleName }
func (i *Item) VehicleType() string        { return i.vehicleType }
func (i *Item) PricePerDay() booking.Money { return i.pricePerDay }
func (i *Item) Dates() booking.DateRange   { return i.dates }
func (i *Item) Location() string           { return i.location }
func (i *Item) Duration() int              { return i.duration }
func (i *Item) Total() booking.Money       { return i.total }
func (i *Item) CreatedAt() time.Time       { return i.createdAt }

// Cart aggregates a user's pending items and prices the checkout summary.
type Cart struct {
	userID uuid.UUID
	items  []*Item
}

func NewCart(userID uuid.UUID, items []*Item) *Cart {
	return &Cart{userID: userID, items: items}
}

// AddItem appends an item unless an identical vehicle/date-range pair is
// already present.
func (c *Cart) AddItem(item *Item) error {
	for _, existing := range c.items {
		if existing.vehicleID == item.vehicleID &&
			existing.dates.Pickup().Equal(item.dates.Pickup()) &&
			existing.dates.Return().Equal(item.dates.Return()) {
			return ErrDuplicateItem
		}
	}
	c.items = append(c.items, item)
	return nil
}

func (c *Cart) UserID() uuid.UUID { return c.userID }
func (c *Cart) Items() []*Item    { return c.items }
func (c *Cart) IsEmpty() bool     { return len(c.items) == 0 }
func (c *Cart) Size() int         { return len(c.items) }

func (c *Cart) Subtotal() booking.Money {
	var sum booking.Money
	for _, item := range c.items {
		sum = sum.Add(item.total)
	}
	return sum
}

// Tax applies only to the cart-level checkout summary.
func (c *Cart) Tax() booking.Money {
	return c.Subtotal().MulFactor(booking.CartTaxRate)
}

func (c *Cart) Total() booking.Money {
	return c.Subtotal().Add(c.Tax())
}
