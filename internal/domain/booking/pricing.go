package booking

const (
	// RecurringDiscount is applied to every instance generated from a
	// recurring rental plan.
	RecurringDiscount = 0.9

	// CartTaxRate applies to the cart subtotal at checkout summary time,
	// never to individual bookings.
	CartTaxRate = 0.10

	lateFeeMultiplier = 1.5
)

// Quote prices a rental: days × perDay × discountFactor.
func Quote(days int, perDay Money, discountFactor float64) Money {
	if discountFactor == 1 {
		return perDay.MulDays(days)
	}
	return perDay.MulDays(days).MulFactor(discountFactor)
}

// LoyaltyPoints earned for a charge: one point per full ten dollars.
func LoyaltyPoints(total Money) int64 {
	return total.Cents() / 1000
}
