package reservation

import "luxstay-api/internal/domain/money"

type PriceCalculator interface {
	TotalPrice(pricePerNight money.Money, period StayPeriod) money.Money
}

// NightlyPriceCalculator charges every started night at the room rate.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) TotalPrice(pricePerNight money.Money, period StayPeriod) money.Money {
	return pricePerNight.Times(period.Nights())
}
