package models

// AllModels lists every model for auto-migration, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&AdminModel{},
		&SubscriberModel{},
		&CityModel{},
		&CityDiscountModel{},
		&CallModel{},
	}
}
