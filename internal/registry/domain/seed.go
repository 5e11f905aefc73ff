package domain

// SeedUsers returns the demo accounts a fresh installation starts with.
// A new slice is returned on every call so callers can mutate freely.
func SeedUsers() []User {
	return []User{
		{
			ID:      "1",
			Name:    "Juan Propietario",
			Email:   "juan@demo.com",
			Phone:   "1122334455",
			CUIT:    "20112233445",
			Role:    RoleOwner,
			GroupID: "group-1",
		},
		{
			ID:      "2",
			Name:    "Maria Inquilina",
			Email:   "maria@demo.com",
			Phone:   "1155667788",
			CUIT:    "27112233445",
			Role:    RoleTenant,
			GroupID: "group-1",
		},
	}
}

// SeedProperties returns the demo property a fresh installation starts with.
func SeedProperties() []Property {
	return []Property{
		{
			ID:   "prop-1",
			Name: "Depto Centro",
			Address: Address{
				Street:    "Av. Corrientes 1234",
				City:      "CABA",
				Country:   "Argentina",
				Floor:     "5",
				Apartment: "A",
			},
			Type:     PropertyApartment,
			Currency: CurrencyUSD,
			Features: PropertyFeatures{
				Rooms:       2,
				Bathrooms:   1,
				CoveredArea: 50,
				Amenities:   []string{"Gym", "Sum"},
			},
			OwnerID:   "1",
			TenantID:  "2",
			Images:    []string{},
			Documents: []Document{},
		},
	}
}
