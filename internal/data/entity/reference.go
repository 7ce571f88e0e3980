package entity

// Reference rows untuk association sets

type Amenity struct {
	ID   int64  `db:"amenity_id"`
	Name string `db:"amenity_name"`
}

type CuisineType struct {
	ID   int64  `db:"cuisine_type_id"`
	Name string `db:"cuisine_name"`
}

type PaymentMethod struct {
	ID   int64  `db:"payment_method_id"`
	Name string `db:"method_name"`
}

type ServiceLanguage struct {
	ID   int64  `db:"language_id"`
	Name string `db:"language_name"`
}
