package models

const (
	ProductCollection  = "product"
	CustomerCollection = "customer"
	RentalCollection   = "rentals"
)

// Product is one row of the products CSV. QuantityAvailable is stored as an
// integer so that availability filters compare numerically.
type Product struct {
	ProductID         string `csv:"product_id" bson:"product_id"`
	Description       string `csv:"description" bson:"description"`
	ProductType       string `csv:"product_type" bson:"product_type"`
	QuantityAvailable int64  `csv:"quantity_available" bson:"quantity_available"`
}

type Customer struct {
	UserID      string `csv:"user_id" bson:"user_id"`
	Name        string `csv:"name" bson:"name"`
	Address     string `csv:"address" bson:"address"`
	PhoneNumber string `csv:"phone_number" bson:"phone_number"`
	Email       string `csv:"email" bson:"email"`
}

// Rental links a customer to a product. It has no identifier of its own.
type Rental struct {
	UserID    string `csv:"user_id" bson:"user_id"`
	ProductID string `csv:"product_id" bson:"product_id"`
}

// ProductInfo is the value side of the available products listing.
type ProductInfo struct {
	Description       string `json:"description"`
	ProductType       string `json:"product_type"`
	QuantityAvailable int64  `json:"quantity_available"`
}

// CustomerInfo is the value side of the renters listing.
type CustomerInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (p Product) Info() ProductInfo {
	return ProductInfo{
		Description:       p.Description,
		ProductType:       p.ProductType,
		QuantityAvailable: p.QuantityAvailable,
	}
}

func (c Customer) Info() CustomerInfo {
	return CustomerInfo{
		Name:        c.Name,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
	}
}
