package request

import (
	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type AddOnRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// CartItemRequest is one dated line of a direct checkout.
type CartItemRequest struct {
	ProductID       string         `json:"product_id"`
	ProductName     string         `json:"product_name" binding:"required"`
	Size            string         `json:"size"`
	Customizations  string         `json:"customizations"`
	Price           float64        `json:"price" binding:"required"`
	AddOns          []AddOnRequest `json:"add_ons"`
	Date            string         `json:"date" binding:"required"`
	PickupTime      string         `json:"pickup_time"`
	FulfillmentType string         `json:"fulfillment_type" binding:"required"`
}

// CheckoutRequest starts a payment session for a cart of dated items.
type CheckoutRequest struct {
	Customer CustomerRequest   `json:"customer" binding:"required"`
	Items    []CartItemRequest `json:"items" binding:"required,min=1"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	items := make([]entities.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		addOns := make([]entities.AddOn, 0, len(it.AddOns))
		for _, a := range it.AddOns {
			addOns = append(addOns, entities.AddOn{Name: a.Name, Price: a.Price})
		}
		items = append(items, entities.CartItem{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Size:            it.Size,
			Customizations:  it.Customizations,
			Price:           it.Price,
			AddOns:          addOns,
			Date:            it.Date,
			PickupTime:      it.PickupTime,
			FulfillmentType: entities.FulfillmentType(it.FulfillmentType),
		})
	}
	return usecase.CheckoutInput{
		Customer: entities.Customer{Name: r.Customer.Name, Email: r.Customer.Email, Phone: r.Customer.Phone},
		Items:    items,
	}
}
