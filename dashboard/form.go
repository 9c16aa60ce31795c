package dashboard

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"shopmonitor/models"
)

var validate = validator.New()

// ProductForm is the add-product form. Name, quantity and price must be
// filled in before anything is submitted.
type ProductForm struct {
	Name           string `form:"name" validate:"required"`
	Category       string `form:"category"`
	Quantity       string `form:"quantity" validate:"required,number"`
	Price          string `form:"price" validate:"required,numeric"`
	ExpirationDate string `form:"expiration_date"`
}

func (f ProductForm) Validate() error {
	return validate.Struct(f)
}

// Item converts a validated form into the create request. Empty optional
// fields are sent as empty strings, as the browser form does.
func (f ProductForm) Item() (models.NewInventoryItem, error) {
	qty, err := strconv.Atoi(f.Quantity)
	if err != nil {
		return models.NewInventoryItem{}, err
	}
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		return models.NewInventoryItem{}, err
	}
	name, category, expiration := f.Name, f.Category, f.ExpirationDate
	return models.NewInventoryItem{
		Name:           &name,
		Category:       &category,
		Quantity:       &qty,
		Price:          &price,
		ExpirationDate: &expiration,
	}, nil
}

// FieldErrors returns a message per failed field, keyed by form name.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = err.Error()
		return out
	}
	labels := map[string]string{
		"Name": "name", "Quantity": "quantity", "Price": "price",
	}
	for _, fe := range verrs {
		key := labels[fe.Field()]
		if key == "" {
			key = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			out[key] = key + " is required"
		default:
			out[key] = key + " must be a number"
		}
	}
	return out
}
