package form

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Simplici0/savings/internal/savings"
)

// Field names shared by the HTML form, the report query string and the JSON API.
const (
	FieldWarehouseSize        = "warehouseSize"
	FieldOrdersPerMonth       = "ordersPerMonth"
	FieldAverageItemsPerOrder = "averageItemsPerOrder"
	FieldPackage              = "package"
)

// Request is a validated calculator submission.
type Request struct {
	WarehouseSize        float64         `json:"warehouseSize" validate:"gte=0"`
	OrdersPerMonth       float64         `json:"ordersPerMonth" validate:"gte=0"`
	AverageItemsPerOrder float64         `json:"averageItemsPerOrder" validate:"gte=0"`
	Package              savings.Package `json:"package" validate:"required,package"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("package", func(fl validator.FieldLevel) bool {
		_, err := savings.ParsePackage(fl.Field().String())
		return err == nil
	})
	return v
}

// Parse reads a submission from form or query values. Blank numeric fields
// count as 0 and a missing package selects fulfillment.
func Parse(values url.Values) (Request, error) {
	req := Request{Package: savings.Fulfillment}

	var err error
	if req.WarehouseSize, err = parseNumber(values.Get(FieldWarehouseSize), FieldWarehouseSize); err != nil {
		return req, err
	}
	if req.OrdersPerMonth, err = parseNumber(values.Get(FieldOrdersPerMonth), FieldOrdersPerMonth); err != nil {
		return req, err
	}
	if req.AverageItemsPerOrder, err = parseNumber(values.Get(FieldAverageItemsPerOrder), FieldAverageItemsPerOrder); err != nil {
		return req, err
	}
	if raw := strings.TrimSpace(values.Get(FieldPackage)); raw != "" {
		req.Package = savings.Package(raw)
	}

	return req, req.Validate()
}

// Validate checks struct rules and finiteness.
func (r Request) Validate() error {
	numbers := []struct {
		name  string
		value float64
	}{
		{FieldWarehouseSize, r.WarehouseSize},
		{FieldOrdersPerMonth, r.OrdersPerMonth},
		{FieldAverageItemsPerOrder, r.AverageItemsPerOrder},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s must be a finite number", n.name)
		}
	}

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return fmt.Errorf("validate request: %w", err)
	}
	return nil
}

// Input returns the engine input.
func (r Request) Input() savings.MerchantInput {
	return savings.MerchantInput{
		WarehouseSize:        r.WarehouseSize,
		OrdersPerMonth:       r.OrdersPerMonth,
		AverageItemsPerOrder: r.AverageItemsPerOrder,
	}
}

// CanCalculate is false while any numeric field is still 0; the UI keeps the
// Calculate action disabled in that case.
func (r Request) CanCalculate() bool {
	return r.WarehouseSize > 0 && r.OrdersPerMonth > 0 && r.AverageItemsPerOrder > 0
}

// Values encodes the request back into query values.
func (r Request) Values() url.Values {
	values := url.Values{}
	values.Set(FieldWarehouseSize, strconv.FormatFloat(r.WarehouseSize, 'f', -1, 64))
	values.Set(FieldOrdersPerMonth, strconv.FormatFloat(r.OrdersPerMonth, 'f', -1, 64))
	values.Set(FieldAverageItemsPerOrder, strconv.FormatFloat(r.AverageItemsPerOrder, 'f', -1, 64))
	values.Set(FieldPackage, string(r.Package))
	return values
}

func parseNumber(raw, field string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric", field)
	}
	return value, nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "gte":
		return fmt.Errorf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "required", "package":
		return fmt.Errorf("%s must be one of %s", fe.Field(), packageList())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

func packageList() string {
	names := make([]string, 0, len(savings.Packages()))
	for _, p := range savings.Packages() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
