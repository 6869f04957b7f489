package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/savings/internal/savings"
)

func TestParse_Success(t *testing.T) {
	values := url.Values{}
	values.Set("warehouseSize", "500")
	values.Set("ordersPerMonth", "1000")
	values.Set("averageItemsPerOrder", "2.5")
	values.Set("package", "sort-pack")

	req, err := Parse(values)
	require.NoError(t, err)

	assert.Equal(t, savings.MerchantInput{WarehouseSize: 500, OrdersPerMonth: 1000, AverageItemsPerOrder: 2.5}, req.Input())
	assert.Equal(t, savings.SortPack, req.Package)
	assert.True(t, req.CanCalculate())
}

func TestParse_BlankFieldsAreZeroAndSuppressCalculate(t *testing.T) {
	values := url.Values{}
	values.Set("warehouseSize", "500")
	values.Set("ordersPerMonth", " ")

	req, err := Parse(values)
	require.NoError(t, err)

	assert.Zero(t, req.OrdersPerMonth)
	assert.Equal(t, savings.Fulfillment, req.Package)
	assert.False(t, req.CanCalculate())
}

func TestParse_Rejections(t *testing.T) {
	cases := map[string]url.Values{
		"non numeric":     {"warehouseSize": {"abc"}},
		"negative":        {"ordersPerMonth": {"-4"}},
		"not finite":      {"averageItemsPerOrder": {"NaN"}},
		"infinite":        {"warehouseSize": {"+Inf"}},
		"unknown package": {"package": {"premium"}},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(values)
			require.Error(t, err)
		})
	}
}

func TestParse_ErrorNamesField(t *testing.T) {
	_, err := Parse(url.Values{"ordersPerMonth": {"-4"}})
	require.EqualError(t, err, "ordersPerMonth must be greater than or equal to 0")

	_, err = Parse(url.Values{"package": {"premium"}})
	require.EqualError(t, err, "package must be one of fulfillment, store-pack, sort-pack")
}

func TestValuesRoundTrip(t *testing.T) {
	req := Request{WarehouseSize: 120.5, OrdersPerMonth: 300, AverageItemsPerOrder: 1.25, Package: savings.StorePack}

	parsed, err := Parse(req.Values())
	require.NoError(t, err)
	assert.Equal(t, req, parsed)
}
