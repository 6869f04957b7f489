package savings

const monthsPerYear = 12

// MerchantInput represents the business metrics entered by the merchant.
type MerchantInput struct {
	WarehouseSize        float64 `json:"warehouseSize"`
	OrdersPerMonth       float64 `json:"ordersPerMonth"`
	AverageItemsPerOrder float64 `json:"averageItemsPerOrder"`
}

// TotalItems is the monthly item volume handled inbound.
func (in MerchantInput) TotalItems() float64 {
	return in.OrdersPerMonth * in.AverageItemsPerOrder
}

// PartyCosts is one party's side of the comparison.
// Services always carries every service; excluded ones are 0.
type PartyCosts struct {
	Services map[Service]float64 `json:"services"`
	Subtotal float64             `json:"subtotal"`
	Overhead float64             `json:"overhead"`
	Total    float64             `json:"total"`
}

// Cost returns the cost of a single service.
func (p PartyCosts) Cost(s Service) float64 {
	return p.Services[s]
}

// Line compares both parties for one included service.
type Line struct {
	Service           Service `json:"service"`
	Merchant          float64 `json:"merchant"`
	Alternate         float64 `json:"alternate"`
	Savings           float64 `json:"savings"`
	SavingsPercentage float64 `json:"savingsPercentage"`
}

// Summary holds the derived savings figures.
type Summary struct {
	Monthly    float64 `json:"monthly"`
	Yearly     float64 `json:"yearly"`
	Percentage float64 `json:"percentage"`
}

// Result is the full cost comparison consumed by the summary view and the report.
type Result struct {
	Input     MerchantInput `json:"input"`
	Package   Package       `json:"package"`
	Merchant  PartyCosts    `json:"merchant"`
	Alternate PartyCosts    `json:"alternate"`
	Lines     []Line        `json:"lines"`
	Savings   Summary       `json:"savings"`
}

type costFunc func(in MerchantInput, a Assumptions) (merchant, alternate float64)

var formulas = map[Service]costFunc{
	Storage:     storageCost,
	HandlingIn:  handlingInCost,
	HandlingOut: handlingOutCost,
	Delivery:    deliveryCost,
}

func storageCost(in MerchantInput, a Assumptions) (float64, float64) {
	base := in.WarehouseSize * a.Storage.CostPerSqm
	return base * a.Storage.MerchantOverheadMultiplier, base
}

func handlingInCost(in MerchantInput, a Assumptions) (float64, float64) {
	items := in.TotalItems()
	r := a.HandlingIn
	merchant := items * r.MerchantMinutesPerItem * r.LaborCostPerMinute
	alternate := items * r.AlternateMinutesPerItem * r.LaborCostPerMinute * r.AlternateEfficiencyMultiplier
	return merchant, alternate
}

func handlingOutCost(in MerchantInput, a Assumptions) (float64, float64) {
	orders := in.OrdersPerMonth
	r := a.HandlingOut
	merchant := orders * r.MerchantMinutesPerOrder * r.LaborCostPerMinute
	alternate := orders * r.AlternateMinutesPerOrder * r.LaborCostPerMinute * r.AlternateEfficiencyMultiplier
	return merchant, alternate
}

func deliveryCost(in MerchantInput, a Assumptions) (float64, float64) {
	return in.OrdersPerMonth * a.Delivery.MerchantCostPerOrder, in.OrdersPerMonth * a.Delivery.AlternateCostPerOrder
}

// Compute prices the merchant's in-house operation against the alternate provider
// for the services included in pkg. It has no side effects and never fails.
func Compute(input MerchantInput, pkg Package, a Assumptions) Result {
	merchant := newPartyCosts()
	alternate := newPartyCosts()
	included := pkg.Services()
	lines := make([]Line, 0, len(included))

	for _, s := range included {
		m, alt := formulas[s](input, a)
		merchant.Services[s] = m
		alternate.Services[s] = alt
		merchant.Subtotal += m
		alternate.Subtotal += alt

		lines = append(lines, Line{
			Service:           s,
			Merchant:          m,
			Alternate:         alt,
			Savings:           m - alt,
			SavingsPercentage: percentOf(m-alt, m),
		})
	}

	merchant.Overhead = merchant.Subtotal * a.Overhead.MerchantRate
	alternate.Overhead = a.Overhead.AlternateOverhead
	merchant.Total = merchant.Subtotal + merchant.Overhead
	alternate.Total = alternate.Subtotal + alternate.Overhead

	monthly := merchant.Total - alternate.Total

	return Result{
		Input:     input,
		Package:   pkg,
		Merchant:  merchant,
		Alternate: alternate,
		Lines:     lines,
		Savings: Summary{
			Monthly:    monthly,
			Yearly:     monthly * monthsPerYear,
			Percentage: percentOf(monthly, merchant.Total),
		},
	}
}

func newPartyCosts() PartyCosts {
	services := make(map[Service]float64, len(formulas))
	for _, s := range Services() {
		services[s] = 0
	}
	return PartyCosts{Services: services}
}

// percentOf is 0 when whole is not positive.
func percentOf(part, whole float64) float64 {
	if whole > 0 {
		return part / whole * 100
	}
	return 0
}
