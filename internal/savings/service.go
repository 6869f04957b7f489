package savings

import (
	"errors"
	"fmt"
)

// Service is one fulfillment cost category.
type Service string

const (
	Storage     Service = "storage"
	HandlingIn  Service = "handling-in"
	HandlingOut Service = "handling-out"
	Delivery    Service = "delivery"
)

var serviceLabels = map[Service]string{
	Storage:     "Storage",
	HandlingIn:  "Handling In",
	HandlingOut: "Handling Out",
	Delivery:    "Delivery",
}

// Services returns every service in canonical order.
func Services() []Service {
	return []Service{Storage, HandlingIn, HandlingOut, Delivery}
}

// Label returns the display name of the service.
func (s Service) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Package is a named bundle of services compared as a unit.
type Package string

const (
	Fulfillment Package = "fulfillment"
	StorePack   Package = "store-pack"
	SortPack    Package = "sort-pack"
)

// ErrUnknownPackage is returned by ParsePackage for identifiers outside the bundle set.
var ErrUnknownPackage = errors.New("unknown package")

type bundle struct {
	label    string
	services []Service
}

// Adding a package or a service to a package only touches this table.
var bundles = map[Package]bundle{
	Fulfillment: {label: "Fulfillment", services: []Service{Storage, HandlingIn, HandlingOut, Delivery}},
	StorePack:   {label: "Store & Pack", services: []Service{Storage, HandlingIn, HandlingOut}},
	SortPack:    {label: "Sort & Pack", services: []Service{HandlingIn, HandlingOut, Delivery}},
}

// Packages returns all packages in display order.
func Packages() []Package {
	return []Package{Fulfillment, StorePack, SortPack}
}

// ParsePackage maps an identifier such as "store-pack" to its Package.
func ParsePackage(raw string) (Package, error) {
	p := Package(raw)
	if _, ok := bundles[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPackage, raw)
	}
	return p, nil
}

// Services returns the ordered set of services included in the package.
// Unknown packages include nothing.
func (p Package) Services() []Service {
	b, ok := bundles[p]
	if !ok {
		return nil
	}
	out := make([]Service, len(b.services))
	copy(out, b.services)
	return out
}

// Includes reports whether the package covers the service.
func (p Package) Includes(s Service) bool {
	for _, included := range bundles[p].services {
		if included == s {
			return true
		}
	}
	return false
}

// Label returns the display name of the package.
func (p Package) Label() string {
	if b, ok := bundles[p]; ok {
		return b.label
	}
	return string(p)
}
