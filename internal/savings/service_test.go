package savings

import (
	"errors"
	"testing"
)

func TestParsePackage(t *testing.T) {
	for _, pkg := range Packages() {
		got, err := ParsePackage(string(pkg))
		if err != nil {
			t.Fatalf("ParsePackage(%q) returned error: %v", pkg, err)
		}
		if got != pkg {
			t.Fatalf("ParsePackage(%q) = %q", pkg, got)
		}
	}

	if _, err := ParsePackage("premium"); !errors.Is(err, ErrUnknownPackage) {
		t.Fatalf("expected ErrUnknownPackage, got %v", err)
	}
}

func TestPackageServices(t *testing.T) {
	if got := Fulfillment.Services(); len(got) != 4 {
		t.Fatalf("fulfillment services = %v", got)
	}
	if StorePack.Includes(Delivery) {
		t.Fatalf("store-pack must not include delivery")
	}
	if SortPack.Includes(Storage) {
		t.Fatalf("sort-pack must not include storage")
	}

	services := StorePack.Services()
	services[0] = Delivery
	if StorePack.Services()[0] != Storage {
		t.Fatalf("Services must return a copy")
	}
}

func TestAssumptionsValidate(t *testing.T) {
	if err := DefaultAssumptions().Validate(); err != nil {
		t.Fatalf("default assumptions invalid: %v", err)
	}

	a := DefaultAssumptions()
	a.HandlingOut.MerchantMinutesPerOrder = -1
	if err := a.Validate(); err == nil {
		t.Fatalf("expected negative rate to be rejected")
	}
}
