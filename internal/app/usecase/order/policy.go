package order

import (
	"fmt"

	"github.com/avGenie/go-order-admin/internal/app/entity"
)

type PricePolicy string

const (
	// PriceTrust stores the unit price supplied by the caller.
	PriceTrust PricePolicy = `trust`
	// PriceCatalog replaces the caller price with the current catalog price.
	PriceCatalog PricePolicy = `catalog`
)

func ParsePricePolicy(raw string) (PricePolicy, error) {
	switch PricePolicy(raw) {
	case "", PriceTrust:
		return PriceTrust, nil
	case PriceCatalog:
		return PriceCatalog, nil
	default:
		return "", fmt.Errorf("unknown price policy: %s", raw)
	}
}

type StatusPolicy string

const (
	// StatusAny lets any status follow any other status.
	StatusAny StatusPolicy = `any`
	// StatusStrict only allows transitions from the transitions table.
	StatusStrict StatusPolicy = `strict`
)

func ParseStatusPolicy(raw string) (StatusPolicy, error) {
	switch StatusPolicy(raw) {
	case "", StatusAny:
		return StatusAny, nil
	case StatusStrict:
		return StatusStrict, nil
	default:
		return "", fmt.Errorf("unknown status policy: %s", raw)
	}
}

var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPlaced:    {entity.StatusShipped, entity.StatusCancelled},
	entity.StatusShipped:   {entity.StatusDelivered, entity.StatusCancelled},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

// Allowed reports whether an order in status from may be moved to status to.
// Setting the current status again is always allowed.
func (p StatusPolicy) Allowed(from, to entity.OrderStatus) bool {
	if p != StatusStrict || from == to {
		return true
	}

	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}
