package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDataIntegrity means a reference lookup returned zero or several rows where exactly one was expected.
	ErrDataIntegrity = errors.New("data integrity violation")
	// ErrGeocoding covers network failures and unusable geocoder responses.
	ErrGeocoding = errors.New("geocoding failed")
	// ErrRouting covers network failures, empty routes and malformed router responses.
	ErrRouting = errors.New("routing failed")
	// ErrPricingLookup means a pricing reference row is missing.
	ErrPricingLookup = errors.New("pricing lookup failed")
	// ErrNoTruckCapacity means no truck tier is large enough for the requested boxes.
	ErrNoTruckCapacity = fmt.Errorf("%w: no truck capacity tier covers the requested boxes", ErrPricingLookup)
	// ErrInvalidInput marks a request rejected before any lookup happens.
	ErrInvalidInput = errors.New("invalid input")
)
