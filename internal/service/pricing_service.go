package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"moving-estimate-api/internal/models"
)

// PricingService holds the reference-table lookups used to price a move.
type PricingService struct {
	repo PricingRepository
}

// PricingRepository interface for dependency injection
type PricingRepository interface {
	GetBoxPerPackage(ctx context.Context, packageID int) (int, error)
	ListTruckCapacities(ctx context.Context) ([]models.TruckCapacity, error)
	GetPricePerOptionalService(ctx context.Context, serviceID int) (int, error)
}

// NewPricingService creates a new pricing service
func NewPricingService(repo PricingRepository) *PricingService {
	return &PricingService{repo: repo}
}

// BoxesFor returns the number of boxes one unit of packageID takes.
func (s *PricingService) BoxesFor(ctx context.Context, packageID int) (int, error) {
	box, err := s.repo.GetBoxPerPackage(ctx, packageID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get boxes for package %d: %w", packageID, err)
	}
	return box, nil
}

// TotalBoxes sums boxes over all package lines. A sum that does not fit in an int
// cannot be carried by any truck and yields models.ErrNoTruckCapacity.
func (s *PricingService) TotalBoxes(ctx context.Context, lines []models.PackageLine) (int, error) {
	total := 0
	for _, line := range lines {
		if line.Quantity < 0 {
			return 0, fmt.Errorf("%w: service: negative quantity for package %d", models.ErrInvalidInput, line.PackageID)
		}
		box, err := s.BoxesFor(ctx, line.PackageID)
		if err != nil {
			return 0, err
		}
		if box > 0 && line.Quantity > (math.MaxInt-total)/box {
			return 0, fmt.Errorf("service: %d x package %d: %w", line.Quantity, line.PackageID, models.ErrNoTruckCapacity)
		}
		total += box * line.Quantity
	}
	return total, nil
}

// TruckPrice returns the price of the cheapest truck that holds totalBoxes.
func (s *PricingService) TruckPrice(ctx context.Context, totalBoxes int) (int, error) {
	tiers, err := s.repo.ListTruckCapacities(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load truck capacities: %w", err)
	}

	tier, err := CheapestTruck(tiers, totalBoxes)
	if err != nil {
		return 0, fmt.Errorf("service: %d boxes: %w", totalBoxes, err)
	}
	return tier.Price, nil
}

// OptionalServicePrice returns the price of one optional service.
func (s *PricingService) OptionalServicePrice(ctx context.Context, serviceID int) (int, error) {
	price, err := s.repo.GetPricePerOptionalService(ctx, serviceID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get price of optional service %d: %w", serviceID, err)
	}
	return price, nil
}

// OptionsPrice sums the prices of the selected optional services.
func (s *PricingService) OptionsPrice(ctx context.Context, serviceIDs []int) (int, error) {
	total := 0
	for _, id := range serviceIDs {
		price, err := s.OptionalServicePrice(ctx, id)
		if err != nil {
			return 0, err
		}
		total += price
	}
	return total, nil
}

// CheapestTruck picks the lowest-priced tier whose capacity covers boxes.
// No covering tier yields models.ErrNoTruckCapacity; there is no implicit top tier.
func CheapestTruck(tiers []models.TruckCapacity, boxes int) (models.TruckCapacity, error) {
	var best models.TruckCapacity
	found := false
	for _, t := range tiers {
		if t.MaxBox < boxes {
			continue
		}
		if !found || t.Price < best.Price {
			best = t
			found = true
		}
	}
	if !found {
		return models.TruckCapacity{}, models.ErrNoTruckCapacity
	}
	return best, nil
}

// SeasonFactor is the busy-season multiplier: March and April 1.5, September 1.2, otherwise 1.0.
func SeasonFactor(plannedDate time.Time) float64 {
	switch plannedDate.Month() {
	case time.March, time.April:
		return 1.5
	case time.September:
		return 1.2
	default:
		return 1.0
	}
}
