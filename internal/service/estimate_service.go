package service

import (
	"context"
	"fmt"
	"strings"

	"moving-estimate-api/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultPricePerKm is the distance charge in yen per whole kilometre.
const DefaultPricePerKm = 100

// MaxQuantity bounds the quantity of a single package line.
const MaxQuantity = 10000

// EstimateService prices a move and registers accepted estimates.
type EstimateService struct {
	distance   DistanceResolver
	pricing    Pricer
	orders     OrderRepository
	pricePerKm int
}

// DistanceResolver is implemented by DistanceService.
type DistanceResolver interface {
	RealDistance(ctx context.Context, fromPrefectureID, toPrefectureID, fromAddress, toAddress string) (float64, error)
	PrefectureDistance(ctx context.Context, fromID, toID string) (float64, error)
}

// Pricer is implemented by PricingService.
type Pricer interface {
	TotalBoxes(ctx context.Context, lines []models.PackageLine) (int, error)
	TruckPrice(ctx context.Context, totalBoxes int) (int, error)
	OptionsPrice(ctx context.Context, serviceIDs []int) (int, error)
}

// OrderRepository persists a registered estimate.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (int, error)
}

// NewEstimateService creates a new estimate service. A non-positive pricePerKm means DefaultPricePerKm.
func NewEstimateService(distance DistanceResolver, pricing Pricer, orders OrderRepository, pricePerKm int) *EstimateService {
	if pricePerKm <= 0 {
		pricePerKm = DefaultPricePerKm
	}
	return &EstimateService{distance: distance, pricing: pricing, orders: orders, pricePerKm: pricePerKm}
}

// Quote computes the price of a move without storing anything:
//
//	total = floor((floor(km) * pricePerKm + truck) * season) + options
func (s *EstimateService) Quote(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	if err := validateQuote(req); err != nil {
		return models.Estimate{}, err
	}

	meters, err := s.distance.RealDistance(ctx, req.OldPrefectureID, req.NewPrefectureID, req.OldAddress, req.NewAddress)
	if err != nil {
		return models.Estimate{}, err
	}

	straight, err := s.distance.PrefectureDistance(ctx, req.OldPrefectureID, req.NewPrefectureID)
	if err != nil {
		return models.Estimate{}, err
	}

	boxes, err := s.pricing.TotalBoxes(ctx, req.Packages)
	if err != nil {
		return models.Estimate{}, err
	}

	truck, err := s.pricing.TruckPrice(ctx, boxes)
	if err != nil {
		return models.Estimate{}, err
	}

	options, err := s.pricing.OptionsPrice(ctx, req.OptionServiceIDs)
	if err != nil {
		return models.Estimate{}, err
	}

	km := decimal.NewFromFloat(meters).Div(decimal.NewFromInt(1000)).Floor()
	distancePrice := int(km.IntPart()) * s.pricePerKm

	factor := SeasonFactor(req.PlannedDate)
	seasonal := decimal.NewFromInt(int64(distancePrice + truck)).
		Mul(decimal.NewFromFloat(factor)).
		Floor()

	estimate := models.Estimate{
		RouteDistanceMeters: meters,
		PrefectureDistance:  straight,
		Boxes:               boxes,
		DistancePrice:       distancePrice,
		TruckPrice:          truck,
		SeasonFactor:        factor,
		OptionPrice:         options,
		TotalPrice:          int(seasonal.IntPart()) + options,
	}

	log.Ctx(ctx).Debug().
		Str("from", req.OldPrefectureID).
		Str("to", req.NewPrefectureID).
		Float64("route_m", meters).
		Int("boxes", boxes).
		Int("total", estimate.TotalPrice).
		Msg("estimate computed")

	return estimate, nil
}

// Register prices the move and, only if pricing succeeds, stores the customer with
// its packages and option services.
func (s *EstimateService) Register(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	if err := validateRegistration(req); err != nil {
		return models.Estimate{}, err
	}

	estimate, err := s.Quote(ctx, req)
	if err != nil {
		return models.Estimate{}, err
	}

	id, err := s.orders.CreateOrder(ctx, req.Order())
	if err != nil {
		return models.Estimate{}, fmt.Errorf("service: failed to register order: %w", err)
	}
	estimate.CustomerID = id

	log.Ctx(ctx).Info().Int("customer_id", id).Int("total", estimate.TotalPrice).Msg("estimate registered")
	return estimate, nil
}

func validateQuote(req models.EstimateRequest) error {
	var problems []string
	if strings.TrimSpace(req.OldPrefectureID) == "" {
		problems = append(problems, "old_prefecture_id is required")
	}
	if strings.TrimSpace(req.NewPrefectureID) == "" {
		problems = append(problems, "new_prefecture_id is required")
	}
	if strings.TrimSpace(req.OldAddress) == "" {
		problems = append(problems, "old_address is required")
	}
	if strings.TrimSpace(req.NewAddress) == "" {
		problems = append(problems, "new_address is required")
	}
	if req.PlannedDate.IsZero() {
		problems = append(problems, "planned_date is required")
	}

	seenPackages := make(map[int]struct{}, len(req.Packages))
	for _, p := range req.Packages {
		if p.Quantity <= 0 || p.Quantity > MaxQuantity {
			problems = append(problems, fmt.Sprintf("quantity of package %d must be between 1 and %d", p.PackageID, MaxQuantity))
		}
		if _, ok := seenPackages[p.PackageID]; ok {
			problems = append(problems, fmt.Sprintf("package %d listed twice", p.PackageID))
		}
		seenPackages[p.PackageID] = struct{}{}
	}

	seenServices := make(map[int]struct{}, len(req.OptionServiceIDs))
	for _, id := range req.OptionServiceIDs {
		if _, ok := seenServices[id]; ok {
			problems = append(problems, fmt.Sprintf("option service %d listed twice", id))
		}
		seenServices[id] = struct{}{}
	}

	return joinProblems(problems)
}

func validateRegistration(req models.EstimateRequest) error {
	var problems []string
	if strings.TrimSpace(req.CustomerName) == "" {
		problems = append(problems, "customer_name is required")
	}
	if strings.TrimSpace(req.Tel) == "" {
		problems = append(problems, "tel is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email is required")
	}
	return joinProblems(problems)
}

func joinProblems(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", models.ErrInvalidInput, strings.Join(problems, "; "))
}
