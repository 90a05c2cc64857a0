package service

import (
	"context"
	"fmt"
	"strings"

	"moving-estimate-api/internal/models"

	"golang.org/x/sync/errgroup"
)

// DistanceService turns prefecture ids and street addresses into distances.
type DistanceService struct {
	repo     PrefectureRepository
	geocoder Geocoder
	router   Router
}

// PrefectureRepository interface for dependency injection
type PrefectureRepository interface {
	ListPrefectures(ctx context.Context) ([]models.Prefecture, error)
	GetPrefectureName(ctx context.Context, prefectureID string) (string, error)
	FindPrefectureDistance(ctx context.Context, fromID, toID string) (float64, bool, error)
}

// Geocoder resolves a full address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, error)
}

// Router returns the driving distance in meters between two coordinates.
type Router interface {
	Distance(ctx context.Context, from, to models.Coordinate) (float64, error)
}

// NewDistanceService creates a new distance service
func NewDistanceService(repo PrefectureRepository, geocoder Geocoder, router Router) *DistanceService {
	return &DistanceService{repo: repo, geocoder: geocoder, router: router}
}

// Prefectures lists all prefectures.
func (s *DistanceService) Prefectures(ctx context.Context) ([]models.Prefecture, error) {
	prefectures, err := s.repo.ListPrefectures(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list prefectures: %w", err)
	}
	return prefectures, nil
}

// FullAddress prefixes address with the display name of its prefecture.
func (s *DistanceService) FullAddress(ctx context.Context, prefectureID, address string) (string, error) {
	if strings.TrimSpace(prefectureID) == "" {
		return "", fmt.Errorf("%w: service: prefecture id cannot be empty", models.ErrInvalidInput)
	}

	name, err := s.repo.GetPrefectureName(ctx, prefectureID)
	if err != nil {
		return "", fmt.Errorf("service: failed to resolve prefecture %q: %w", prefectureID, err)
	}
	return name + address, nil
}

// ResolveCoordinate geocodes an address within a prefecture.
func (s *DistanceService) ResolveCoordinate(ctx context.Context, prefectureID, address string) (models.Coordinate, error) {
	full, err := s.FullAddress(ctx, prefectureID, address)
	if err != nil {
		return models.Coordinate{}, err
	}

	coord, err := s.geocoder.Geocode(ctx, full)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("service: failed to geocode %q: %w", full, err)
	}
	return coord, nil
}

// RealDistance returns the driving distance in meters between two addresses.
// Both addresses are geocoded concurrently; the route is requested once both are known.
func (s *DistanceService) RealDistance(ctx context.Context, fromPrefectureID, toPrefectureID, fromAddress, toAddress string) (float64, error) {
	fromFull, err := s.FullAddress(ctx, fromPrefectureID, fromAddress)
	if err != nil {
		return 0, err
	}
	toFull, err := s.FullAddress(ctx, toPrefectureID, toAddress)
	if err != nil {
		return 0, err
	}

	var fromCoord, toCoord models.Coordinate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.geocoder.Geocode(gctx, fromFull)
		if err != nil {
			return fmt.Errorf("service: failed to geocode origin %q: %w", fromFull, err)
		}
		fromCoord = c
		return nil
	})
	g.Go(func() error {
		c, err := s.geocoder.Geocode(gctx, toFull)
		if err != nil {
			return fmt.Errorf("service: failed to geocode destination %q: %w", toFull, err)
		}
		toCoord = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	meters, err := s.router.Distance(ctx, fromCoord, toCoord)
	if err != nil {
		return 0, fmt.Errorf("service: failed to route %s -> %s: %w", fromCoord, toCoord, err)
	}
	return meters, nil
}

// PrefectureDistance returns the straight-line distance in km between two prefectures,
// or 0 when no record exists for the pair.
func (s *DistanceService) PrefectureDistance(ctx context.Context, fromID, toID string) (float64, error) {
	distance, found, err := s.repo.FindPrefectureDistance(ctx, fromID, toID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to look up prefecture distance: %w", err)
	}
	if !found {
		return 0, nil
	}
	return distance, nil
}
