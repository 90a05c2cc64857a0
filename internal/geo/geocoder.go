package geo

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"moving-estimate-api/internal/models"
	"moving-estimate-api/internal/obs"
)

// Geocoder resolves free-text addresses through an XML geocoding service
// (geocoding.jp style: GET ?q=<address>).
type Geocoder struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewGeocoder creates a geocoder client. A nil client means http.DefaultClient.
func NewGeocoder(baseURL, userAgent string, client *http.Client) (*Geocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("geo: geocoder base url is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("geo: invalid geocoder base url: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Geocoder{client: client, baseURL: baseURL, userAgent: userAgent}, nil
}

type xmlCoordinate struct {
	Lat string `xml:"lat"`
	Lon string `xml:"lon"`
	Lng string `xml:"lng"`
}

// Geocode returns the first coordinate the service reports for address.
// Every failure is reported as models.ErrGeocoding.
func (g *Geocoder) Geocode(ctx context.Context, address string) (_ models.Coordinate, err error) {
	defer obs.Time(ctx, "geo.Geocode")(&err)

	ctx, span := startSpan(ctx, "geocode", g.baseURL)
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(address) == "" {
		return models.Coordinate{}, fmt.Errorf("%w: geo: address is empty", models.ErrGeocoding)
	}

	req, err := newRequest(ctx, g.baseURL, "application/xml", g.userAgent)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: geo: %w", models.ErrGeocoding, err)
	}
	q := req.URL.Query()
	q.Set("q", address)
	req.URL.RawQuery = q.Encode()

	resp, err := do(g.client, req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: geo: request %q: %w", models.ErrGeocoding, address, err)
	}
	defer resp.Body.Close()

	coord, err := parseCoordinate(resp.Body)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: geo: %q: %w", models.ErrGeocoding, address, err)
	}
	return coord, nil
}

// parseCoordinate scans the document for the first <coordinate> element at any depth.
func parseCoordinate(r io.Reader) (models.Coordinate, error) {
	dec := xml.NewDecoder(r)
	var serviceErr string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if serviceErr != "" {
				return models.Coordinate{}, fmt.Errorf("no coordinate in response: %s", serviceErr)
			}
			return models.Coordinate{}, errors.New("no coordinate in response")
		}
		if err != nil {
			return models.Coordinate{}, fmt.Errorf("decode response: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "error":
			var msg string
			if err := dec.DecodeElement(&msg, &se); err != nil {
				return models.Coordinate{}, fmt.Errorf("decode error element: %w", err)
			}
			serviceErr = strings.TrimSpace(msg)
		case "coordinate":
			var c xmlCoordinate
			if err := dec.DecodeElement(&c, &se); err != nil {
				return models.Coordinate{}, fmt.Errorf("decode coordinate: %w", err)
			}
			return c.toCoordinate()
		}
	}
}

func (c xmlCoordinate) toCoordinate() (models.Coordinate, error) {
	lat := strings.TrimSpace(c.Lat)
	lon := strings.TrimSpace(c.Lon)
	if lon == "" {
		lon = strings.TrimSpace(c.Lng)
	}
	if lat == "" || lon == "" {
		return models.Coordinate{}, errors.New("coordinate is missing lat or lon")
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil || latF < -90 || latF > 90 {
		return models.Coordinate{}, fmt.Errorf("invalid latitude %q", lat)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil || lonF < -180 || lonF > 180 {
		return models.Coordinate{}, fmt.Errorf("invalid longitude %q", lon)
	}

	return models.Coordinate{Lon: lon, Lat: lat}, nil
}
