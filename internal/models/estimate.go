package models

import "time"

// EstimateRequest is the input of a quote or a registration.
type EstimateRequest struct {
	CustomerName     string        `json:"customer_name"`
	Tel              string        `json:"tel"`
	Email            string        `json:"email"`
	OldPrefectureID  string        `json:"old_prefecture_id"`
	NewPrefectureID  string        `json:"new_prefecture_id"`
	OldAddress       string        `json:"old_address"`
	NewAddress       string        `json:"new_address"`
	PlannedDate      time.Time     `json:"planned_date"`
	Packages         []PackageLine `json:"packages"`
	OptionServiceIDs []int         `json:"option_service_ids"`
}

// Order converts the request into the rows written for a registration.
func (r EstimateRequest) Order() Order {
	return Order{
		Customer: Customer{
			OldPrefectureID: r.OldPrefectureID,
			NewPrefectureID: r.NewPrefectureID,
			Name:            r.CustomerName,
			Tel:             r.Tel,
			Email:           r.Email,
			OldAddress:      r.OldAddress,
			NewAddress:      r.NewAddress,
			PlannedDate:     r.PlannedDate,
		},
		Packages:         r.Packages,
		OptionServiceIDs: r.OptionServiceIDs,
	}
}

// Estimate is the priced result. Amounts are in yen.
type Estimate struct {
	CustomerID          int     `json:"customer_id,omitempty"`
	RouteDistanceMeters float64 `json:"route_distance_m"`
	PrefectureDistance  float64 `json:"prefecture_distance_km"`
	Boxes               int     `json:"boxes"`
	DistancePrice       int     `json:"distance_price"`
	TruckPrice          int     `json:"truck_price"`
	SeasonFactor        float64 `json:"season_factor"`
	OptionPrice         int     `json:"option_price"`
	TotalPrice          int     `json:"total_price"`
}
