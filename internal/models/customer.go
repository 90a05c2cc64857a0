package models

import "time"

// Customer is the persisted part of an estimate submission.
type Customer struct {
	ID              int       `json:"customer_id"`
	OldPrefectureID string    `json:"old_prefecture_id"`
	NewPrefectureID string    `json:"new_prefecture_id"`
	Name            string    `json:"customer_name"`
	Tel             string    `json:"tel"`
	Email           string    `json:"email"`
	OldAddress      string    `json:"old_address"`
	NewAddress      string    `json:"new_address"`
	PlannedDate     time.Time `json:"planned_date"`
}

// PackageLine is a quantity of one package type.
type PackageLine struct {
	PackageID int `json:"package_id"`
	Quantity  int `json:"quantity"`
}

// Order groups everything that is written for one submission.
type Order struct {
	Customer         Customer
	Packages         []PackageLine
	OptionServiceIDs []int
}
