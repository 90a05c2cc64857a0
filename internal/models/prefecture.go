package models

// Prefecture is a row of the prefecture reference table.
type Prefecture struct {
	ID   string `json:"prefecture_id"`
	Name string `json:"prefecture_name"`
}

// PrefectureDistance is the straight-line distance in km between two prefectures.
// The relation is symmetric: (From, To) and (To, From) describe the same record.
type PrefectureDistance struct {
	From     string  `json:"prefecture_id_from"`
	To       string  `json:"prefecture_id_to"`
	Distance float64 `json:"distance"`
}

// TruckCapacity is one pricing tier: a truck holding up to MaxBox boxes costs Price yen.
type TruckCapacity struct {
	ID     int `json:"truck_id"`
	MaxBox int `json:"max_box"`
	Price  int `json:"price"`
}
