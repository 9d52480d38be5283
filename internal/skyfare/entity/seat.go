package entity

type SeatClass string

const (
	SeatEconomy  SeatClass = "economy"
	SeatComfort  SeatClass = "comfort"
	SeatBusiness SeatClass = "business"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
	SeatSelected  SeatStatus = "selected"
)

// Seat is one occupiable position in a generated seat map. ID is the
// row number concatenated with the column letter ("12A").
type Seat struct {
	ID     string     `json:"id"`
	Row    int        `json:"row"`
	Column string     `json:"column"`
	Class  SeatClass  `json:"class"`
	Status SeatStatus `json:"status"`
	Price  int        `json:"price"`
}
