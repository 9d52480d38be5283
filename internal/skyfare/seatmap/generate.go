// Package seatmap generates airplane seat layouts and tracks one
// selection session over a generated layout.
package seatmap

import (
	"math"
	"strconv"

	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

const (
	firstRow        = 1
	lastRow         = 30
	lastBusinessRow = 2
	lastComfortRow  = 7
)

// Columns in display order; the aisle sits between C and D and is not
// materialized as a seat.
var Columns = []string{"A", "B", "C", "D", "E", "F"}

var multipliers = map[entity.SeatClass]float64{
	entity.SeatEconomy:  1.0,
	entity.SeatComfort:  1.5,
	entity.SeatBusiness: 2.5,
}

// Occupancy holds the per-class probability that a seat is already
// taken when the map is generated. Tunables, not invariants.
type Occupancy struct {
	Business float64
	Comfort  float64
	Economy  float64
}

func DefaultOccupancy() Occupancy {
	return Occupancy{Business: 0.3, Comfort: 0.5, Economy: 0.7}
}

type Generator struct {
	rnd       Rand
	occupancy Occupancy
}

func NewGenerator(rnd Rand, occupancy Occupancy) *Generator {
	return &Generator{rnd: rnd, occupancy: occupancy}
}

// Generate produces the full layout for a flight with the given base
// price, ordered by row then column.
func (g *Generator) Generate(basePrice int) []entity.Seat {
	seats := make([]entity.Seat, 0, (lastRow-firstRow+1)*len(Columns))
	for row := firstRow; row <= lastRow; row++ {
		class := ClassForRow(row)
		for _, column := range Columns {
			status := entity.SeatAvailable
			if g.rnd.Float64() < g.occupiedChance(class) {
				status = entity.SeatOccupied
			}
			seats = append(seats, entity.Seat{
				ID:     strconv.Itoa(row) + column,
				Row:    row,
				Column: column,
				Class:  class,
				Status: status,
				Price:  PriceFor(basePrice, class),
			})
		}
	}
	return seats
}

func (g *Generator) occupiedChance(class entity.SeatClass) float64 {
	switch class {
	case entity.SeatBusiness:
		return g.occupancy.Business
	case entity.SeatComfort:
		return g.occupancy.Comfort
	default:
		return g.occupancy.Economy
	}
}

func ClassForRow(row int) entity.SeatClass {
	switch {
	case row <= lastBusinessRow:
		return entity.SeatBusiness
	case row <= lastComfortRow:
		return entity.SeatComfort
	default:
		return entity.SeatEconomy
	}
}

// PriceFor derives a seat price from the flight's base price, rounded
// to the nearest whole unit.
func PriceFor(basePrice int, class entity.SeatClass) int {
	return int(math.Round(float64(basePrice) * multipliers[class]))
}
