// Package catalog holds the static flight inventory. The fixture is
// read once at startup and never mutated afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

type Catalog struct {
	flights []entity.Flight
	byID    map[string]int
}

// Load reads the flight fixture from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("catalog read file: %w", err)
	}

	var flights []entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}

	return New(flights), nil
}

func New(flights []entity.Flight) *Catalog {
	byID := make(map[string]int, len(flights))
	for i, flight := range flights {
		if _, ok := byID[flight.ID]; !ok {
			byID[flight.ID] = i
		}
	}
	return &Catalog{flights: flights, byID: byID}
}

// Flights returns the catalog in its original order.
func (c *Catalog) Flights() []entity.Flight {
	out := make([]entity.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

func (c *Catalog) Find(id string) (entity.Flight, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Flight{}, false
	}
	return c.flights[i], true
}

// Cities returns the sorted set of departure and arrival cities.
func (c *Catalog) Cities() []string {
	seen := make(map[string]struct{}, len(c.flights)*2)
	cities := make([]string, 0, len(c.flights)*2)
	for _, flight := range c.flights {
		for _, city := range []string{flight.Departure.City, flight.Arrival.City} {
			if _, ok := seen[city]; ok {
				continue
			}
			seen[city] = struct{}{}
			cities = append(cities, city)
		}
	}
	sort.Strings(cities)
	return cities
}

// Criteria are the optional search predicates. Empty fields match
// everything for their dimension.
type Criteria struct {
	From string
	To   string
	Date string
}

// Filter returns the flights satisfying all provided predicates, in
// catalog order. City fields match by case-insensitive substring, the
// date by exact equality.
func (c *Catalog) Filter(criteria Criteria) []entity.Flight {
	from := strings.ToLower(strings.TrimSpace(criteria.From))
	to := strings.ToLower(strings.TrimSpace(criteria.To))
	date := strings.TrimSpace(criteria.Date)

	matched := make([]entity.Flight, 0, len(c.flights))
	for _, flight := range c.flights {
		if from != "" && !strings.Contains(strings.ToLower(flight.Departure.City), from) {
			continue
		}
		if to != "" && !strings.Contains(strings.ToLower(flight.Arrival.City), to) {
			continue
		}
		if date != "" && flight.Date != date {
			continue
		}
		matched = append(matched, flight)
	}
	return matched
}
