package scheduler

import (
	"math"
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// DefaultTravelSpeedKmh is the assumed average travel speed for
// courthouse commutes.
const DefaultTravelSpeedKmh = 25.0

// TravelMinutes estimates the travel time to an event's venue, rounded up.
// Zero distance means no travel leg.
func TravelMinutes(distanceKm, speedKmh float64) int {
	if distanceKm <= 0 || speedKmh <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / speedKmh * 60))
}

// LeaveBy returns the latest departure time for an event: its start minus
// estimated travel minus the configured buffer.
func LeaveBy(e domain.Event, buffer time.Duration, speedKmh float64) time.Time {
	travel := time.Duration(TravelMinutes(e.DistanceKm, speedKmh)) * time.Minute
	return e.Start.Add(-travel - buffer)
}
