package model

// TourLeg is one flown leg of the optimized tour.
type TourLeg struct {
	From     Airport
	To       Airport
	Distance float64
}

// Tour is the optimized closed tour, resolved back to airports and ready
// for reporting. Legs holds one entry per stop; the last leg returns to
// the first airport.
type Tour struct {
	Legs      []TourLeg
	Length    float64
	Fallbacks int
}
