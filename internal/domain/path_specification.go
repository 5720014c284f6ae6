package domain

// Start and end coordinate of a single route request, or of a whole journey.
type PathSpecification struct {
	Start Coordinate
	End   Coordinate
}

func NewPathSpecification(start, end Coordinate) PathSpecification {
	return PathSpecification{Start: start, End: end}
}

func (p PathSpecification) String() string {
	return "Start: " + p.Start.String() + " End: " + p.End.String()
}
