package domain

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ActionPlanLength returns the travel length of visiting stops in the given
// order plus one unit of handling time per visited stop.
//
// The order is not checked to be a permutation of all stops: partial and
// repeating orders are measured as given. Only indices that cannot address a
// stop are rejected.
func (s *RouteSet) ActionPlanLength(order []int) (int, error) {
	if err := s.checkOrder(order); err != nil {
		return 0, err
	}

	total := s.StartDistances[order[0]]
	for k := 0; k+1 < len(order); k++ {
		total += s.Distances[order[k]][order[k+1]]
	}
	total += s.EndDistances[order[len(order)-1]] + len(order)

	return total, nil
}

// RenderActionPlan writes the action plan for order to w in a single write.
//
// Layout: total length, journey start, then the start->first route with a
// "take product #k" line (k is the 1-based stop number), each consecutive
// stop->stop route annotated with its destination, and the last stop->end
// route without annotation.
func (s *RouteSet) RenderActionPlan(order []int, w io.Writer) error {
	plan, err := s.ActionPlan(order)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, plan); err != nil {
		return fmt.Errorf("render action plan: write: %w", err)
	}

	return nil
}

// ActionPlan renders the action plan for order as a string.
func (s *RouteSet) ActionPlan(order []int) (string, error) {
	total, err := s.ActionPlanLength(order)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(total))
	b.WriteString(";\n")
	b.WriteString(s.Spec.Start.String())
	b.WriteString(";\n")

	first := order[0]
	s.StartToStop[first].writeMoves(&b)
	writeTakeProduct(&b, first)

	for k := 0; k+1 < len(order); k++ {
		from, to := order[k], order[k+1]
		s.StopToStop[from][to].writeMoves(&b)
		writeTakeProduct(&b, to)
	}

	s.StopToEnd[order[len(order)-1]].writeMoves(&b)

	return b.String(), nil
}

func writeTakeProduct(b *strings.Builder, stop int) {
	b.WriteString("take product #")
	b.WriteString(strconv.Itoa(stop + 1))
	b.WriteString(";\n")
}

func (s *RouteSet) checkOrder(order []int) error {
	if !s.Assembled() {
		return ErrNotAssembled
	}
	if len(order) == 0 {
		return ErrEmptyOrder
	}

	for k, idx := range order {
		if idx < 0 || idx >= len(s.Stops) {
			return fmt.Errorf("order position %d: stop %d of %d: %w", k, idx, len(s.Stops), ErrStopIndexOutOfRange)
		}
	}

	return nil
}
