package files

import (
	"fmt"
	"os"
	"pickup-route-service/internal/domain"
)

// WriteActionPlan renders the plan for order and writes it to path.
// The file is only written once rendering has fully succeeded.
func WriteActionPlan(path string, rs *domain.RouteSet, order []int) error {
	plan, err := rs.ActionPlan(order)
	if err != nil {
		return fmt.Errorf("write action plan %q: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(plan), 0o644); err != nil {
		return fmt.Errorf("write action plan %q: %w", path, err)
	}

	return nil
}
