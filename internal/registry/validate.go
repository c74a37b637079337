package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/rpinject/internal/ctxlog"
)

// ValidateRegistry checks every registered setup for a usable name and
// function and reports all problems at once.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for i, s := range r.setups {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Sprintf("setup #%d has an empty name", i))
		}
		if s.Fn == nil {
			errs = append(errs, fmt.Sprintf("setup '%s' has no function", s.Name))
		}
	}

	if len(r.setups) == 0 {
		logger.Warn("No setups registered; only properties and artifacts will be handled.")
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
