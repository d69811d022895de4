package git

import (
	"context"
	"fmt"
)

// Push pushes the current branch to its default remote
func Push(ctx context.Context, r Runner) error {
	if _, err := r.Run(ctx, "push"); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}
