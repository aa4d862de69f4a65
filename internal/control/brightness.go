package control

import (
	"context"
	"fmt"

	"github.com/vietddude/keyctl/internal/core/domain"
)

// Bounds for a stepped brightness adjustment.
const (
	MinBrightnessSteps = 1
	MaxBrightnessSteps = 255
)

// IncreaseBrightness performs steps sequential brightness-up calls,
// stopping at the first step the daemon reports as unsuccessful.
func (c *Client) IncreaseBrightness(ctx context.Context, steps int) (domain.StepResult, error) {
	return c.adjustBrightness(ctx, steps, c.ch.IncreaseBrightness)
}

// DecreaseBrightness performs steps sequential brightness-down calls,
// stopping at the first step the daemon reports as unsuccessful.
func (c *Client) DecreaseBrightness(ctx context.Context, steps int) (domain.StepResult, error) {
	return c.adjustBrightness(ctx, steps, c.ch.DecreaseBrightness)
}

// adjustBrightness validates the step count before any remote call (the
// lazy connect included), then iterates. Cancellation is observed at
// step granularity; a failing step ends the run and its result is
// returned as the overall outcome.
func (c *Client) adjustBrightness(
	ctx context.Context,
	steps int,
	step func(context.Context) (domain.StepResult, error),
) (domain.StepResult, error) {
	if steps < MinBrightnessSteps || steps > MaxBrightnessSteps {
		return domain.StepResult{}, fmt.Errorf(
			"%w: steps must be in [%d, %d], got %d",
			domain.ErrInvalidArgument, MinBrightnessSteps, MaxBrightnessSteps, steps,
		)
	}

	if err := c.ensureConnected(ctx); err != nil {
		return domain.StepResult{}, err
	}

	var last domain.StepResult
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		res, err := step(ctx)
		if err != nil {
			return last, err
		}

		last = res
		if !last.Success {
			// e.g. brightness already at its limit
			return last, nil
		}
	}
	return last, nil
}
