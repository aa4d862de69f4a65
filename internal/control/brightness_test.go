package control

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vietddude/keyctl/internal/core/domain"
)

func TestAdjustBrightness_StepsOutOfRange(t *testing.T) {
	for _, steps := range []int{-1, 0, 256, 1000} {
		fake := &fakeChannel{}
		client := New(fake)

		_, err := client.IncreaseBrightness(context.Background(), steps)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("steps=%d: expected ErrInvalidArgument, got %v", steps, err)
		}

		// Validation happens before any remote call, the lazy connect included.
		connectAny, _, _, stepCalls := fake.counts()
		if connectAny != 0 || stepCalls != 0 {
			t.Errorf("steps=%d: expected no remote calls, got connect=%d steps=%d",
				steps, connectAny, stepCalls)
		}
	}
}

func TestAdjustBrightness_StopsAtFirstFailure(t *testing.T) {
	fake := &fakeChannel{
		stepFn: func(call int) (domain.StepResult, error) {
			if call == 3 {
				return domain.StepResult{Success: false}, nil
			}
			return domain.StepResult{Success: true}, nil
		},
	}
	client := New(fake)

	res, err := client.IncreaseBrightness(context.Background(), 5)
	if err != nil {
		t.Fatalf("IncreaseBrightness failed: %v", err)
	}
	if res.Success {
		t.Error("expected the failing step's result to be returned")
	}

	_, _, _, stepCalls := fake.counts()
	if stepCalls != 3 {
		t.Errorf("expected executor to stop after step 3, got %d steps", stepCalls)
	}
}

func TestAdjustBrightness_AllStepsSucceed(t *testing.T) {
	fake := &fakeChannel{}
	client := New(fake)

	res, err := client.DecreaseBrightness(context.Background(), 4)
	if err != nil {
		t.Fatalf("DecreaseBrightness failed: %v", err)
	}
	if !res.Success {
		t.Error("expected final successful result")
	}

	_, _, _, stepCalls := fake.counts()
	if stepCalls != 4 {
		t.Errorf("expected 4 steps, got %d", stepCalls)
	}
}

func TestAdjustBrightness_StepErrorPropagates(t *testing.T) {
	stepErr := status.Error(codes.Internal, "led controller fault")
	fake := &fakeChannel{
		stepFn: func(call int) (domain.StepResult, error) {
			if call == 2 {
				return domain.StepResult{}, stepErr
			}
			return domain.StepResult{Success: true}, nil
		},
	}
	client := New(fake)

	_, err := client.IncreaseBrightness(context.Background(), 5)
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected the step error verbatim, got %v", err)
	}

	_, _, _, stepCalls := fake.counts()
	if stepCalls != 2 {
		t.Errorf("expected executor to stop at the erroring step, got %d steps", stepCalls)
	}
}

func TestAdjustBrightness_CancellationBetweenSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	fake := &fakeChannel{
		stepFn: func(call int) (domain.StepResult, error) {
			// Cancel during the first step; the executor must notice
			// before issuing the second.
			cancel()
			return domain.StepResult{Success: true}, nil
		},
	}
	client := New(fake)

	_, err := client.IncreaseBrightness(ctx, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	_, _, _, stepCalls := fake.counts()
	if stepCalls != 1 {
		t.Errorf("expected 1 step before cancellation was observed, got %d", stepCalls)
	}
}
