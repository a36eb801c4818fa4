package counsel

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"aspirebot-backend/internal/llm"
)

type flakyGenerator struct {
	calls int
	errs  []error
	text  string
}

func (f *flakyGenerator) Name() string { return "cohere" }

func (f *flakyGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.calls <= len(f.errs) {
		return "", f.errs[f.calls-1]
	}
	return f.text, nil
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	base := &flakyGenerator{
		errs: []error{llm.CallError("cohere", fmt.Errorf("http status 503"))},
		text: "Skills:\n- Go",
	}
	gen := newRetryingGenerator(base, "req-1")

	text, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Skills:\n- Go" {
		t.Fatalf("unexpected text %q", text)
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", base.calls)
	}
}

func TestRetrySkipsPermanentFailure(t *testing.T) {
	perm := llm.CallError("cohere", fmt.Errorf("http status 401: unauthorized"))
	base := &flakyGenerator{errs: []error{perm, perm}}
	gen := newRetryingGenerator(base, "req-2")

	if _, err := gen.Generate(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error")
	}
	if base.calls != 1 {
		t.Fatalf("permanent failure should not retry, got %d calls", base.calls)
	}
}

func TestRetryGivesUpAfterSecondFailure(t *testing.T) {
	transient := llm.CallError("cohere", fmt.Errorf("connection reset by peer"))
	base := &flakyGenerator{errs: []error{transient, transient, transient}}
	gen := newRetryingGenerator(base, "req-3")

	if _, err := gen.Generate(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error")
	}
	if base.calls != 2 {
		t.Fatalf("expected exactly one retry, got %d calls", base.calls)
	}
}

func TestRetrySkipsWhenContextExpired(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	base := &flakyGenerator{errs: []error{ctx.Err(), ctx.Err()}}
	gen := newRetryingGenerator(base, "req-4")

	if _, err := gen.Generate(ctx, "prompt"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("expired context must not retry, got %d calls", base.calls)
	}
}

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.DeadlineExceeded, true},
		{errors.New("http status 502"), true},
		{errors.New("connection refused"), true},
		{errors.New("unexpected EOF"), true},
		{errors.New("http status 400: bad request"), false},
		{errors.New("response missing candidate text"), false},
	}
	for _, tc := range cases {
		if got := shouldRetry(tc.err); got != tc.want {
			t.Errorf("shouldRetry(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
