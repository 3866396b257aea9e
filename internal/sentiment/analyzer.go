package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// Analyzer invokes the external sentiment classifier as a one-shot
// subprocess. The batch of review texts is passed as a single JSON-encoded
// argument and the classifier writes one JSON document to stdout.
//
// Failure is all-or-nothing: a non-zero exit, non-JSON output, or a results
// array that does not match the input length discards the whole batch.
type Analyzer struct {
	python  string
	script  string
	timeout time.Duration
}

func NewAnalyzer(python, script string, timeout time.Duration) *Analyzer {
	return &Analyzer{
		python:  python,
		script:  script,
		timeout: timeout,
	}
}

// Analyze scores the given texts as one ordered batch.
func (a *Analyzer) Analyze(ctx context.Context, texts []string) (*Batch, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sentiment batch: %w", err)
	}

	// The subprocess is killed when the deadline fires, a hung classifier
	// cannot hang the request.
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.python, a.script, string(payload))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("sentiment process timed out: %w", ctx.Err())
		}
		return nil, fmt.Errorf("sentiment process failed: %w, stderr: %s", err, stderr.String())
	}

	var batch Batch
	if err := json.Unmarshal(stdout.Bytes(), &batch); err != nil {
		return nil, fmt.Errorf("malformed sentiment output: %w", err)
	}

	// A partial result set is indistinguishable from a misaligned one, so
	// length mismatch is treated as total batch failure.
	if len(batch.Reviews) != len(texts) {
		return nil, fmt.Errorf("sentiment output mismatch: got %d results for %d reviews",
			len(batch.Reviews), len(texts))
	}

	return &batch, nil
}
