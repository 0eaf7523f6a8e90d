package scenario

import (
	"context"
	"strings"
	"testing"

	"github.com/Asutorufa/dlist/pkg/metrics"
	"github.com/Asutorufa/dlist/pkg/utils/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLoad(t *testing.T) {
	s, err := Load("testdata/basic.yaml")
	assert.MustEqual(t, nil, err)
	assert.Equal(t, "basic", s.Name)

	r, err := Run(context.Background(), s)
	assert.NoError(t, err)
	for _, f := range r.Failures {
		t.Error(f)
	}
	assert.True(t, r.OK())
	assert.Equal(t, len(s.Steps), r.Steps)
	assert.Equal(t, 0, r.Len)
}

func TestFailures(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - op: addLast
    value: a
  - op: addLast
    value: b
  - op: isBefore
    value: b
    anchor: a
    expect: {result: true}
  - op: addBefore
    value: c
    anchor: z
  - op: removeFirst
    expect: {value: b, count: 5}
`))
	assert.MustEqual(t, nil, err)

	r, err := Run(context.Background(), s)
	assert.NoError(t, err)
	assert.False(t, r.OK())
	assert.Equal(t, 1, r.Len)

	var steps []int
	for _, f := range r.Failures {
		steps = append(steps, f.Step)
	}
	assert.Equal(t, []int{2, 3, 4, 4}, steps)
	assert.True(t, strings.Contains(r.Failures[1].Message, ReasonAnchorNotFound))
}

func TestParseErrors(t *testing.T) {
	for name, data := range map[string]string{
		"empty":      `name: x`,
		"unknown op": "steps:\n  - op: pushFront\n",
		"error":      "steps:\n  - op: addAfter\n    expect: {error: boom}\n",
		"value":      "steps:\n  - op: addLast\n    expect: {value: a}\n",
		"result":     "steps:\n  - op: first\n    expect: {result: true}\n",
		"yaml":       "steps: [",
	} {
		_, err := Parse([]byte(data))
		assert.Error(t, err, "%s", name)
	}
}

func TestRunCanceled(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - op: count\n"))
	assert.MustEqual(t, nil, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := Run(ctx, s)
	assert.Error(t, err)
	assert.Equal(t, 0, r.Steps)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := metrics.NewPrometheus(reg)
	metrics.Counter = p
	defer func() { metrics.Counter = &metrics.EmptyMetrics{} }()

	s, err := Parse([]byte(`
steps:
  - op: addLast
    value: a
  - op: addAfter
    value: b
    anchor: z
    expect: {error: anchor_not_found}
  - op: remove
    value: q
    expect: {found: false}
`))
	assert.MustEqual(t, nil, err)

	_, err = Run(context.Background(), s)
	assert.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.OperationTotal.WithLabelValues("addLast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.OperationFailedTotal.WithLabelValues("addAfter", ReasonAnchorNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.LookupMissTotal.WithLabelValues("remove")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Length))
}
