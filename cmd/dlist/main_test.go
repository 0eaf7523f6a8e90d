package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Asutorufa/dlist/pkg/metrics"
	"github.com/Asutorufa/dlist/pkg/utils/assert"
)

func TestRunScenario(t *testing.T) {
	defer func() { metrics.Counter = &metrics.EmptyMetrics{} }()

	buf := &bytes.Buffer{}
	err := run(context.Background(), []string{"-scenario", "../../pkg/scenario/testdata/basic.yaml", "-metrics"}, buf)
	assert.NoError(t, err)

	t.Log(buf.String())
	assert.True(t, strings.Contains(buf.String(), "0 failures"))
	assert.True(t, strings.Contains(buf.String(), `dlist_operation_total`))
}

func TestRunScenarioFailed(t *testing.T) {
	f := filepath.Join(t.TempDir(), "fail.yaml")
	assert.NoError(t, os.WriteFile(f, []byte("steps:\n  - op: first\n    expect: {found: true}\n"), 0o600))

	buf := &bytes.Buffer{}
	err := run(context.Background(), []string{"-scenario", f}, buf)
	assert.Error(t, err)
	assert.True(t, strings.Contains(buf.String(), "step 0 (first)"))
}

func TestRunStress(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run(context.Background(), []string{"-stress", "500", "-limit", "16"}, buf)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "removed=500 len=0"))
}
