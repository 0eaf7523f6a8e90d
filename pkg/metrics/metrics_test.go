package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Asutorufa/dlist/pkg/utils/assert"
	"github.com/Asutorufa/dlist/pkg/utils/list"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.AddOperation("addFirst")
	p.AddOperation("addFirst")
	p.AddOperationFailed("addAfter", "anchor_not_found")
	p.AddLookupMiss("remove")
	p.AddOperationDuration("addFirst", 0.000001)
	p.SetLength(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.OperationTotal.WithLabelValues("addFirst")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.OperationFailedTotal.WithLabelValues("addAfter", "anchor_not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.LookupMissTotal.WithLabelValues("remove")))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.Length))

	buf := &bytes.Buffer{}
	assert.NoError(t, WriteText(buf, reg))
	assert.True(t, strings.Contains(buf.String(), "dlist_operation_total"))
	assert.True(t, strings.Contains(buf.String(), "dlist_length"))
}

func TestEmptyMetrics(t *testing.T) {
	var m Metrics = &EmptyMetrics{}
	m.AddOperation("clear")
	m.SetLength(0)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, ReasonInvalidArgument, Reason(list.ErrInvalidArgument))
	assert.Equal(t, ReasonInvalidArgument, Reason(fmt.Errorf("worker 1 add: %w", list.ErrInvalidArgument)))
	assert.Equal(t, ReasonAnchorNotFound, Reason(fmt.Errorf("step 2: %w", list.ErrAnchorNotFound)))
	assert.Equal(t, ReasonUnknown, Reason(errors.New("boom")))

	err := list.New[int]().AddAfter(1, 2)
	assert.Equal(t, ReasonAnchorNotFound, Reason(err))
}
