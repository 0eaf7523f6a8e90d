package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Asutorufa/dlist/pkg/log"
	"github.com/Asutorufa/dlist/pkg/metrics"
	"github.com/Asutorufa/dlist/pkg/utils/list"
)

type Failure struct {
	Step    int
	Op      Op
	Message string
}

func (f Failure) String() string { return fmt.Sprintf("step %d (%s): %s", f.Step, f.Op, f.Message) }

type Report struct {
	Name     string
	Steps    int
	Len      int
	Failures []Failure
}

func (r *Report) OK() bool { return len(r.Failures) == 0 }

type outcome struct {
	err    error
	found  *bool
	value  *string
	result *bool
}

func equalString(a, b *string) bool { return *a == *b }

// Run executes every step on a fresh list, it only returns an error when ctx
// is done before all steps ran.
func Run(ctx context.Context, s *Scenario) (*Report, error) {
	l := list.NewFunc(equalString)
	r := &Report{Name: s.Name}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return r, err
		}

		start := time.Now()
		out := execute(l, st)
		metrics.Counter.AddOperationDuration(string(st.Op), time.Since(start).Seconds())
		record(st.Op, out, l.Len())

		log.Select(slog.LevelDebug).PrintFunc("step", func() []any {
			return []any{"scenario", s.Name, "index", i, "op", st.Op, "len", l.Len(), "err", out.err}
		})

		for _, msg := range check(st, out, l.Len()) {
			f := Failure{Step: i, Op: st.Op, Message: msg}
			log.Warn("step failed", "scenario", s.Name, "failure", f.String())
			r.Failures = append(r.Failures, f)
		}

		r.Steps++
	}

	r.Len = l.Len()
	return r, nil
}

func record(op Op, out outcome, n int) {
	metrics.Counter.AddOperation(string(op))
	if out.err != nil {
		metrics.Counter.AddOperationFailed(string(op), metrics.Reason(out.err))
	}
	if out.found != nil && !*out.found {
		metrics.Counter.AddLookupMiss(string(op))
	}
	metrics.Counter.SetLength(n)
}

func execute(l *list.List[*string], st Step) outcome {
	var (
		out   outcome
		found bool
		res   bool
	)

	switch st.Op {
	case OpAddFirst:
		out.err = l.AddFirst(st.Value)
	case OpAddLast:
		out.err = l.AddLast(st.Value)
	case OpAddAfter:
		out.err = l.AddAfter(st.Value, st.Anchor)
	case OpAddBefore:
		out.err = l.AddBefore(st.Value, st.Anchor)
	case OpClear:
		l.Clear()
	case OpCount:
	case OpContains:
		res, out.err = l.Contains(st.Value)
		out.result = &res
	case OpIsBefore:
		res, out.err = l.IsBefore(st.Value, st.Anchor)
		out.result = &res
	case OpIsAfter:
		res, out.err = l.IsAfter(st.Value, st.Anchor)
		out.result = &res
	case OpFirst:
		out.value, found = l.Front()
		out.found = &found
	case OpLast:
		out.value, found = l.Back()
		out.found = &found
	case OpRemove:
		out.value, found, out.err = l.Remove(st.Value)
		out.found = &found
	case OpRemoveFirst:
		out.value, found = l.RemoveFirst()
		out.found = &found
	case OpRemoveLast:
		out.value, found = l.RemoveLast()
		out.found = &found
	}

	return out
}

func check(st Step, out outcome, n int) []string {
	var msgs []string
	exp := st.Expect

	if got := metrics.Reason(out.err); got != exp.Error {
		msgs = append(msgs, fmt.Sprintf("error: expected %q, got %q (%v)", exp.Error, got, out.err))
	}

	if exp.Found != nil && out.found != nil && *exp.Found != *out.found {
		msgs = append(msgs, fmt.Sprintf("found: expected %v, got %v", *exp.Found, *out.found))
	}

	if exp.Value != nil && (out.value == nil || *out.value != *exp.Value) {
		msgs = append(msgs, fmt.Sprintf("value: expected %q, got %s", *exp.Value, show(out.value)))
	}

	if exp.Result != nil && out.result != nil && *exp.Result != *out.result {
		msgs = append(msgs, fmt.Sprintf("result: expected %v, got %v", *exp.Result, *out.result))
	}

	if exp.Count != nil && *exp.Count != n {
		msgs = append(msgs, fmt.Sprintf("count: expected %d, got %d", *exp.Count, n))
	}

	return msgs
}

func show(s *string) string {
	if s == nil {
		return "nothing"
	}
	return fmt.Sprintf("%q", *s)
}
