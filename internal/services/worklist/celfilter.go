package worklist

import (
	"strings"
	"time"

	"github.com/google/cel-go/cel"
	"github.com/keelhq/opsq/internal/queue"
)

// celFilter wraps a compiled CEL program evaluated against normalized
// queue items. When disabled, Eval always returns true.
type celFilter struct {
	prog    cel.Program
	enabled bool
}

// newCELFilter compiles a filter expression. Empty expressions yield a
// disabled filter; compile errors are returned to the caller so bad
// expressions fail the request rather than silently matching nothing.
func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("pillar", cel.StringType),
		cel.Variable("item_type", cel.StringType),
		cel.Variable("state", cel.StringType),
		cel.Variable("priority", cel.StringType),
		cel.Variable("urgency", cel.StringType),
		cel.Variable("org", cel.StringType),
		cel.Variable("property", cel.StringType),
		cel.Variable("association", cel.StringType),
		cel.Variable("title", cel.StringType),
		cel.Variable("assigned", cel.BoolType),
		cel.Variable("assignee", cel.StringType),
		cel.Variable("age_ms", cel.IntType),
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return celFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the compiled expression against one normalized item.
// Evaluation errors count as non-matches.
func (f celFilter) Eval(it queue.Item, now time.Time) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"pillar":      string(it.Pillar),
		"item_type":   string(it.ItemType),
		"state":       it.CurrentState,
		"priority":    it.Priority,
		"urgency":     string(it.Urgency),
		"org":         it.OrganizationID,
		"property":    it.PropertyName,
		"association": it.AssociationName,
		"title":       it.Title,
		"assigned":    it.Assigned,
		"assignee":    it.AssigneeID,
		"age_ms":      it.TimeInState.Milliseconds(),
		"now_ms":      now.UnixMilli(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// Match adapts the filter into the engine's predicate shape.
func (f celFilter) Match(now time.Time) func(queue.Item) bool {
	if !f.enabled {
		return nil
	}
	return func(it queue.Item) bool { return f.Eval(it, now) }
}
