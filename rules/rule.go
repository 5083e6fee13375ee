package rules

import (
	"github.com/expr-lang/expr/vm"
)

// ActionFunc picks the action code for the ant in env once its rule matched.
type ActionFunc func(env AntEnv) byte

// Rule is the atomic unit of ant behavior: a condition → action pair.
// The engine evaluates rules by priority; the first matching rule decides
// the ant's move for the turn.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	ConditionSrc string      // expr source
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
