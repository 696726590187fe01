package renderer

// Operation names a stack exercise.
type Operation string

const (
	OpPush       Operation = "push"
	OpPop        Operation = "pop"
	OpPeek       Operation = "peek"
	OpMin        Operation = "min"
	OpValues     Operation = "values"
	OpSum        Operation = "sum"
	OpDedup      Operation = "dedup"
	OpSort       Operation = "sort"
	OpCycle      Operation = "cycle"
	OpBalanced   Operation = "balanced"
	OpReverse    Operation = "reverse"
	OpPalindrome Operation = "palindrome"
	OpPostfix    Operation = "postfix"
)

// Result is the outcome of one operation.
type Result struct {
	Operation Operation `json:"operation"`
	Input     string    `json:"input,omitempty"`
	Value     any       `json:"value,omitempty"` // int, []int, bool or string depending on Operation
	Error     string    `json:"error,omitempty"`
	Err       error     `json:"-"`
}

// NewResult records a successful operation.
func NewResult(op Operation, input string, value any) *Result {
	return &Result{Operation: op, Input: input, Value: value}
}

// Failed records an operation that returned err.
func Failed(op Operation, err error) *Result {
	return &Result{Operation: op, Error: err.Error(), Err: err}
}
