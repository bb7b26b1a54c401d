package recipe

// Kind tags the outcome of Engine.Evaluate.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindEmpty
	KindUnder
	KindOver
	KindFallback
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindEmpty:
		return "empty"
	case KindUnder:
		return "under"
	case KindOver:
		return "over"
	case KindFallback:
		return "fallback"
	}
	return "unknown"
}

// Result is the mentor's verdict on the cauldron.
// Element is set only for KindUnder and KindOver.
type Result struct {
	Kind    Kind
	Element Element
	Message string
}

// Solved reports whether the potion matched the target.
func (r Result) Solved() bool { return r.Kind == KindSuccess }

// Mentor lines.
const (
	msgNewLevel = "A new challenge! What will you brew?"
	msgAdded    = "You added %s. An interesting choice."
	msgSuccess  = "Brilliant! The potion is perfect. The customer will be very pleased."
	msgEmpty    = "The cauldron is empty! You must be bold and experiment."
	msgUnder    = "I sense a lack of %s... the potion feels weak."
	msgOver     = "There's far too much %s! The balance is off."
	msgFallback = "So close, yet so far. Re-examine the customer's request and try again."
)
