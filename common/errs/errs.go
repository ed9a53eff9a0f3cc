package errs

// ErrorKind identifies a kind of ledger error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// InvalidInput is returned when an intent carries malformed or out-of-range arguments.
	InvalidInput = ErrorKind("invalid input")
	// NotFound is returned when a requested entity does not exist or is no longer active.
	NotFound = ErrorKind("not found")
	// NotOwner is returned when the caller does not own the hero the intent operates on.
	NotOwner = ErrorKind("not owner")
	// Unauthorized is returned when the caller does not hold the admin capability.
	Unauthorized = ErrorKind("unauthorized")
	// AlreadyEscrowed is returned when a hero already has an active listing or arena.
	AlreadyEscrowed = ErrorKind("already escrowed")
	// Escrowed is returned when a direct transfer targets a hero held in escrow.
	Escrowed = ErrorKind("escrowed")
	// InsufficientPayment is returned when a buy intent cannot cover the listing price.
	InsufficientPayment = ErrorKind("insufficient payment")
	// SelfChallenge is returned when a challenger already owns the defending hero.
	SelfChallenge = ErrorKind("self challenge")

	// Unsupported is returned for unknown configuration values (database, api handler, ...).
	Unsupported = ErrorKind("unsupported")
	// InternalError is returned for invariant violations inside the ledger itself.
	InternalError = ErrorKind("internal error")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
