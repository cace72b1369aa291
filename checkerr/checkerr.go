// Package checkerr centralizes the checker's sentinel errors, following
// the same errors.New-plus-fmt.Errorf("%w: ...") wrapping convention the
// format package uses for ErrBadFormat.
package checkerr

import "errors"

var (
	// ErrSyntax covers a malformed S-expression, an unknown quantifier
	// variable shape, malformed JSON, or a schema mismatch.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownRule covers a justification string outside the rule
	// enumeration.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrVerification covers a rule precheck that failed.
	ErrVerification = errors.New("verification failed")

	// ErrDomain covers an operation requested outside the class of
	// formula it applies to (e.g. TPTP rendering of a non-first-order
	// formula).
	ErrDomain = errors.New("domain error")
)
