package pricejobs

import (
	"fmt"
	"strings"

	"github.com/etnz/pricejobs/date"
)

// InvalidSpecError reports a source specification that does not follow the
// grammar, or one whose provider cannot be resolved (then Err is the
// *ProviderNotFoundError).
type InvalidSpecError struct {
	Spec   string // Spec is the offending clause or source.
	Reason string
	Err    error
}

func (e *InvalidSpecError) Error() string {
	msg := fmt.Sprintf("invalid source spec %q: %s", e.Spec, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidSpecError) Unwrap() error { return e.Err }

// ProviderNotFoundError reports a provider id unknown in every namespace tried.
type ProviderNotFoundError struct {
	ID         string
	Namespaces []string // Namespaces tried, in order.
}

func (e *ProviderNotFoundError) Error() string {
	tried := make([]string, len(e.Namespaces))
	for i, ns := range e.Namespaces {
		tried[i] = namespaceName(ns)
	}
	return fmt.Sprintf("provider %q not found in %s", e.ID, strings.Join(tried, ", "))
}

// OrderError reports the first directive dated before its predecessor.
type OrderError struct {
	Index      int // Index of the out of order directive.
	Prev, Next date.Date
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("directive #%d on %v is before the previous one on %v", e.Index, e.Next, e.Prev)
}
