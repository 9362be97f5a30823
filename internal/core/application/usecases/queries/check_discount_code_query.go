package queries

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCheckDiscountCodeQueryIsNotConstructed = errors.New(
	"CheckDiscountCodeQuery must be created via NewCheckDiscountCodeQuery constructor",
)

// CheckDiscountCodeQuery previews a discount code without redeeming it.
//
// Example:
//
//	query, _ := NewCheckDiscountCodeQuery("SPRING10", time.Now())
//	result, err := handler.Handle(ctx, query)
//	if err == nil && !result.Valid {
//	    fmt.Println(result.Reason)
//	}
type CheckDiscountCodeQuery struct {
	code string
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewCheckDiscountCodeQuery(code string, asOf time.Time) (CheckDiscountCodeQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return CheckDiscountCodeQuery{}, errs.NewValueIsRequiredError("discount code")
	}
	return CheckDiscountCodeQuery{code: code, asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q CheckDiscountCodeQuery) Validate() error {
	return q.guard.Validate(ErrCheckDiscountCodeQueryIsNotConstructed)
}

func (q CheckDiscountCodeQuery) Code() string {
	return q.code
}

func (q CheckDiscountCodeQuery) AsOf() time.Time {
	return q.asOf
}

// CheckDiscountCodeQueryResponse carries the percent of a valid code, or the
// reason an invalid one would be rejected at checkout.
type CheckDiscountCodeQueryResponse struct {
	Code    string
	Valid   bool
	Percent int
	Reason  string
}
