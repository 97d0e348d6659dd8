package validation

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	apperrors "storefront/internal/errors"
)

// IsURL reports whether s is an absolute URL with a scheme and a host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// OptionalURL accepts the empty string as "absent".
func OptionalURL(s string) bool {
	return s == "" || IsURL(s)
}

// ItemField formats a field path such as items[2].qty.
func ItemField(collection string, idx int, field string) string {
	return collection + "[" + strconv.Itoa(idx) + "]." + field
}

// MaxMoney is the largest amount a NUMERIC(12,2) column holds.
var MaxMoney = decimal.RequireFromString("9999999999.99")

// Money reports a non-negative amount that fits a NUMERIC(12,2) column.
func Money(c *Collector, field string, d decimal.Decimal) {
	switch {
	case d.IsNegative():
		c.Add(field, field+" must be non-negative")
	case !d.Equal(d.Truncate(2)):
		c.Add(field, field+" must have at most 2 decimal places")
	case d.GreaterThan(MaxMoney):
		c.Add(field, field+" is too large")
	}
}

// Collector accumulates field errors so a request can be rejected with every
// problem at once.
type Collector struct {
	details []apperrors.ValidationDetail
}

func (c *Collector) Add(field, message string) {
	c.details = append(c.details, apperrors.ValidationDetail{Field: field, Message: message})
}

func (c *Collector) Empty() bool {
	return len(c.details) == 0
}

// Err returns nil when nothing was collected.
func (c *Collector) Err(message string) error {
	if c.Empty() {
		return nil
	}
	return apperrors.NewValidationError(message, c.details...)
}
