package promotion

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid promotion code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrEmptyOfferDescription  = errors.New("offer description cannot be empty")
	ErrInvalidKind            = errors.New("invalid promotion kind")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Matches compares a user-supplied string against the canonical code.
// Matching is case-insensitive and exact; no partial or fuzzy matching.
func (c Code) Matches(input string) bool {
	return strings.EqualFold(string(c), strings.TrimSpace(input))
}

type Kind string

const (
	KindPercentage  Kind = "percentage"
	KindFixedAmount Kind = "fixed_amount"
	KindOffer       Kind = "offer"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixedAmount, KindOffer:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Benefit is what a promotion grants: a percentage discount, a fixed amount
// off, or a non-monetary offer described in prose (e.g. free delivery).
type Benefit struct {
	kind           Kind
	percentOff     float64
	amountOffCents int64
	description    string
}

func NewPercentageBenefit(percentOff float64) (Benefit, error) {
	if percentOff < 0 || percentOff > 100 {
		return Benefit{}, ErrInvalidDiscountPercent
	}
	return Benefit{kind: KindPercentage, percentOff: percentOff}, nil
}

func NewFixedAmountBenefit(amountOffCents int64) (Benefit, error) {
	if amountOffCents < 0 {
		return Benefit{}, ErrInvalidDiscountAmount
	}
	return Benefit{kind: KindFixedAmount, amountOffCents: amountOffCents}, nil
}

func NewOfferBenefit(description string) (Benefit, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Benefit{}, ErrEmptyOfferDescription
	}
	return Benefit{kind: KindOffer, description: description}, nil
}

func (b Benefit) Kind() Kind            { return b.kind }
func (b Benefit) PercentOff() float64   { return b.percentOff }
func (b Benefit) AmountOffCents() int64 { return b.amountOffCents }
func (b Benefit) Description() string   { return b.description }

// Apply computes the discounted price in cents. The result is never
// negative: fixed-amount discounts clamp at zero, and a non-monetary offer
// leaves the price unchanged.
func (b Benefit) Apply(priceCents int64) int64 {
	switch b.kind {
	case KindPercentage:
		final := int64(math.Round(float64(priceCents) * (1 - b.percentOff/100)))
		if final < 0 {
			return 0
		}
		return final
	case KindFixedAmount:
		final := priceCents - b.amountOffCents
		if final < 0 {
			return 0
		}
		return final
	default:
		return priceCents
	}
}

// DisplayValue renders the benefit for the offers page.
func (b Benefit) DisplayValue() string {
	switch b.kind {
	case KindPercentage:
		return strconv.FormatFloat(b.percentOff, 'f', -1, 64) + "% off"
	case KindFixedAmount:
		return fmt.Sprintf("$%d.%02d off", b.amountOffCents/100, b.amountOffCents%100)
	default:
		return b.description
	}
}
