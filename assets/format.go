// Package assets converts raw chain values (base-unit amounts, permission
// bitmasks) into their display form.
package assets

import (
	"fmt"

	"github.com/btsscan/platform/models"
	"github.com/shopspring/decimal"
)

// FormatAsset renders an integer base-unit amount as a decimal string with
// exactly `precision` fraction digits. A negative precision means the asset's
// precision is unknown; the amount is then shown explicitly in base units
// ("sat") instead of guessing a scale.
func FormatAsset(baseUnits int64, symbol string, precision int, includeSymbol bool) string {
	if precision < 0 {
		if includeSymbol && symbol != "" {
			return fmt.Sprintf("%dsat of %s", baseUnits, symbol)
		}
		return fmt.Sprintf("%dsat", baseUnits)
	}

	s := decimal.New(baseUnits, -int32(precision)).StringFixed(int32(precision))
	if includeSymbol && symbol != "" {
		return s + " " + symbol
	}
	return s
}

// FormatAmount renders base units in the given asset.
func FormatAmount(baseUnits int64, asset models.Asset) string {
	return FormatAsset(baseUnits, asset.Symbol, asset.Precision, true)
}

// Readable returns the amount scaled by the asset's precision as a decimal,
// for price math. Unknown precision scales by zero digits.
func Readable(baseUnits int64, asset models.Asset) decimal.Decimal {
	p := asset.Precision
	if p < 0 {
		p = 0
	}
	return decimal.New(baseUnits, -int32(p))
}

// FormatPrice renders sell/buy as the order price. The quotient is displayed
// at the sell asset's precision; a zero-precision sell asset yields an
// integer. This ordering and rounding is the user-facing price convention and
// must not be flipped.
func FormatPrice(sellUnits int64, sellAsset models.Asset, buyUnits int64, buyAsset models.Asset) (string, error) {
	buy := Readable(buyUnits, buyAsset)
	if buy.IsZero() {
		return "", fmt.Errorf("price undefined: zero %s amount", buyAsset.Symbol)
	}
	sell := Readable(sellUnits, sellAsset)

	digits := int32(0)
	if sellAsset.Precision > 0 {
		digits = int32(sellAsset.Precision)
	}
	return sell.DivRound(buy, digits).StringFixed(digits), nil
}

// SplitFee divides an operation fee into its network share and the referral
// rebate, given the rebate percentage of the referral program.
func SplitFee(feeUnits int64, rebatePercent int) (network int64, rebate int64) {
	rebate = feeUnits * int64(rebatePercent) / 100
	network = feeUnits - rebate
	return network, rebate
}
