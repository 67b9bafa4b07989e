package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFlagsBitasset(t *testing.T) {
	mask := FlagChargeMarketFee | FlagDisableForceSettle | FlagDisableCollateralBidding
	flags := DecodeFlags(mask, true)

	assert.Len(t, flags, 16)
	assert.True(t, flags["charge_market_fee"])
	assert.True(t, flags["disable_force_settle"])
	assert.True(t, flags["disable_collateral_bidding"])
	assert.False(t, flags["white_list"])
	assert.False(t, flags["global_settle"])
}

func TestDecodeFlagsUIASubset(t *testing.T) {
	// Bitasset-only bits are absent for user-issued assets, not false.
	flags := DecodeFlags(FlagWhiteList|FlagGlobalSettle, false)

	assert.Len(t, flags, 5)
	assert.True(t, flags["white_list"])
	assert.False(t, flags["charge_market_fee"])
	_, present := flags["global_settle"]
	assert.False(t, present)
	_, present = flags["witness_fed_asset"]
	assert.False(t, present)
}

func TestDecodeFlagsEmptyMask(t *testing.T) {
	flags := DecodeFlags(0, true)
	for name, set := range flags {
		assert.False(t, set, "flag %s should be unset", name)
	}
}

func TestMaxFlags(t *testing.T) {
	all := MaxFlags(true)
	assert.Len(t, all, 16)
	for name, set := range all {
		assert.True(t, set, "flag %s should be set", name)
	}

	uia := MaxFlags(false)
	assert.Len(t, uia, 5)
	for _, set := range uia {
		assert.True(t, set)
	}
}

func TestFlagNamesOrder(t *testing.T) {
	names := FlagNames(true)
	assert.Equal(t, "charge_market_fee", names[0])
	assert.Equal(t, "disable_collateral_bidding", names[len(names)-1])
	assert.Equal(t, []string{
		"charge_market_fee",
		"white_list",
		"override_authority",
		"transfer_restricted",
		"disable_confidential",
	}, FlagNames(false))
}
