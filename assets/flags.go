package assets

// Asset permission/flag bits as defined by the protocol. The same bit values
// serve both options.flags and options.issuer_permissions.
const (
	FlagChargeMarketFee          uint64 = 0x01
	FlagWhiteList                uint64 = 0x02
	FlagOverrideAuthority        uint64 = 0x04
	FlagTransferRestricted       uint64 = 0x08
	FlagDisableForceSettle       uint64 = 0x10
	FlagGlobalSettle             uint64 = 0x20
	FlagDisableConfidential      uint64 = 0x40
	FlagWitnessFedAsset          uint64 = 0x80
	FlagCommitteeFedAsset        uint64 = 0x100
	FlagLockMaxSupply            uint64 = 0x200
	FlagDisableNewSupply         uint64 = 0x400
	FlagDisableMCRUpdate         uint64 = 0x800
	FlagDisableICRUpdate         uint64 = 0x1000
	FlagDisableMSSRUpdate        uint64 = 0x2000
	FlagDisableBSRMUpdate        uint64 = 0x4000
	FlagDisableCollateralBidding uint64 = 0x8000
)

type flagBit struct {
	name string
	bit  uint64
	uia  bool // part of the reduced UIA flag set
}

// flagOrder fixes the display order of decoded flags.
var flagOrder = []flagBit{
	{"charge_market_fee", FlagChargeMarketFee, true},
	{"white_list", FlagWhiteList, true},
	{"override_authority", FlagOverrideAuthority, true},
	{"transfer_restricted", FlagTransferRestricted, true},
	{"disable_force_settle", FlagDisableForceSettle, false},
	{"global_settle", FlagGlobalSettle, false},
	{"disable_confidential", FlagDisableConfidential, true},
	{"witness_fed_asset", FlagWitnessFedAsset, false},
	{"committee_fed_asset", FlagCommitteeFedAsset, false},
	{"lock_max_supply", FlagLockMaxSupply, false},
	{"disable_new_supply", FlagDisableNewSupply, false},
	{"disable_mcr_update", FlagDisableMCRUpdate, false},
	{"disable_icr_update", FlagDisableICRUpdate, false},
	{"disable_mssr_update", FlagDisableMSSRUpdate, false},
	{"disable_bsrm_update", FlagDisableBSRMUpdate, false},
	{"disable_collateral_bidding", FlagDisableCollateralBidding, false},
}

// DecodeFlags expands a flag bitmask into named booleans. For user-issued
// assets only the UIA subset applies: the bitasset-only flags are absent from
// the result entirely, not reported as false.
func DecodeFlags(mask uint64, bitasset bool) map[string]bool {
	out := make(map[string]bool)
	for _, f := range flagOrder {
		if !bitasset && !f.uia {
			continue
		}
		out[f.name] = mask&f.bit != 0
	}
	return out
}

// MaxFlags reports every applicable flag as set, used to display the maximum
// permission surface an issuer could enable.
func MaxFlags(bitasset bool) map[string]bool {
	out := make(map[string]bool)
	for _, f := range flagOrder {
		if !bitasset && !f.uia {
			continue
		}
		out[f.name] = true
	}
	return out
}

// FlagNames lists the decoded flag names in display order for the given asset
// class.
func FlagNames(bitasset bool) []string {
	var names []string
	for _, f := range flagOrder {
		if !bitasset && !f.uia {
			continue
		}
		names = append(names, f.name)
	}
	return names
}
