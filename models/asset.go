package models

import "encoding/json"

// UnknownPrecision marks an asset whose precision was absent from the node
// response. Amounts of such assets are rendered in base units, never with a
// guessed precision.
const UnknownPrecision = -1

// CoreAssetID is the chain's core asset (BTS), in which several operation
// fields (worker pay, fee pool funding) are denominated implicitly.
const CoreAssetID = "1.3.0"

// Asset represents a graphene asset object (1.3.x) as returned by
// lookup_asset_symbols.
type Asset struct {
	ID                 string       `json:"id"`
	Symbol             string       `json:"symbol"`
	Precision          int          `json:"precision"`
	Issuer             string       `json:"issuer,omitempty"`
	Options            AssetOptions `json:"options,omitempty"`
	DynamicAssetDataID string       `json:"dynamic_asset_data_id,omitempty"`
	BitassetDataID     string       `json:"bitasset_data_id,omitempty"`
}

type AssetOptions struct {
	MaxSupply         json.Number `json:"max_supply,omitempty"`
	MarketFeePercent  uint16      `json:"market_fee_percent,omitempty"`
	MaxMarketFee      json.Number `json:"max_market_fee,omitempty"`
	IssuerPermissions uint64      `json:"issuer_permissions,omitempty"`
	Flags             uint64      `json:"flags,omitempty"`
	Description       string      `json:"description,omitempty"`
}

// UnmarshalJSON defaults Precision to UnknownPrecision so that an absent field
// is distinguishable from a legitimate precision of zero.
func (a *Asset) UnmarshalJSON(data []byte) error {
	type alias Asset
	aux := alias{Precision: UnknownPrecision}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Asset(aux)
	return nil
}

// IsBitasset reports whether the asset is collateral-backed. Bitassets carry a
// bitasset_data_id; user-issued assets do not.
func (a *Asset) IsBitasset() bool {
	return a.BitassetDataID != ""
}
