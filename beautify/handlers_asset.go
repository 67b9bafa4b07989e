package beautify

import (
	"github.com/btsscan/platform/assets"
	"github.com/btsscan/platform/models"
)

// percentOfMax converts graphene per-10k fee fields to a display percentage.
func percentOfMax(v int64) float64 {
	return float64(v) / 100
}

func flagParams(flags map[string]bool) params {
	p := params{}
	for name, set := range flags {
		p[name] = set
	}
	return p
}

func beautifyAssetCreate(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_create", "issuer")
	if err != nil {
		return nil, err
	}
	symbol, ok := p.str("symbol")
	if !ok {
		return nil, missingField("asset_create", "symbol")
	}
	precision, ok := p.integer("precision")
	if !ok {
		return nil, missingField("asset_create", "precision")
	}
	options, ok := p.obj("common_options")
	if !ok {
		return nil, missingField("asset_create", "common_options")
	}
	bitasset := p.has("bitasset_opts")
	rows := []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("symbol", params{"symbol": symbol}),
		row("precision", params{"precision": precision}),
	}
	if maxSupply, ok := options.integer("max_supply"); ok {
		rows = append(rows, row("max_supply", params{
			"max_supply": assets.FormatAsset(maxSupply, symbol, int(precision), true),
		}))
	}
	if marketFee, ok := options.integer("market_fee_percent"); ok && marketFee > 0 {
		rows = append(rows, row("market_fee", params{"percent": percentOfMax(marketFee)}))
	}
	if mask, ok := options.integer("flags"); ok {
		rows = append(rows, row("flags", flagParams(assets.DecodeFlags(uint64(mask), bitasset))))
	}
	rows = append(rows, row("permissions", flagParams(assets.MaxFlags(bitasset))))
	return rows, nil
}

func beautifyAssetUpdate(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_update", "issuer")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_to_update")
	if !ok {
		return nil, missingField("asset_update", "asset_to_update")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("asset", params{"asset": asset.Symbol}),
	}
	if newIssuerID, ok := p.str("new_issuer"); ok {
		newIssuer, err := c.accountName(newIssuerID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row("new_issuer", params{"new_issuer": newIssuer}))
	}
	if options, ok := p.obj("new_options"); ok {
		if mask, ok := options.integer("flags"); ok {
			rows = append(rows, row("flags", flagParams(assets.DecodeFlags(uint64(mask), asset.IsBitasset()))))
		}
	}
	return rows, nil
}

func beautifyAssetUpdateBitasset(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_update_bitasset", "issuer")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_to_update")
	if !ok {
		return nil, missingField("asset_update_bitasset", "asset_to_update")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("asset", params{"asset": asset.Symbol}),
	}
	if options, ok := p.obj("new_options"); ok {
		if backingID, ok := options.str("short_backing_asset"); ok {
			backing, err := c.asset(backingID)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row("backing_asset", params{"backing_asset": backing.Symbol}))
		}
		if feeds, ok := options.integer("minimum_feeds"); ok {
			rows = append(rows, row("minimum_feeds", params{"minimum_feeds": feeds}))
		}
	}
	return rows, nil
}

func beautifyAssetUpdateFeedProducers(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_update_feed_producers", "issuer")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_to_update")
	if !ok {
		return nil, missingField("asset_update_feed_producers", "asset_to_update")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	producers, _ := p.list("new_feed_producers")
	return []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("asset", params{"asset": asset.Symbol}),
		row("producers", params{"count": len(producers)}),
	}, nil
}

func beautifyAssetIssue(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_issue", "issuer")
	if err != nil {
		return nil, err
	}
	to, err := c.nameField(p, "asset_issue", "issue_to_account")
	if err != nil {
		return nil, err
	}
	amount, err := c.amountField(p, "asset_issue", "asset_to_issue")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyAssetReserve(c *Context, p fields) ([]models.Row, error) {
	payer, err := c.nameField(p, "asset_reserve", "payer")
	if err != nil {
		return nil, err
	}
	amount, err := c.amountField(p, "asset_reserve", "amount_to_reserve")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("payer", params{"payer": payer}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyAssetFundFeePool(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "asset_fund_fee_pool", "from_account")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_id")
	if !ok {
		return nil, missingField("asset_fund_fee_pool", "asset_id")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	units, ok := p.integer("amount")
	if !ok {
		return nil, missingField("asset_fund_fee_pool", "amount")
	}
	return []models.Row{
		row("from", params{"from": from}),
		row("asset", params{"asset": asset.Symbol}),
		row("amount", params{"amount": c.formatCoreAmount(units)}),
	}, nil
}

func beautifyAssetSettle(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "asset_settle", "account")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("asset_settle", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyAssetGlobalSettle(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_global_settle", "issuer")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_to_settle")
	if !ok {
		return nil, missingField("asset_global_settle", "asset_to_settle")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("asset", params{"asset": asset.Symbol}),
	}
	if price, ok := p.obj("settle_price"); ok {
		base, baseOK := price.amount("base")
		quote, quoteOK := price.amount("quote")
		if baseOK && quoteOK {
			pp, err := c.pricePair(base, quote)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row("price", pp))
		}
	}
	return rows, nil
}

func beautifyAssetPublishFeed(c *Context, p fields) ([]models.Row, error) {
	publisher, err := c.nameField(p, "asset_publish_feed", "publisher")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_id")
	if !ok {
		return nil, missingField("asset_publish_feed", "asset_id")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("publisher", params{"publisher": publisher}),
		row("asset", params{"asset": asset.Symbol}),
	}
	if feed, ok := p.obj("feed"); ok {
		if price, ok := feed.obj("settlement_price"); ok {
			base, baseOK := price.amount("base")
			quote, quoteOK := price.amount("quote")
			if baseOK && quoteOK {
				pp, err := c.pricePair(base, quote)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row("price", pp))
			}
		}
	}
	return rows, nil
}

func beautifyAssetSettleCancel(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "asset_settle_cancel", "account")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("asset_settle_cancel", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyAssetClaimFees(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_claim_fees", "issuer")
	if err != nil {
		return nil, err
	}
	amount, err := c.amountField(p, "asset_claim_fees", "amount_to_claim")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyAssetClaimPool(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_claim_pool", "issuer")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_id")
	if !ok {
		return nil, missingField("asset_claim_pool", "asset_id")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	amount, err := c.amountField(p, "asset_claim_pool", "amount_to_claim")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("asset", params{"asset": asset.Symbol}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyAssetUpdateIssuer(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "asset_update_issuer", "issuer")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_to_update")
	if !ok {
		return nil, missingField("asset_update_issuer", "asset_to_update")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	newIssuer, err := c.nameField(p, "asset_update_issuer", "new_issuer")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("asset", params{"asset": asset.Symbol}),
		row("new_issuer", params{"new_issuer": newIssuer}),
	}, nil
}

func beautifyFbaDistribute(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "fba_distribute", "account_id")
	if err != nil {
		return nil, err
	}
	units, ok := p.integer("amount")
	if !ok {
		return nil, missingField("fba_distribute", "amount")
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("amount", params{"amount": c.formatCoreAmount(units)}),
	}, nil
}
