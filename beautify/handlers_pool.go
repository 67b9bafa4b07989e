package beautify

import (
	"github.com/btsscan/platform/assets"
	"github.com/btsscan/platform/models"
)

// feeRatePercent converts the per-million fee rate used by samet funds and
// credit offers to a display percentage.
func feeRatePercent(rate int64) float64 {
	return float64(rate) / 10000
}

func beautifyLiquidityPoolCreate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "liquidity_pool_create", "account")
	if err != nil {
		return nil, err
	}
	assetAID, ok := p.str("asset_a")
	if !ok {
		return nil, missingField("liquidity_pool_create", "asset_a")
	}
	assetA, err := c.asset(assetAID)
	if err != nil {
		return nil, err
	}
	assetBID, ok := p.str("asset_b")
	if !ok {
		return nil, missingField("liquidity_pool_create", "asset_b")
	}
	assetB, err := c.asset(assetBID)
	if err != nil {
		return nil, err
	}
	shareID, ok := p.str("share_asset")
	if !ok {
		return nil, missingField("liquidity_pool_create", "share_asset")
	}
	share, err := c.asset(shareID)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("asset_a", params{"asset_a": assetA.Symbol}),
		row("asset_b", params{"asset_b": assetB.Symbol}),
		row("share_asset", params{"share_asset": share.Symbol}),
	}
	if fee, ok := p.integer("taker_fee_percent"); ok {
		rows = append(rows, row("taker_fee", params{"percent": percentOfMax(fee)}))
	}
	if fee, ok := p.integer("withdrawal_fee_percent"); ok {
		rows = append(rows, row("withdrawal_fee", params{"percent": percentOfMax(fee)}))
	}
	return rows, nil
}

func beautifyLiquidityPoolDelete(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "liquidity_pool_delete", "account")
	if err != nil {
		return nil, err
	}
	pool, ok := p.str("pool")
	if !ok {
		return nil, missingField("liquidity_pool_delete", "pool")
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("pool", params{"pool": pool}),
	}, nil
}

func beautifyLiquidityPoolDeposit(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "liquidity_pool_deposit", "account")
	if err != nil {
		return nil, err
	}
	pool, ok := p.str("pool")
	if !ok {
		return nil, missingField("liquidity_pool_deposit", "pool")
	}
	amountA, err := c.amountField(p, "liquidity_pool_deposit", "amount_a")
	if err != nil {
		return nil, err
	}
	amountB, err := c.amountField(p, "liquidity_pool_deposit", "amount_b")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("pool", params{"pool": pool}),
		row("amount_a", params{"amount_a": amountA}),
		row("amount_b", params{"amount_b": amountB}),
	}, nil
}

func beautifyLiquidityPoolWithdraw(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "liquidity_pool_withdraw", "account")
	if err != nil {
		return nil, err
	}
	pool, ok := p.str("pool")
	if !ok {
		return nil, missingField("liquidity_pool_withdraw", "pool")
	}
	amount, err := c.amountField(p, "liquidity_pool_withdraw", "share_amount")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("pool", params{"pool": pool}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyLiquidityPoolExchange(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "liquidity_pool_exchange", "account")
	if err != nil {
		return nil, err
	}
	pool, ok := p.str("pool")
	if !ok {
		return nil, missingField("liquidity_pool_exchange", "pool")
	}
	sell, err := c.amountField(p, "liquidity_pool_exchange", "amount_to_sell")
	if err != nil {
		return nil, err
	}
	receive, err := c.amountField(p, "liquidity_pool_exchange", "min_to_receive")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("pool", params{"pool": pool}),
		row("sell", params{"sell": sell}),
		row("receive", params{"receive": receive}),
	}, nil
}

func beautifyLiquidityPoolUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "liquidity_pool_update", "account")
	if err != nil {
		return nil, err
	}
	pool, ok := p.str("pool")
	if !ok {
		return nil, missingField("liquidity_pool_update", "pool")
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("pool", params{"pool": pool}),
	}
	if fee, ok := p.integer("taker_fee_percent"); ok {
		rows = append(rows, row("taker_fee", params{"percent": percentOfMax(fee)}))
	}
	if fee, ok := p.integer("withdrawal_fee_percent"); ok {
		rows = append(rows, row("withdrawal_fee", params{"percent": percentOfMax(fee)}))
	}
	return rows, nil
}

func beautifySametFundCreate(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "samet_fund_create", "owner_account")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_type")
	if !ok {
		return nil, missingField("samet_fund_create", "asset_type")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	balance, ok := p.integer("balance")
	if !ok {
		return nil, missingField("samet_fund_create", "balance")
	}
	rows := []models.Row{
		row("owner", params{"owner": owner}),
		row("balance", params{"balance": assets.FormatAmount(balance, asset)}),
	}
	if rate, ok := p.integer("fee_rate"); ok {
		rows = append(rows, row("fee_rate", params{"percent": feeRatePercent(rate)}))
	}
	return rows, nil
}

func beautifySametFundDelete(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "samet_fund_delete", "owner_account")
	if err != nil {
		return nil, err
	}
	fund, ok := p.str("fund_id")
	if !ok {
		return nil, missingField("samet_fund_delete", "fund_id")
	}
	return []models.Row{
		row("owner", params{"owner": owner}),
		row("fund", params{"fund": fund}),
	}, nil
}

func beautifySametFundUpdate(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "samet_fund_update", "owner_account")
	if err != nil {
		return nil, err
	}
	fund, ok := p.str("fund_id")
	if !ok {
		return nil, missingField("samet_fund_update", "fund_id")
	}
	rows := []models.Row{
		row("owner", params{"owner": owner}),
		row("fund", params{"fund": fund}),
	}
	if delta, ok := p.amount("delta_amount"); ok {
		formatted, err := c.formatAmount(delta)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row("delta", params{"delta": formatted}))
	}
	if rate, ok := p.integer("new_fee_rate"); ok {
		rows = append(rows, row("fee_rate", params{"percent": feeRatePercent(rate)}))
	}
	return rows, nil
}

func beautifySametFundBorrow(c *Context, p fields) ([]models.Row, error) {
	borrower, err := c.nameField(p, "samet_fund_borrow", "borrower")
	if err != nil {
		return nil, err
	}
	fund, ok := p.str("fund_id")
	if !ok {
		return nil, missingField("samet_fund_borrow", "fund_id")
	}
	amount, err := c.amountField(p, "samet_fund_borrow", "borrow_amount")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("borrower", params{"borrower": borrower}),
		row("fund", params{"fund": fund}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifySametFundRepay(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "samet_fund_repay", "account")
	if err != nil {
		return nil, err
	}
	fund, ok := p.str("fund_id")
	if !ok {
		return nil, missingField("samet_fund_repay", "fund_id")
	}
	amount, err := c.amountField(p, "samet_fund_repay", "repay_amount")
	if err != nil {
		return nil, err
	}
	fee, err := c.amountField(p, "samet_fund_repay", "fund_fee")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("fund", params{"fund": fund}),
		row("amount", params{"amount": amount}),
		row("fund_fee", params{"fund_fee": fee}),
	}, nil
}

func beautifyCreditOfferCreate(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "credit_offer_create", "owner_account")
	if err != nil {
		return nil, err
	}
	assetID, ok := p.str("asset_type")
	if !ok {
		return nil, missingField("credit_offer_create", "asset_type")
	}
	asset, err := c.asset(assetID)
	if err != nil {
		return nil, err
	}
	balance, ok := p.integer("balance")
	if !ok {
		return nil, missingField("credit_offer_create", "balance")
	}
	rows := []models.Row{
		row("owner", params{"owner": owner}),
		row("balance", params{"balance": assets.FormatAmount(balance, asset)}),
	}
	if rate, ok := p.integer("fee_rate"); ok {
		rows = append(rows, row("fee_rate", params{"percent": feeRatePercent(rate)}))
	}
	if duration, ok := p.integer("max_duration_seconds"); ok {
		rows = append(rows, row("duration", params{"seconds": duration}))
	}
	if minDeal, ok := p.integer("min_deal_amount"); ok {
		rows = append(rows, row("min_deal", params{"min_deal": assets.FormatAmount(minDeal, asset)}))
	}
	if enabled, ok := p.boolean("enabled"); ok {
		rows = append(rows, row("enabled", params{"enabled": enabled}))
	}
	return rows, nil
}

func beautifyCreditOfferDelete(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "credit_offer_delete", "owner_account")
	if err != nil {
		return nil, err
	}
	offer, ok := p.str("offer_id")
	if !ok {
		return nil, missingField("credit_offer_delete", "offer_id")
	}
	return []models.Row{
		row("owner", params{"owner": owner}),
		row("offer", params{"offer": offer}),
	}, nil
}

func beautifyCreditOfferUpdate(c *Context, p fields) ([]models.Row, error) {
	owner, err := c.nameField(p, "credit_offer_update", "owner_account")
	if err != nil {
		return nil, err
	}
	offer, ok := p.str("offer_id")
	if !ok {
		return nil, missingField("credit_offer_update", "offer_id")
	}
	rows := []models.Row{
		row("owner", params{"owner": owner}),
		row("offer", params{"offer": offer}),
	}
	if delta, ok := p.amount("delta_amount"); ok {
		formatted, err := c.formatAmount(delta)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row("delta", params{"delta": formatted}))
	}
	if rate, ok := p.integer("fee_rate"); ok {
		rows = append(rows, row("fee_rate", params{"percent": feeRatePercent(rate)}))
	}
	return rows, nil
}

func beautifyCreditOfferAccept(c *Context, p fields) ([]models.Row, error) {
	borrower, err := c.nameField(p, "credit_offer_accept", "borrower")
	if err != nil {
		return nil, err
	}
	offer, ok := p.str("offer_id")
	if !ok {
		return nil, missingField("credit_offer_accept", "offer_id")
	}
	amount, err := c.amountField(p, "credit_offer_accept", "borrow_amount")
	if err != nil {
		return nil, err
	}
	collateral, err := c.amountField(p, "credit_offer_accept", "collateral")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("borrower", params{"borrower": borrower}),
		row("offer", params{"offer": offer}),
		row("amount", params{"amount": amount}),
		row("collateral", params{"collateral": collateral}),
	}, nil
}

func beautifyCreditDealRepay(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "credit_deal_repay", "account")
	if err != nil {
		return nil, err
	}
	deal, ok := p.str("deal_id")
	if !ok {
		return nil, missingField("credit_deal_repay", "deal_id")
	}
	amount, err := c.amountField(p, "credit_deal_repay", "repay_amount")
	if err != nil {
		return nil, err
	}
	fee, err := c.amountField(p, "credit_deal_repay", "credit_fee")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("deal", params{"deal": deal}),
		row("amount", params{"amount": amount}),
		row("credit_fee", params{"credit_fee": fee}),
	}, nil
}

func beautifyCreditDealExpired(c *Context, p fields) ([]models.Row, error) {
	deal, ok := p.str("deal_id")
	if !ok {
		return nil, missingField("credit_deal_expired", "deal_id")
	}
	offer, ok := p.str("offer_id")
	if !ok {
		return nil, missingField("credit_deal_expired", "offer_id")
	}
	owner, err := c.nameField(p, "credit_deal_expired", "offer_owner")
	if err != nil {
		return nil, err
	}
	borrower, err := c.nameField(p, "credit_deal_expired", "borrower")
	if err != nil {
		return nil, err
	}
	unpaid, err := c.amountField(p, "credit_deal_expired", "unpaid_amount")
	if err != nil {
		return nil, err
	}
	collateral, err := c.amountField(p, "credit_deal_expired", "collateral")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("deal", params{"deal": deal}),
		row("offer", params{"offer": offer}),
		row("owner", params{"owner": owner}),
		row("borrower", params{"borrower": borrower}),
		row("unpaid", params{"unpaid": unpaid}),
		row("collateral", params{"collateral": collateral}),
	}, nil
}

func beautifyCreditDealUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "credit_deal_update", "account")
	if err != nil {
		return nil, err
	}
	deal, ok := p.str("deal_id")
	if !ok {
		return nil, missingField("credit_deal_update", "deal_id")
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("deal", params{"deal": deal}),
	}
	if autoRepay, ok := p.integer("auto_repay"); ok {
		rows = append(rows, row("auto_repay", params{"auto_repay": autoRepay}))
	}
	return rows, nil
}
