package beautify

import (
	"github.com/btsscan/platform/assets"
	"github.com/btsscan/platform/models"
)

// pricePair renders base/quote as a quote-denominated price and returns the
// two symbols alongside it.
func (c *Context) pricePair(base, quote amountRef) (params, error) {
	baseAsset, err := c.asset(base.AssetID)
	if err != nil {
		return nil, err
	}
	quoteAsset, err := c.asset(quote.AssetID)
	if err != nil {
		return nil, err
	}
	price, err := assets.FormatPrice(base.Units, baseAsset, quote.Units, quoteAsset)
	if err != nil {
		return nil, err
	}
	return params{"price": price, "base": baseAsset.Symbol, "quote": quoteAsset.Symbol}, nil
}

func beautifyLimitOrderCreate(c *Context, p fields) ([]models.Row, error) {
	seller, err := c.nameField(p, "limit_order_create", "seller")
	if err != nil {
		return nil, err
	}
	sell, ok := p.amount("amount_to_sell")
	if !ok {
		return nil, missingField("limit_order_create", "amount_to_sell")
	}
	receive, ok := p.amount("min_to_receive")
	if !ok {
		return nil, missingField("limit_order_create", "min_to_receive")
	}
	sellFmt, err := c.formatAmount(sell)
	if err != nil {
		return nil, err
	}
	receiveFmt, err := c.formatAmount(receive)
	if err != nil {
		return nil, err
	}
	price, err := c.pricePair(sell, receive)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("seller", params{"seller": seller}),
		row("sell", params{"sell": sellFmt}),
		row("receive", params{"receive": receiveFmt}),
		row("price", price),
	}
	if expiration, ok := p.str("expiration"); ok {
		rows = append(rows, row("expiration", params{"expiration": expiration}))
	}
	if fok, ok := p.boolean("fill_or_kill"); ok && fok {
		rows = append(rows, row("fill_or_kill", params{"fill_or_kill": true}))
	}
	return rows, nil
}

func beautifyLimitOrderCancel(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "limit_order_cancel", "fee_paying_account")
	if err != nil {
		return nil, err
	}
	order, ok := p.str("order")
	if !ok {
		return nil, missingField("limit_order_cancel", "order")
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("order", params{"order": order}),
	}, nil
}

func beautifyCallOrderUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "call_order_update", "funding_account")
	if err != nil {
		return nil, err
	}
	collateral, err := c.amountField(p, "call_order_update", "delta_collateral")
	if err != nil {
		return nil, err
	}
	debt, err := c.amountField(p, "call_order_update", "delta_debt")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("collateral", params{"collateral": collateral}),
		row("debt", params{"debt": debt}),
	}, nil
}

func beautifyFillOrder(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "fill_order", "account_id")
	if err != nil {
		return nil, err
	}
	pays, err := c.amountField(p, "fill_order", "pays")
	if err != nil {
		return nil, err
	}
	receives, err := c.amountField(p, "fill_order", "receives")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("account", params{"account": account}),
		row("pays", params{"pays": pays}),
		row("receives", params{"receives": receives}),
	}
	if maker, ok := p.boolean("is_maker"); ok {
		rows = append(rows, row("is_maker", params{"is_maker": maker}))
	}
	return rows, nil
}

func beautifyBidCollateral(c *Context, p fields) ([]models.Row, error) {
	bidder, err := c.nameField(p, "bid_collateral", "bidder")
	if err != nil {
		return nil, err
	}
	collateral, err := c.amountField(p, "bid_collateral", "additional_collateral")
	if err != nil {
		return nil, err
	}
	debt, err := c.amountField(p, "bid_collateral", "debt_covered")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("bidder", params{"bidder": bidder}),
		row("collateral", params{"collateral": collateral}),
		row("debt", params{"debt": debt}),
	}, nil
}

func beautifyExecuteBid(c *Context, p fields) ([]models.Row, error) {
	bidder, err := c.nameField(p, "execute_bid", "bidder")
	if err != nil {
		return nil, err
	}
	debt, err := c.amountField(p, "execute_bid", "debt")
	if err != nil {
		return nil, err
	}
	collateral, err := c.amountField(p, "execute_bid", "collateral")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("bidder", params{"bidder": bidder}),
		row("debt", params{"debt": debt}),
		row("collateral", params{"collateral": collateral}),
	}, nil
}

func beautifyLimitOrderUpdate(c *Context, p fields) ([]models.Row, error) {
	seller, err := c.nameField(p, "limit_order_update", "seller")
	if err != nil {
		return nil, err
	}
	order, ok := p.str("order")
	if !ok {
		return nil, missingField("limit_order_update", "order")
	}
	rows := []models.Row{
		row("seller", params{"seller": seller}),
		row("order", params{"order": order}),
	}
	if price, ok := p.obj("new_price"); ok {
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
	if delta, ok := p.amount("delta_amount_to_sell"); ok {
		formatted, err := c.formatAmount(delta)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row("delta", params{"delta": formatted}))
	}
	if expiration, ok := p.str("new_expiration"); ok {
		rows = append(rows, row("expiration", params{"expiration": expiration}))
	}
	return rows, nil
}
