package beautify

import (
	"github.com/btsscan/platform/models"
)

// preimageHash reads the [hash_type, hex] static variant carried by HTLC
// payloads.
func preimageHash(p fields) (string, bool) {
	pair, ok := p.list("preimage_hash")
	if !ok || len(pair) != 2 {
		return "", false
	}
	hash, ok := pair[1].(string)
	return hash, ok
}

func beautifyHtlcCreate(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "htlc_create", "from")
	if err != nil {
		return nil, err
	}
	to, err := c.nameField(p, "htlc_create", "to")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("htlc_create", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("from", params{"from": from}),
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}
	if hash, ok := preimageHash(p); ok {
		preimage := params{"hash": hash}
		if size, ok := p.integer("preimage_size"); ok {
			preimage["size"] = size
		}
		rows = append(rows, row("preimage", preimage))
	}
	if period, ok := p.integer("claim_period_seconds"); ok {
		rows = append(rows, row("claim_period", params{"seconds": period}))
	}
	return rows, nil
}

func beautifyHtlcRedeem(c *Context, p fields) ([]models.Row, error) {
	htlc, ok := p.str("htlc_id")
	if !ok {
		return nil, missingField("htlc_redeem", "htlc_id")
	}
	redeemer, err := c.nameField(p, "htlc_redeem", "redeemer")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("htlc", params{"htlc": htlc}),
		row("redeemer", params{"redeemer": redeemer}),
	}, nil
}

func beautifyHtlcRedeemed(c *Context, p fields) ([]models.Row, error) {
	htlc, ok := p.str("htlc_id")
	if !ok {
		return nil, missingField("htlc_redeemed", "htlc_id")
	}
	from, err := c.nameField(p, "htlc_redeemed", "from")
	if err != nil {
		return nil, err
	}
	to, err := c.nameField(p, "htlc_redeemed", "to")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("htlc_redeemed", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("htlc", params{"htlc": htlc}),
		row("from", params{"from": from}),
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyHtlcExtend(c *Context, p fields) ([]models.Row, error) {
	htlc, ok := p.str("htlc_id")
	if !ok {
		return nil, missingField("htlc_extend", "htlc_id")
	}
	account, err := c.nameField(p, "htlc_extend", "update_issuer")
	if err != nil {
		return nil, err
	}
	seconds, ok := p.integer("seconds_to_add")
	if !ok {
		return nil, missingField("htlc_extend", "seconds_to_add")
	}
	return []models.Row{
		row("htlc", params{"htlc": htlc}),
		row("account", params{"account": account}),
		row("extension", params{"seconds": seconds}),
	}, nil
}

func beautifyHtlcRefund(c *Context, p fields) ([]models.Row, error) {
	htlc, ok := p.str("htlc_id")
	if !ok {
		return nil, missingField("htlc_refund", "htlc_id")
	}
	to, err := c.nameField(p, "htlc_refund", "to")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("htlc", params{"htlc": htlc}),
		row("to", params{"to": to}),
	}, nil
}
