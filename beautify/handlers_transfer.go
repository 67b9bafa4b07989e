package beautify

import (
	"fmt"

	"github.com/btsscan/platform/models"
)

func missingField(op, field string) error {
	return fmt.Errorf("operation %s: missing field %q", op, field)
}

// nameField resolves an account-bearing payload field to its account name.
func (c *Context) nameField(p fields, op, key string) (string, error) {
	id, ok := p.str(key)
	if !ok {
		return "", missingField(op, key)
	}
	return c.accountName(id)
}

// amountField formats an {amount, asset_id} payload field.
func (c *Context) amountField(p fields, op, key string) (string, error) {
	a, ok := p.amount(key)
	if !ok {
		return "", missingField(op, key)
	}
	return c.formatAmount(a)
}

func beautifyTransfer(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "transfer", "from")
	if err != nil {
		return nil, err
	}
	to, err := c.nameField(p, "transfer", "to")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("transfer", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("from", params{"from": from}),
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyOverrideTransfer(c *Context, p fields) ([]models.Row, error) {
	issuer, err := c.nameField(p, "override_transfer", "issuer")
	if err != nil {
		return nil, err
	}
	from, err := c.nameField(p, "override_transfer", "from")
	if err != nil {
		return nil, err
	}
	to, err := c.nameField(p, "override_transfer", "to")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("override_transfer", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("issuer", params{"issuer": issuer}),
		row("from", params{"from": from}),
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}, nil
}

func beautifyTransferToBlind(c *Context, p fields) ([]models.Row, error) {
	from, err := c.nameField(p, "transfer_to_blind", "from")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("transfer_to_blind", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("from", params{"from": from}),
		row("amount", params{"amount": amount}),
	}
	if outputs, ok := p.list("outputs"); ok {
		rows = append(rows, row("outputs", params{"count": len(outputs)}))
	}
	return rows, nil
}

// Blind-to-blind transfers expose no readable parties or amounts, only the
// commitment counts.
func beautifyBlindTransfer(_ *Context, p fields) ([]models.Row, error) {
	inputs, _ := p.list("inputs")
	outputs, _ := p.list("outputs")
	return []models.Row{
		row("blind_transfer", params{"inputs": len(inputs), "outputs": len(outputs)}),
	}, nil
}

func beautifyTransferFromBlind(c *Context, p fields) ([]models.Row, error) {
	to, err := c.nameField(p, "transfer_from_blind", "to")
	if err != nil {
		return nil, err
	}
	amt, ok := p.legacyAmount()
	if !ok {
		return nil, missingField("transfer_from_blind", "amount")
	}
	amount, err := c.formatAmount(amt)
	if err != nil {
		return nil, err
	}
	rows := []models.Row{
		row("to", params{"to": to}),
		row("amount", params{"amount": amount}),
	}
	if inputs, ok := p.list("inputs"); ok {
		rows = append(rows, row("inputs", params{"count": len(inputs)}))
	}
	return rows, nil
}
