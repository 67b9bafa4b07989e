package beautify

import (
	"github.com/btsscan/platform/models"
)

var listingLabels = map[int64]string{
	0: "no_listing",
	1: "white_listed",
	2: "black_listed",
	3: "white_and_black_listed",
}

func beautifyAccountCreate(c *Context, p fields) ([]models.Row, error) {
	registrar, err := c.nameField(p, "account_create", "registrar")
	if err != nil {
		return nil, err
	}
	referrer, err := c.nameField(p, "account_create", "referrer")
	if err != nil {
		return nil, err
	}
	name, ok := p.str("name")
	if !ok {
		return nil, missingField("account_create", "name")
	}
	return []models.Row{
		row("registrar", params{"registrar": registrar}),
		row("referrer", params{"referrer": referrer}),
		row("name", params{"name": name}),
	}, nil
}

func beautifyAccountUpdate(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "account_update", "account")
	if err != nil {
		return nil, err
	}
	rows := []models.Row{row("account", params{"account": account})}
	if p.has("owner") {
		rows = append(rows, row("owner_authority", params{"updated": true}))
	}
	if p.has("active") {
		rows = append(rows, row("active_authority", params{"updated": true}))
	}
	if p.has("new_options") {
		rows = append(rows, row("options", params{"updated": true}))
	}
	return rows, nil
}

func beautifyAccountWhitelist(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "account_whitelist", "authorizing_account")
	if err != nil {
		return nil, err
	}
	listed, err := c.nameField(p, "account_whitelist", "account_to_list")
	if err != nil {
		return nil, err
	}
	listing, ok := p.integer("new_listing")
	if !ok {
		return nil, missingField("account_whitelist", "new_listing")
	}
	label, ok := listingLabels[listing]
	if !ok {
		return nil, missingField("account_whitelist", "new_listing")
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("listed", params{"listed": listed}),
		row("listing", params{"listing": label}),
	}, nil
}

func beautifyAccountUpgrade(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "account_upgrade", "account_to_upgrade")
	if err != nil {
		return nil, err
	}
	lifetime, _ := p.boolean("upgrade_to_lifetime_member")
	return []models.Row{
		row("account", params{"account": account}),
		row("lifetime", params{"lifetime": lifetime}),
	}, nil
}

func beautifyAccountTransfer(c *Context, p fields) ([]models.Row, error) {
	account, err := c.nameField(p, "account_transfer", "account_id")
	if err != nil {
		return nil, err
	}
	newOwner, err := c.nameField(p, "account_transfer", "new_owner")
	if err != nil {
		return nil, err
	}
	return []models.Row{
		row("account", params{"account": account}),
		row("new_owner", params{"new_owner": newOwner}),
	}, nil
}
