// Package beautify renders a resolved operation into ordered, localized
// display rows. One handler per operation type; the dispatch table covers
// every renderable protocol id.
package beautify

import (
	"errors"
	"fmt"

	"github.com/btsscan/platform/assets"
	"github.com/btsscan/platform/models"
)

var (
	// ErrUnknownOperation rejects operation ids with no renderer.
	ErrUnknownOperation = errors.New("no renderer for operation type")
	// ErrMissingReference rejects an operation whose referenced account or
	// asset never resolved. Callers treat this as fatal for the whole
	// transaction: hiding an unrenderable operation from the user is worse
	// than failing the preview.
	ErrMissingReference = errors.New("referenced object not resolved")
)

// Context carries the resolved reference maps for one transaction.
type Context struct {
	accounts map[string]models.Account
	assets   map[string]models.Asset
}

func NewContext(accounts []models.Account, resolvedAssets []models.Asset) *Context {
	c := &Context{
		accounts: make(map[string]models.Account, len(accounts)),
		assets:   make(map[string]models.Asset, len(resolvedAssets)),
	}
	for _, a := range accounts {
		c.accounts[a.ID] = a
	}
	for _, a := range resolvedAssets {
		c.assets[a.ID] = a
	}
	return c
}

// Beautify renders one operation. The returned rows are in display order and
// every amount in them is precision-formatted. Rendering is deterministic for
// fixed resolved maps.
func (c *Context) Beautify(op models.Operation) ([]models.Row, error) {
	h, ok := handlers[op.Type]
	if !ok {
		return nil, fmt.Errorf("%w: id %d (%s)", ErrUnknownOperation, op.Type, op.Type.Name())
	}
	p := fields{m: op.Payload}
	rows, err := h(c, p)
	if err != nil {
		return nil, err
	}
	return c.appendFee(rows, p)
}

// Beautify is the single-operation convenience entry point.
func Beautify(accounts []models.Account, resolvedAssets []models.Asset, payload map[string]interface{}, typeID models.OpType) ([]models.Row, error) {
	return NewContext(accounts, resolvedAssets).Beautify(models.Operation{Type: typeID, Payload: payload})
}

// appendFee adds the operation fee row when the payload carries one. Fee
// assets are part of the scanned reference set, so an unresolvable fee asset
// fails the operation like any other missing reference.
func (c *Context) appendFee(rows []models.Row, p fields) ([]models.Row, error) {
	fee, ok := p.amount("fee")
	if !ok {
		return rows, nil
	}
	formatted, err := c.formatAmount(fee)
	if err != nil {
		return nil, err
	}
	return append(rows, row("fee", params{"fee": formatted})), nil
}

func (c *Context) accountName(id string) (string, error) {
	account, ok := c.accounts[id]
	if !ok {
		return "", fmt.Errorf("%w: account %s", ErrMissingReference, id)
	}
	return account.Name, nil
}

func (c *Context) asset(id string) (models.Asset, error) {
	asset, ok := c.assets[id]
	if !ok {
		return models.Asset{}, fmt.Errorf("%w: asset %s", ErrMissingReference, id)
	}
	return asset, nil
}

func (c *Context) formatAmount(a amountRef) (string, error) {
	asset, err := c.asset(a.AssetID)
	if err != nil {
		return "", err
	}
	return assets.FormatAmount(a.Units, asset), nil
}

// formatCoreAmount renders a bare integer denominated in the core asset
// (worker pay, fee pool funding). Falls back to base units if the core asset
// was not part of the resolved set.
func (c *Context) formatCoreAmount(units int64) string {
	if core, ok := c.assets[models.CoreAssetID]; ok {
		return assets.FormatAmount(units, core)
	}
	return assets.FormatAsset(units, "", models.UnknownPrecision, false)
}

type params = map[string]interface{}

func row(key string, p params) models.Row {
	return models.Row{Key: key, Params: p}
}
