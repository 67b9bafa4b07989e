package models

// Row is one labeled line of a beautified operation. Key is a localization
// key; Params feeds the translation template. Params values are already
// human-formatted: amounts go through the asset formatter before they land
// here, raw base units never do.
type Row struct {
	Key    string                 `json:"key"`
	Params map[string]interface{} `json:"params"`
}
