package main

import (
	"encoding/json"
	"fmt"

	"github.com/avdva/ieee754"
	su "github.com/avdva/ieee754/internal/strutil"
)

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (a *app) printDecoded(d *ieee754.Decoded) error {
	if a.config.Output == outputJSON {
		return a.printJSON(d)
	}
	return a.printLines(
		"hex", d.Hex,
		"sign", d.Fields.Sign,
		"exponent", d.Fields.Exponent,
		"mantissa", d.Fields.Mantissa,
		"class", d.Class.String(),
		"value", d.Description,
		"decimal", su.FormatNumber(d.Approx),
		"exact", d.Exact,
	)
}

func (a *app) printEncoded(e *ieee754.Encoded) error {
	if a.config.Output == outputJSON {
		return a.printJSON(e)
	}
	return a.printLines(
		"number", e.Printed,
		"single", e.Hex32,
		"double", e.Hex64,
		"stored", e.Exact64,
	)
}

// printLines prints name-value pairs, one per line.
func (a *app) printLines(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if _, err := fmt.Fprintf(a.out, "%-9s %s\n", pairs[i]+":", pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
