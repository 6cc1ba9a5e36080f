package pricejobs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger is persisted in JSONL, one directive per line, tagged by its
// "directive" property:
//
//	{"directive":"commodity","date":"2024-01-01","currency":"AAPL","meta":{"price":"USD:yahoo/AAPL"}}
//	{"directive":"txn","date":"2024-01-05","postings":[{"account":"Assets:Broker","units":{"number":10,"currency":"AAPL"},"cost":{"number":150,"currency":"USD"}}]}
//	{"directive":"price","date":"2024-01-06","currency":"AAPL","amount":{"number":151.2,"currency":"USD"}}

const attrDirective = "directive"

// DecodeLedger decodes directives from a stream of JSONL data, and returns a
// ledger sorted by date. Directives with an unknown tag are kept as Other.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var decoded []Directive
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		d, err := decodeDirective(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		decoded = append(decoded, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.Append(decoded...)
	return ledger, nil
}

func decodeDirective(lineBytes []byte) (Directive, error) {
	var identifier struct {
		Directive string `json:"directive"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify directive in %q: %w", string(lineBytes), err)
	}

	var d Directive
	var err error
	switch ParseKind(identifier.Directive) {
	case KindOpen:
		var v Open
		err = json.Unmarshal(lineBytes, &v)
		d = v
	case KindCommodity:
		var v Commodity
		err = json.Unmarshal(lineBytes, &v)
		if err == nil && v.Currency == "" {
			err = fmt.Errorf("commodity without currency")
		}
		d = v
	case KindTransaction:
		var v Transaction
		err = json.Unmarshal(lineBytes, &v)
		d = v
	case KindPrice:
		var v Price
		err = json.Unmarshal(lineBytes, &v)
		if err == nil && (v.Currency == "" || v.Amount.Currency == "") {
			err = fmt.Errorf("price without currency")
		}
		d = v
	default:
		if identifier.Directive == "" {
			return nil, fmt.Errorf("missing %q property in %q", attrDirective, string(lineBytes))
		}
		v := Other{Tag: identifier.Directive, Raw: append(json.RawMessage(nil), lineBytes...)}
		err = json.Unmarshal(lineBytes, &v.header)
		d = v
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s directive: %w", identifier.Directive, err)
	}
	return d, nil
}

// EncodeDirective marshals a single directive to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeDirective(w io.Writer, d Directive) error {
	var data []byte
	if o, ok := d.(Other); ok && len(o.Raw) > 0 {
		data = o.Raw
	} else {
		var jw jsonObjectWriter
		jw.Append(attrDirective, d.Kind().String())
		jw.EmbedFrom(d)
		var err error
		if data, err = jw.MarshalJSON(); err != nil {
			return fmt.Errorf("failed to marshal %s directive: %w", d.Kind(), err)
		}
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write directive: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger directives in date order to w in JSONL format.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	for _, d := range ledger.directives {
		if err := EncodeDirective(w, d); err != nil {
			return err
		}
	}
	return nil
}
