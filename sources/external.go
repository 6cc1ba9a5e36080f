package sources

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/pricejobs"
)

// DefaultQuery selects the provider list in a providers file.
const DefaultQuery = "$.providers"

// external is a provider declared in a providers file.
type external struct {
	name        string
	description string
}

func (e external) Name() string        { return e.name }
func (e external) Description() string { return e.description }

// LoadFile registers the providers declared in a JSON file into the global
// namespace. See Load.
func LoadFile(c *pricejobs.Catalog, filename, query string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open providers file: %w", err)
	}
	defer f.Close()
	if err := Load(c, f, query); err != nil {
		return fmt.Errorf("cannot load providers from %q: %w", filename, err)
	}
	return nil
}

// Load registers the providers declared in a JSON document into the global
// namespace.
//
// query is a JSONPath expression selecting the list of providers in the
// document (DefaultQuery if empty), so that the list can live in any JSON
// configuration file:
//
//	{"providers": [{"id": "acme.quotes", "description": "ACME internal quotes"}]}
func Load(c *pricejobs.Catalog, r io.Reader, query string) error {
	if query == "" {
		query = DefaultQuery
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("not a correct json: %w", err)
	}

	jval, err := jsonpath.Get(query, doc)
	if err != nil {
		return fmt.Errorf("cannot evaluate %q: %w", query, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("%q must select a list, got %T", query, jval)
	}
	// a wildcard query returns a list of lists.
	if len(jlist) == 1 {
		if inner, ok := jlist[0].([]any); ok {
			jlist = inner
		}
	}

	var errs error
	for i, jitem := range jlist {
		obj, ok := jitem.(map[string]any)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("provider #%d: must be an object", i))
			continue
		}
		id, _ := obj["id"].(string)
		if !pricejobs.IsProviderID(id) {
			errs = errors.Join(errs, fmt.Errorf("provider #%d: invalid id %q", i, id))
			continue
		}
		description, _ := obj["description"].(string)
		if err := c.Register(pricejobs.GlobalNamespace, external{id, description}); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
