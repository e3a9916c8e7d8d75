package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"storefront/internal/types"
)

// Load reads a YAML catalog file, applies defaults and validates it
func Load(path string) (*types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document. Unknown fields are rejected.
func Parse(data []byte) (*types.Catalog, error) {
	var c types.Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty catalog")
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	applyDefaults(&c)

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes a catalog as YAML
func Marshal(c *types.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// applyDefaults fills empty product and contact links from the catalog-wide URLs
func applyDefaults(c *types.Catalog) {
	if c.PaymentURL == "" {
		c.PaymentURL = PaymentURL
	}
	if c.ContactURL == "" {
		c.ContactURL = ContactURL
	}

	for i := range c.Pages {
		page := &c.Pages[i]
		if page.Contact != nil && page.Contact.URL == "" {
			page.Contact.URL = c.ContactURL
		}
		for j := range page.Sections {
			section := &page.Sections[j]
			for k := range section.Products {
				if section.Products[k].Link == "" {
					section.Products[k].Link = c.PaymentURL
				}
			}
		}
	}
}
