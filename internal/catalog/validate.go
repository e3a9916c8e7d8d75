package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"storefront/internal/types"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidationError describes one invalid catalog field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the catalog and returns every problem found, joined
func Validate(c *types.Catalog) error {
	if c == nil {
		return &ValidationError{Field: "catalog", Message: "is nil"}
	}

	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(c.Pages) == 0 {
		add("pages", "at least one page is required")
	}

	slugs := make(map[string]bool)
	for i, page := range c.Pages {
		pf := fmt.Sprintf("pages[%d]", i)

		switch {
		case !slugPattern.MatchString(page.Slug):
			add(pf+".slug", "%q is not a valid slug", page.Slug)
		case page.Slug == types.ContactID:
			add(pf+".slug", "%q is reserved", page.Slug)
		case slugs[page.Slug]:
			add(pf+".slug", "duplicate slug %q", page.Slug)
		}
		slugs[page.Slug] = true

		if page.Hero.Title == "" {
			add(pf+".hero.title", "is required")
		}

		if page.Contact != nil {
			if page.Contact.Label == "" {
				add(pf+".contact.label", "is required")
			}
			if err := checkLink(page.Contact.URL); err != nil {
				add(pf+".contact.url", "%v", err)
			}
		}

		ids := make(map[string]bool)
		for j, section := range page.Sections {
			sf := fmt.Sprintf("%s.sections[%d]", pf, j)

			if section.Title == "" {
				add(sf+".title", "is required")
			}
			if section.Layout != types.LayoutPricing && section.Layout != types.LayoutCompact {
				add(sf+".layout", "unknown layout %q", section.Layout)
			}
			if section.Columns < 0 || section.Columns > 4 {
				add(sf+".columns", "must be between 0 and 4, got %d", section.Columns)
			}

			for k, p := range section.Products {
				ff := fmt.Sprintf("%s.products[%d]", sf, k)

				switch {
				case !slugPattern.MatchString(p.ID):
					add(ff+".id", "%q is not a valid id", p.ID)
				case p.ID == types.ContactID:
					add(ff+".id", "%q is reserved", p.ID)
				case ids[p.ID]:
					add(ff+".id", "duplicate id %q on page %q", p.ID, page.Slug)
				}
				ids[p.ID] = true

				if p.Title == "" {
					add(ff+".title", "is required")
				}
				if len(p.Prices) == 0 {
					add(ff+".prices", "at least one price is required")
				}
				for n, price := range p.Prices {
					if price.Amount == "" {
						add(fmt.Sprintf("%s.prices[%d].amount", ff, n), "is required")
					}
				}
				if err := checkLink(p.Link); err != nil {
					add(ff+".link", "%v", err)
				}
			}
		}
	}

	if len(c.Pages) > 0 && !slugs[types.IndexSlug] {
		add("pages", "a page with slug %q is required", types.IndexSlug)
	}

	return errors.Join(errs...)
}

func checkLink(link string) error {
	if link == "" {
		return errors.New("is required")
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
