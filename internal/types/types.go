package types

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Section layouts
const (
	LayoutPricing = "pricing"
	LayoutCompact = "compact"
)

// ContactID is the outbound id reserved for the page contact link
const ContactID = "contact"

// IndexSlug is the page served at the site root and exported as index.html
const IndexSlug = "index"

// Price is one (label, price, unit) entry shown on a card
type Price struct {
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Amount   string `json:"amount" yaml:"amount"`
	Unit     string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Original string `json:"original,omitempty" yaml:"original,omitempty"` // struck-through price
}

// Product is a single item offered for sale through an external link
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Prices      []Price  `json:"prices" yaml:"prices"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
	Badge       string   `json:"badge,omitempty" yaml:"badge,omitempty"`
	FreeAddon   string   `json:"freeAddon,omitempty" yaml:"freeAddon,omitempty"`
	Featured    bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	Link        string   `json:"link" yaml:"link,omitempty"`
}

// PrimaryPrice returns the first price of the product, or the zero Price
func (p Product) PrimaryPrice() Price {
	if len(p.Prices) == 0 {
		return Price{}
	}
	return p.Prices[0]
}

// Action is an in-page call-to-action shown in the hero
type Action struct {
	Label   string `json:"label" yaml:"label"`
	Href    string `json:"href" yaml:"href"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Primary bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Hero is the header block at the top of a page
type Hero struct {
	Eyebrow     string   `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Highlight   string   `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Actions     []Action `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// Section groups products under a heading with a single card layout
type Section struct {
	ID       string    `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string    `json:"title" yaml:"title"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Emphasis string    `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
	Layout   string    `json:"layout" yaml:"layout"`
	Columns  int       `json:"columns,omitempty" yaml:"columns,omitempty"`
	Products []Product `json:"products" yaml:"products"`
}

// Contact is the messaging call-to-action at the bottom of a page
type Contact struct {
	Prompt   string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Label    string `json:"label" yaml:"label"`
	URL      string `json:"url" yaml:"url,omitempty"`
	Footnote string `json:"footnote,omitempty" yaml:"footnote,omitempty"`
}

// Page is one landing page definition
type Page struct {
	Slug        string    `json:"slug" yaml:"slug"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Hero        Hero      `json:"hero" yaml:"hero"`
	Sections    []Section `json:"sections" yaml:"sections"`
	Contact     *Contact  `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// CardCount returns the number of product cards the page renders
func (p Page) CardCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Products)
	}
	return n
}

// Catalog is the full set of pages served by the storefront
type Catalog struct {
	PaymentURL string `json:"paymentUrl" yaml:"paymentUrl"`
	ContactURL string `json:"contactUrl" yaml:"contactUrl"`
	Pages      []Page `json:"pages" yaml:"pages"`
}

// Page returns the page with the given slug
func (c *Catalog) Page(slug string) (Page, bool) {
	for _, p := range c.Pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Product returns the first product with the given id across all pages
func (c *Catalog) Product(id string) (Product, bool) {
	for _, page := range c.Pages {
		for _, s := range page.Sections {
			for _, p := range s.Products {
				if p.ID == id {
					return p, true
				}
			}
		}
	}
	return Product{}, false
}

// Products returns every distinct product in page order
func (c *Catalog) Products() []Product {
	seen := make(map[string]bool)
	var out []Product
	for _, page := range c.Pages {
		for _, s := range page.Sections {
			for _, p := range s.Products {
				if seen[p.ID] {
					continue
				}
				seen[p.ID] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// Response represents an API response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WSMessage represents a live reload message pushed to browsers
type WSMessage struct {
	Type    string `json:"type"`
	Version int64  `json:"version,omitempty"`
}

// WSClient represents a connected browser
type WSClient struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}
