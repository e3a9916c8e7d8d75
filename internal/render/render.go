// Package render turns catalog records into HTML components. Every
// component is a pure function of its inputs.
package render

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"storefront/internal/types"
)

// Options controls how pages link to assets and outbound destinations
type Options struct {
	// TrackOutbound routes buy and contact links through /go/{id}.
	TrackOutbound bool
	// LiveReload includes the live reload script.
	LiveReload bool
	// AssetBase is prepended to stylesheet and script paths.
	AssetBase string
	// Page is the slug of the page being rendered; Page sets it.
	Page string
}

func (o Options) productHref(p types.Product) templ.SafeURL {
	if o.TrackOutbound {
		return templ.URL("/go/" + p.ID)
	}
	return templ.URL(p.Link)
}

func (o Options) contactHref(c *types.Contact) templ.SafeURL {
	if o.TrackOutbound {
		href := "/go/" + types.ContactID
		if o.Page != "" {
			href += "?page=" + url.QueryEscape(o.Page)
		}
		return templ.URL(href)
	}
	return templ.URL(c.URL)
}

// htmlWriter stops writing after the first error
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// externalLink writes the opening tag of a link that opens in a new browsing context
func (h *htmlWriter) externalLink(href templ.SafeURL, class string, extra ...string) {
	h.raw("<a")
	h.attr("href", string(href))
	h.raw(` target="_blank" rel="noopener noreferrer"`)
	if class != "" {
		h.attr("class", class)
	}
	for i := 0; i+1 < len(extra); i += 2 {
		h.attr(extra[i], extra[i+1])
	}
	h.raw(">")
}

// Layout wraps body in the document shell
func Layout(title, description string, opts Options, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title>")
		if description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", description)
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", opts.AssetBase+"styles.css")
		h.raw(`></head><body><div class="backdrop" aria-hidden="true"></div><main class="container">`)
		h.render(body)
		h.raw("</main>")
		if opts.LiveReload {
			h.raw("<script")
			h.attr("src", opts.AssetBase+"static/live.js")
			h.raw(" defer></script>")
		}
		h.raw("</body></html>")
	})
}

// Page renders a complete landing page
func Page(page types.Page, opts Options) templ.Component {
	opts.Page = page.Slug
	parts := []templ.Component{Hero(page.Hero)}
	for _, s := range page.Sections {
		parts = append(parts, Section(s, opts))
	}
	parts = append(parts, ContactCTA(page.Contact, opts))

	return Layout(page.Title, page.Description, opts, templ.Join(parts...))
}

// Hero renders the page header
func Hero(hero types.Hero) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="hero"><div class="hero-inner">`)
		if hero.Eyebrow != "" {
			h.raw(`<div class="eyebrow">` + icon("zap", "gold") + "<span>")
			h.text(hero.Eyebrow)
			h.raw("</span></div>")
		}
		h.raw("<h1>")
		h.text(hero.Title)
		if hero.Highlight != "" {
			h.raw(` <span class="text-gradient">`)
			h.text(hero.Highlight)
			h.raw("</span>")
		}
		h.raw("</h1>")
		if hero.Description != "" {
			h.raw(`<p class="lead">`)
			h.text(hero.Description)
			h.raw("</p>")
		}
		if len(hero.Actions) > 0 {
			h.raw(`<div class="actions">`)
			for _, a := range hero.Actions {
				class := templ.Classes("btn", templ.KV("btn-buy", a.Primary), templ.KV("btn-outline", !a.Primary))
				h.raw("<a")
				h.attr("href", string(templ.URL(a.Href)))
				h.attr("class", class.String())
				h.raw(">" + icon(a.Icon, ""))
				h.text(a.Label)
				h.raw("</a>")
			}
			h.raw("</div>")
		}
		h.raw("</div></header>")
	})
}

// Section renders a heading and a grid of cards in the section's layout
func Section(s types.Section, opts Options) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<section")
		if s.ID != "" {
			h.attr("id", s.ID)
		}
		h.attr("class", "section section-"+s.Layout)
		h.raw(`><div class="section-head"><h2>`)
		h.text(s.Title)
		h.raw("</h2>")
		if s.Subtitle != "" || s.Emphasis != "" {
			h.raw("<p>")
			h.text(s.Subtitle)
			if s.Emphasis != "" {
				h.raw(` <span class="emphasis">`)
				h.text(s.Emphasis)
				h.raw("</span>.")
			}
			h.raw("</p>")
		}
		h.raw("</div>")

		columns := s.Columns
		if columns <= 0 {
			columns = 3
		}
		h.raw(`<div class="grid cols-` + strconv.Itoa(columns) + `">`)
		for _, p := range s.Products {
			if s.Layout == types.LayoutPricing {
				h.render(Card(p, opts))
			} else {
				h.render(MiniCard(p, opts))
			}
		}
		h.raw("</div></section>")
	})
}

// Card renders a product in the pricing layout
func Card(p types.Product, opts Options) templ.Component {
	return component(func(h *htmlWriter) {
		class := templ.Classes("card", templ.KV("featured", p.Featured))
		h.raw("<div")
		h.attr("class", class.String())
		h.attr("data-product", p.ID)
		h.raw(">")

		if p.Badge != "" {
			h.raw(`<span class="badge">`)
			h.text(p.Badge)
			h.raw("</span>")
		}

		h.raw(`<div class="card-body"><div class="card-title">`)
		h.raw(`<div class="icon-box">` + icon(p.Icon, "primary") + "</div><h3>")
		h.text(p.Title)
		h.raw("</h3></div>")

		h.raw(`<p class="muted">`)
		h.text(p.Description)
		h.raw("</p>")

		h.raw(`<div class="price-box">`)
		for _, price := range p.Prices {
			writePrice(h, price, p.Featured)
		}
		h.raw("</div>")

		if p.FreeAddon != "" {
			h.raw(`<div class="free-addon">` + icon("gift", "gold") + "<span>")
			h.text(p.FreeAddon)
			h.raw("</span></div>")
		}

		if len(p.Features) > 0 {
			h.raw(`<ul class="features">`)
			for _, f := range p.Features {
				h.raw("<li>" + icon("check", "primary") + "<span>")
				h.text(f)
				h.raw("</span></li>")
			}
			h.raw("</ul>")
		}

		button := templ.Classes("btn", "btn-block", templ.KV("btn-gold", p.Featured), templ.KV("btn-buy", !p.Featured))
		h.externalLink(opts.productHref(p), button.String(), "data-buy", p.ID)
		h.raw(icon("external-link", "") + "Buy on Gumroad</a>")

		h.raw("</div></div>")
	})
}

func writePrice(h *htmlWriter, price types.Price, featured bool) {
	h.raw(`<div class="price-row">`)
	if price.Label != "" {
		h.raw(`<span class="price-label">`)
		h.text(price.Label)
		h.raw("</span>")
	}
	class := templ.Classes("price", templ.KV("text-gradient", featured))
	h.raw("<span")
	h.attr("class", class.String())
	h.raw(">")
	h.text(price.Amount)
	h.raw("</span>")
	if price.Unit != "" {
		h.raw(`<span class="price-unit">`)
		h.text(price.Unit)
		h.raw("</span>")
	}
	if price.Original != "" {
		h.raw(`<s class="price-original">`)
		h.text(price.Original)
		h.raw("</s>")
	}
	h.raw("</div>")
}

// MiniCard renders a product in the compact layout. The whole card is the link.
func MiniCard(p types.Product, opts Options) templ.Component {
	return component(func(h *htmlWriter) {
		h.externalLink(opts.productHref(p), "mini-card", "data-product", p.ID, "data-buy", p.ID)
		h.raw(`<div class="card-body"><div class="mini-head"><div class="card-title">`)
		h.raw(`<div class="icon-box">` + icon(p.Icon, "primary") + "</div><h4>")
		h.text(p.Title)
		h.raw(`</h4></div><span class="price text-gradient">`)
		h.text(p.PrimaryPrice().Amount)
		h.raw("</span></div>")

		h.raw(`<p class="muted">`)
		h.text(p.Description)
		h.raw("</p>")

		h.raw(`<div class="buy-now">Buy Now ` + icon("arrow-right", "") + "</div>")
		h.raw("</div></a>")
	})
}

// ContactCTA renders the messaging call-to-action. A nil contact renders nothing.
func ContactCTA(c *types.Contact, opts Options) templ.Component {
	if c == nil {
		return templ.NopComponent
	}
	return component(func(h *htmlWriter) {
		h.raw(`<div class="contact"><div class="contact-inner">`)
		if c.Prompt != "" {
			h.raw(`<div class="contact-prompt">` + icon("star", "gold") + "<span>")
			h.text(c.Prompt)
			h.raw("</span>" + icon("star", "gold") + "</div>")
		}
		h.externalLink(opts.contactHref(c), "btn btn-buy", "data-contact", "true")
		h.raw(icon("message-circle", ""))
		h.text(c.Label)
		h.raw("</a>")
		if c.Footnote != "" {
			h.raw(`<p class="footnote">`)
			h.text(c.Footnote)
			h.raw("</p>")
		}
		h.raw("</div></div>")
	})
}

// NotFound renders the page shown for unknown slugs
func NotFound(opts Options) templ.Component {
	body := component(func(h *htmlWriter) {
		h.raw(`<header class="hero"><div class="hero-inner"><h1>Page not found</h1>`)
		h.raw(`<p class="lead">The page you are looking for does not exist.</p>`)
		h.raw(`<div class="actions"><a href="/" class="btn btn-buy">Back to products</a></div>`)
		h.raw("</div></header>")
	})
	return Layout("Page not found", "", opts, body)
}
