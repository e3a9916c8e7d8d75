package types

import (
	"testing"
)

func testCatalog() *Catalog {
	starter := Product{ID: "starter", Title: "Starter", Prices: []Price{{Amount: "$9"}}}
	growth := Product{ID: "growth", Title: "Growth", Prices: []Price{{Amount: "$49"}}, Featured: true}
	verifier := Product{ID: "email-verifier", Title: "Email Verifier", Prices: []Price{{Amount: "$9"}}}

	return &Catalog{
		Pages: []Page{
			{
				Slug: "index",
				Sections: []Section{
					{ID: "emails", Layout: LayoutPricing, Products: []Product{starter, growth}},
					{Layout: LayoutCompact, Products: []Product{verifier}},
				},
			},
			{
				Slug: "store",
				Sections: []Section{
					{Layout: LayoutCompact, Products: []Product{starter, verifier}},
				},
			},
		},
	}
}

func TestPrimaryPrice(t *testing.T) {
	p := Product{Prices: []Price{{Label: "Monthly", Amount: "$9"}, {Label: "Yearly", Amount: "$90"}}}
	if got := p.PrimaryPrice().Amount; got != "$9" {
		t.Errorf("Expected primary price '$9', got '%s'", got)
	}

	empty := Product{}
	if got := empty.PrimaryPrice(); got != (Price{}) {
		t.Errorf("Expected zero price, got %+v", got)
	}
}

func TestCardCount(t *testing.T) {
	c := testCatalog()

	index, ok := c.Page("index")
	if !ok {
		t.Fatal("index page not found")
	}
	if index.CardCount() != 3 {
		t.Errorf("Expected 3 cards, got %d", index.CardCount())
	}
}

func TestCatalogPage(t *testing.T) {
	c := testCatalog()

	if _, ok := c.Page("store"); !ok {
		t.Error("store page should exist")
	}
	if _, ok := c.Page("missing"); ok {
		t.Error("missing page should not exist")
	}
}

func TestCatalogProduct(t *testing.T) {
	c := testCatalog()

	p, ok := c.Product("growth")
	if !ok {
		t.Fatal("growth product not found")
	}
	if !p.Featured {
		t.Error("growth should be featured")
	}

	if _, ok := c.Product("nope"); ok {
		t.Error("unknown product should not be found")
	}
}

func TestCatalogProductsDeduplicates(t *testing.T) {
	c := testCatalog()

	products := c.Products()
	if len(products) != 3 {
		t.Fatalf("Expected 3 distinct products, got %d", len(products))
	}

	want := []string{"starter", "growth", "email-verifier"}
	for i, id := range want {
		if products[i].ID != id {
			t.Errorf("products[%d]: expected '%s', got '%s'", i, id, products[i].ID)
		}
	}
}
