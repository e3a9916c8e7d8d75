package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/types"
)

const minimalYAML = `
paymentUrl: https://pay.example.com
pages:
  - slug: index
    title: Test
    hero:
      title: Hello
    sections:
      - title: Packs
        layout: pricing
        products:
          - id: small
            title: Small
            description: A small pack
            prices:
              - amount: "$1"
          - id: large
            title: Large
            description: A large pack
            prices:
              - amount: "$10"
            featured: true
            badge: Best Value
            link: https://other.example.com/large
    contact:
      label: Chat
`

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestDefaultContents(t *testing.T) {
	c := Default()

	index, ok := c.Page("index")
	require.True(t, ok)
	require.Len(t, index.Sections, 3)

	assert.Equal(t, 3, len(index.Sections[0].Products))
	assert.Equal(t, 2, len(index.Sections[1].Products))
	assert.Equal(t, 3, len(index.Sections[2].Products))
	assert.Equal(t, 8, index.CardCount())

	prices := map[string]string{
		"starter":          "$9",
		"growth":           "$49",
		"enterprise":       "$99",
		"email-verifier":   "$9",
		"linkedin-scraper": "$9",
		"clients-guide":    "$4.99",
		"shorts-bundle":    "$3",
		"ai-prompts":       "$1.99",
	}
	for id, want := range prices {
		p, ok := c.Product(id)
		require.True(t, ok, id)
		assert.Equal(t, want, p.PrimaryPrice().Amount, id)
		assert.Equal(t, PaymentURL, p.Link, id)
	}

	growth, _ := c.Product("growth")
	assert.True(t, growth.Featured)
	assert.Equal(t, "Most Popular", growth.Badge)

	require.NotNil(t, index.Contact)
	assert.Equal(t, ContactURL, index.Contact.URL)

	store, ok := c.Page("store")
	require.True(t, ok)
	assert.Equal(t, index.CardCount(), store.CardCount())

	assert.Contains(t, index.Hero.Description, "digital products — no login needed.")
	assert.Equal(t, "Resources to grow your business and content — instant delivery.", index.Sections[2].Subtitle)
	shorts, _ := c.Product("shorts-bundle")
	assert.Equal(t, "Ready-to-post short-form videos across multiple categories — instant download.", shorts.Description)
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Pages[0].Sections[0].Products[0].Title = "changed"

	b := Default()
	assert.Equal(t, "Starter", b.Pages[0].Sections[0].Products[0].Title)
}

func TestParseAppliesDefaults(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	small, ok := c.Product("small")
	require.True(t, ok)
	assert.Equal(t, "https://pay.example.com", small.Link)

	large, ok := c.Product("large")
	require.True(t, ok)
	assert.Equal(t, "https://other.example.com/large", large.Link)

	page, _ := c.Page("index")
	require.NotNil(t, page.Contact)
	assert.Equal(t, ContactURL, page.Contact.URL)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(minimalYAML + "bogus: true\n"))
	require.Error(t, err)
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
}

func TestParseRequiresIndexPage(t *testing.T) {
	data := strings.Replace(minimalYAML, "slug: index", "slug: home", 1)

	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Equal(t, []string{"pages"}, validationFields(err))
	assert.Contains(t, err.Error(), `a page with slug "index" is required`)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidateCollectsErrors(t *testing.T) {
	c := &types.Catalog{
		Pages: []types.Page{
			{
				Slug: "Bad Slug",
				Sections: []types.Section{
					{
						Title:  "S",
						Layout: "carousel",
						Products: []types.Product{
							{ID: "a", Title: "A", Prices: []types.Price{{Amount: "$1"}}, Link: "ftp://example.com"},
							{ID: "a", Title: "", Link: "https://example.com"},
						},
					},
				},
			},
		},
	}

	err := Validate(c)
	require.Error(t, err)

	fields := validationFields(err)
	assert.Contains(t, fields, "pages[0].slug")
	assert.Contains(t, fields, "pages[0].hero.title")
	assert.Contains(t, fields, "pages[0].sections[0].layout")
	assert.Contains(t, fields, "pages[0].sections[0].products[0].link")
	assert.Contains(t, fields, "pages[0].sections[0].products[1].id")
	assert.Contains(t, fields, "pages[0].sections[0].products[1].title")
	assert.Contains(t, fields, "pages[0].sections[0].products[1].prices")
}

func TestValidateReservedContactID(t *testing.T) {
	c := Default()
	c.Pages[0].Sections[0].Products[0].ID = types.ContactID

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestValidateDuplicateSlug(t *testing.T) {
	c := Default()
	c.Pages[1].Slug = "index"

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, validationFields(err), "pages[1].slug")
}

func validationFields(err error) []string {
	var fields []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *ValidationError
		if errors.As(e, &ve) {
			fields = append(fields, ve.Field)
		}
	}
	return fields
}

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpenBuiltin(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Version())
	assert.Empty(t, s.Path())

	_, ok := s.Get().Page("index")
	assert.True(t, ok)

	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, int64(1), s.Version())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, minimalYAML)

	s, err := Open(path)
	require.NoError(t, err)

	writeCatalog(t, path, "pages: []\n")
	require.Error(t, s.Reload(context.Background()))

	assert.Equal(t, int64(1), s.Version())
	_, ok := s.Get().Product("small")
	assert.True(t, ok)
}

func TestReloadNotifiesSubscribers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, minimalYAML)

	s, err := Open(path)
	require.NoError(t, err)

	ch, cancel := s.Subscribe()
	defer cancel()

	writeCatalog(t, path, strings.Replace(minimalYAML, `"$10"`, `"$12"`, 1))
	require.NoError(t, s.Reload(context.Background()))

	select {
	case v := <-ch:
		assert.Equal(t, int64(2), v)
	case <-time.After(time.Second):
		t.Fatal("no reload notification")
	}

	large, _ := s.Get().Product("large")
	assert.Equal(t, "$12", large.PrimaryPrice().Amount)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, minimalYAML)

	s, err := Open(path)
	require.NoError(t, err)

	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	require.NoError(t, s.Reload(context.Background()))

	select {
	case v := <-ch:
		t.Fatalf("unexpected notification %d", v)
	default:
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, minimalYAML)

	s, err := Open(path)
	require.NoError(t, err)

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	writeCatalog(t, path, strings.Replace(minimalYAML, "Best Value", "Top Pick", 1))

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not reload catalog")
	}

	large, _ := s.Get().Product("large")
	assert.Equal(t, "Top Pick", large.Badge)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
