package budget

import (
	"testing"

	"github.com/qawamdev/qawam/internal/model"
)

func TestCatalogCategorize(t *testing.T) {
	c := DefaultCatalog(model.English)

	cases := []struct {
		name string
		want model.Category
	}{
		{"Electricity bill", model.Need},
		{"Dining out", model.Want},
		{"Emergency fund", model.Saving},
	}
	for _, tc := range cases {
		got, ok := c.Categorize(tc.name)
		if !ok {
			t.Fatalf("Categorize(%q) not found", tc.name)
		}
		if got != tc.want {
			t.Fatalf("Categorize(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCatalogUnmappedFallsBack(t *testing.T) {
	c := DefaultCatalog(model.English)
	got, ok := c.Categorize("Llama grooming")
	if ok {
		t.Fatal("unknown name reported as catalog match")
	}
	if got != model.Need {
		t.Fatalf("fallback category = %s, want need", got)
	}
}

func TestCatalogLanguages(t *testing.T) {
	ar := DefaultCatalog(model.Arabic)
	en := DefaultCatalog(model.English)

	if len(ar.Items) != len(en.Items) {
		t.Fatalf("catalog sizes differ: ar=%d en=%d", len(ar.Items), len(en.Items))
	}
	if len(ar.Names()) != len(ar.Items) {
		t.Fatal("Names length mismatch")
	}

	// Category distribution must match across languages.
	count := func(c Catalog, cat model.Category) int {
		n := 0
		for _, it := range c.Items {
			if it.Category == cat {
				n++
			}
		}
		return n
	}
	for _, cat := range model.Categories {
		if count(ar, cat) != count(en, cat) {
			t.Fatalf("category %s count differs across languages", cat)
		}
	}
}
