package model

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"buttons", CategoryButtons, false},
		{"Labels", CategoryLabels, false},
		{"  literals  ", CategoryLiterals, false},
		{"toast", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAllCategoriesPrecedenceOrder(t *testing.T) {
	cats := AllCategories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	if cats[0] != CategoryButtons {
		t.Errorf("expected buttons first, got %v", cats[0])
	}
	if cats[len(cats)-1] != CategoryLiterals {
		t.Errorf("expected literals last, got %v", cats[len(cats)-1])
	}
	for _, c := range cats {
		if !c.IsValid() {
			t.Errorf("category %v reported invalid", c)
		}
	}
}

func TestDialectForPath(t *testing.T) {
	tests := []struct {
		path string
		want Dialect
	}{
		{"src/App.tsx", DialectMarkup},
		{"src/Form.vue", DialectMarkup},
		{"index.HTML", DialectMarkup},
		{"pages/about.htm", DialectMarkup},
		{"src/utils.ts", DialectSource},
		{"src/api.js", DialectSource},
		{"noext", DialectSource},
	}

	for _, tt := range tests {
		if got := DialectForPath(tt.path); got != tt.want {
			t.Errorf("DialectForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExtractionResultAdd(t *testing.T) {
	r := NewExtractionResult("src/App.tsx")
	r.Add("Save", CategoryButtons, 10)
	r.Add("Email address", CategoryLabels, 12)
	r.Add("Save", CategoryButtons, 30)

	if r.StringCount != 3 {
		t.Errorf("StringCount = %d, want 3", r.StringCount)
	}
	if r.CategoryCounts[CategoryButtons] != 2 {
		t.Errorf("buttons count = %d, want 2", r.CategoryCounts[CategoryButtons])
	}
	if r.Strings[0].Text != "Save" || r.Strings[1].Text != "Email address" {
		t.Errorf("strings not in discovery order: %+v", r.Strings)
	}
	if r.Strings[2].LineHint != 30 {
		t.Errorf("line hint = %d, want 30", r.Strings[2].LineHint)
	}
}

func TestExtractionResultEqual(t *testing.T) {
	a := NewExtractionResult("a.ts")
	a.Add("Please sign in", CategoryLiterals, 3)
	b := NewExtractionResult("a.ts")
	b.Add("Please sign in", CategoryLiterals, 3)

	if !a.Equal(b) {
		t.Error("identical results reported unequal")
	}

	b.Add("Logout", CategoryButtons, 9)
	if a.Equal(b) {
		t.Error("different results reported equal")
	}

	c := NewExtractionResult("other.ts")
	c.Add("Please sign in", CategoryLiterals, 3)
	if a.Equal(c) {
		t.Error("results with different paths reported equal")
	}
}
