package catalog

import "testing"

func TestBuildStorefront_SectionOrderAndVisibility(t *testing.T) {
	data := Data{
		Products: []Product{
			{ID: "p1", Name: "Bolo A", Sizes: []Size{{ID: "u", Name: "Único", Price: 10}}},
			{ID: "p2", Name: "Bolo B", Sizes: []Size{{ID: "u", Name: "Único", Price: 20}}},
		},
		Sections: []Section{
			{ID: "s2", Name: "Segunda", Visible: true, Order: 2, ProductIDs: []string{"p2"}},
			{ID: "s1", Name: "Primeira", Visible: true, Order: 1, ProductIDs: []string{"p1"}},
			{ID: "s3", Name: "Escondida", Visible: false, Order: 0, ProductIDs: []string{"p1"}},
		},
	}

	view := BuildStorefront(data)
	if len(view.Sections) != 2 {
		t.Fatalf("expected 2 visible sections, got %d", len(view.Sections))
	}
	if view.Sections[0].ID != "s1" || view.Sections[1].ID != "s2" {
		t.Fatalf("sections out of order: %s, %s", view.Sections[0].ID, view.Sections[1].ID)
	}
}

func TestBuildStorefront_SkipsDanglingAndEmptySections(t *testing.T) {
	data := Data{
		Products: []Product{
			{ID: "p1", Name: "Bolo A", Sizes: []Size{{ID: "u", Name: "Único", Price: 10}}},
		},
		Sections: []Section{
			// p9 was deleted mid-edit; the section still lists it
			{ID: "s1", Name: "Mista", Visible: true, Order: 1, ProductIDs: []string{"p9", "p1"}},
			{ID: "s2", Name: "Só Fantasmas", Visible: true, Order: 2, ProductIDs: []string{"p8", "p9"}},
			{ID: "s3", Name: "Vazia", Visible: true, Order: 3, ProductIDs: []string{}},
		},
	}

	view := BuildStorefront(data)
	if len(view.Sections) != 1 {
		t.Fatalf("expected only the section with a real product, got %d", len(view.Sections))
	}
	s := view.Sections[0]
	if s.ID != "s1" || len(s.Products) != 1 || s.Products[0].ID != "p1" {
		t.Fatalf("unexpected section contents: %+v", s)
	}
}

func TestBuildStorefront_ProductIDsOrderWins(t *testing.T) {
	data := Data{
		Products: []Product{
			{ID: "p1", Name: "A", Order: 1, Sizes: []Size{{ID: "u", Name: "Único", Price: 1}}},
			{ID: "p2", Name: "B", Order: 2, Sizes: []Size{{ID: "u", Name: "Único", Price: 2}}},
		},
		Sections: []Section{
			// list order deliberately disagrees with the products' Order field
			{ID: "s1", Name: "Bolos", Visible: true, Order: 1, ProductIDs: []string{"p2", "p1"}},
		},
	}

	view := BuildStorefront(data)
	if view.Sections[0].Products[0].ID != "p2" || view.Sections[0].Products[1].ID != "p1" {
		t.Fatalf("section must follow ProductIDs order, got %+v", view.Sections[0].Products)
	}
}

func TestBuildStorefront_DanglingTagIgnored(t *testing.T) {
	data := Data{
		Products: []Product{
			{ID: "p1", Name: "A", Tags: []string{"gone", "t1"}, Sizes: []Size{{ID: "u", Name: "Único", Price: 1}}},
		},
		Sections: []Section{
			{ID: "s1", Name: "Bolos", Visible: true, Order: 1, ProductIDs: []string{"p1"}},
		},
		Tags: []Tag{{ID: "t1", Name: "Destaque", Color: "#E88D95"}},
	}

	view := BuildStorefront(data)
	tags := view.Sections[0].Products[0].Tags
	if len(tags) != 1 || tags[0].ID != "t1" {
		t.Fatalf("dangling tag id must be skipped, got %+v", tags)
	}
}
