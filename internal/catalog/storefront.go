package catalog

import "sort"

// StorefrontView is the read model the public menu page consumes. Extras are
// loaded and persisted with the aggregate but the storefront never shows
// them, so they are left out here on purpose.
type StorefrontView struct {
	Settings Settings           `json:"settings"`
	Sections []StorefrontSection `json:"sections"`
}

type StorefrontSection struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Products []StorefrontProduct `json:"products"`
}

type StorefrontProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	ShowImage   bool   `json:"showImage"`
	Sizes       []Size `json:"sizes"`
	Tags        []Tag  `json:"tags"`
}

// BuildStorefront shapes the aggregate for public rendering:
//   - sections sorted ascending by order (ties keep array order), hidden
//     sections dropped;
//   - products appear in each section's ProductIDs index order, ids that
//     match no product are skipped;
//   - sections left with no products are dropped entirely;
//   - product tag ids that match no tag are skipped.
//
// The section's ProductIDs order is authoritative for section-scoped
// display; the product Order field only sorts the admin catalog list.
func BuildStorefront(data Data) StorefrontView {
	productsByID := make(map[string]Product, len(data.Products))
	for _, p := range data.Products {
		productsByID[p.ID] = p
	}
	tagsByID := make(map[string]Tag, len(data.Tags))
	for _, t := range data.Tags {
		tagsByID[t.ID] = t
	}

	sections := append([]Section(nil), data.Sections...)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	view := StorefrontView{Settings: data.Settings, Sections: []StorefrontSection{}}
	for _, s := range sections {
		if !s.Visible {
			continue
		}
		products := []StorefrontProduct{}
		for _, id := range s.ProductIDs {
			p, ok := productsByID[id]
			if !ok {
				continue
			}
			tags := []Tag{}
			for _, tagID := range p.Tags {
				if t, ok := tagsByID[tagID]; ok {
					tags = append(tags, t)
				}
			}
			products = append(products, StorefrontProduct{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Image:       p.Image,
				ShowImage:   p.ShowImage,
				Sizes:       p.Sizes,
				Tags:        tags,
			})
		}
		if len(products) == 0 {
			continue
		}
		view.Sections = append(view.Sections, StorefrontSection{
			ID:       s.ID,
			Name:     s.Name,
			Products: products,
		})
	}
	return view
}
