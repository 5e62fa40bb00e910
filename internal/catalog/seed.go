package catalog

// DefaultData returns the hardcoded demo catalog used to seed the local
// fallback store on first run. Ids are fixed so the seed is stable across
// save/load round trips.
func DefaultData() Data {
	return Data{
		Settings: Settings{
			BrandName:          "Bolos Caseirinhos",
			ShowName:           true,
			HeroImage:          "/images/hero-cakes.jpg",
			HeroImagePosition:  "center",
			HeroOverlayColor:   "#000000",
			HeroOverlayOpacity: 0.45,
			HeroTitle:          "Bolos caseiros artesanais",
			HeroSubtitle:       "Do nosso forno pra sua mesa.",
			WhatsappNumber:     "5511999999999",
			WhatsappMessage:    "Olá! Gostaria de confirmar meu pedido:",
			AboutTitle:         "Sobre Nós",
			AboutText:          "Cada bolo é feito com carinho e dedicação, utilizando apenas ingredientes frescos e de qualidade. Nossa paixão é transformar momentos especiais em memórias deliciosas.",
			ShowAbout:          true,
			ExtraInfoTitle:     "Informações Adicionais",
			ExtraInfoText:      "• Retirada no local ou entrega (consulte taxa)\n• Prazo mínimo: 48h de antecedência\n• Aceitamos encomendas personalizadas",
			ShowExtraInfo:      true,
			FooterText:         "© 2025 Bolos Caseirinhos. Feito com amor.",
		},
		Products: []Product{
			{
				ID:          "1",
				Name:        "Bolo de Chocolate",
				Description: "Bolo fofinho de chocolate com cobertura cremosa",
				Image:       "/images/bolo-chocolate.jpg",
				ShowImage:   true,
				Sizes: []Size{
					{ID: "1-p", Name: "Pequeno (15cm)", Price: 35.00},
					{ID: "1-m", Name: "Médio (20cm)", Price: 55.00},
					{ID: "1-g", Name: "Grande (25cm)", Price: 75.00},
				},
				Tags:  []string{"1"},
				Order: 1,
			},
			{
				ID:          "2",
				Name:        "Bolo Mesclado",
				Description: "Combinação perfeita de chocolate e baunilha",
				Image:       "/images/bolo-mesclado.jpg",
				ShowImage:   true,
				Sizes: []Size{
					{ID: "2-p", Name: "Pequeno (15cm)", Price: 38.00},
					{ID: "2-m", Name: "Médio (20cm)", Price: 58.00},
					{ID: "2-g", Name: "Grande (25cm)", Price: 78.00},
				},
				Tags:  []string{"2"},
				Order: 2,
			},
			{
				ID:          "3",
				Name:        "Bolo de Baunilha",
				Description: "Clássico e delicioso bolo de baunilha",
				Image:       "/images/bolo-baunilha.jpg",
				ShowImage:   true,
				Sizes: []Size{
					{ID: "3-p", Name: "Pequeno (15cm)", Price: 32.00},
					{ID: "3-m", Name: "Médio (20cm)", Price: 52.00},
					{ID: "3-g", Name: "Grande (25cm)", Price: 72.00},
				},
				Tags:  []string{},
				Order: 3,
			},
			{
				ID:          "4",
				Name:        "Bolo de Cenoura",
				Description: "Bolo úmido de cenoura com cobertura de chocolate",
				Image:       "/images/bolo-cenoura.jpg",
				ShowImage:   true,
				Sizes: []Size{
					{ID: "4-p", Name: "Pequeno (15cm)", Price: 33.00},
					{ID: "4-m", Name: "Médio (20cm)", Price: 53.00},
					{ID: "4-g", Name: "Grande (25cm)", Price: 73.00},
				},
				Tags:  []string{"3"},
				Order: 4,
			},
			{
				ID:          "5",
				Name:        "Bolo Red Velvet",
				Description: "Bolo aveludado com cobertura de cream cheese",
				Image:       "/images/bolo-red-velvet.jpg",
				ShowImage:   true,
				Sizes: []Size{
					{ID: "5-p", Name: "Pequeno (15cm)", Price: 45.00},
					{ID: "5-m", Name: "Médio (20cm)", Price: 65.00},
					{ID: "5-g", Name: "Grande (25cm)", Price: 85.00},
				},
				Tags:  []string{"1"},
				Order: 5,
			},
			{
				ID:          "6",
				Name:        "Bolo de Limão",
				Description: "Refrescante bolo de limão com cobertura branca",
				Image:       "/images/bolo-limao.jpg",
				ShowImage:   true,
				Sizes: []Size{
					{ID: "6-p", Name: "Pequeno (15cm)", Price: 40.00},
					{ID: "6-m", Name: "Médio (20cm)", Price: 60.00},
					{ID: "6-g", Name: "Grande (25cm)", Price: 80.00},
				},
				Tags:  []string{"3"},
				Order: 6,
			},
		},
		Sections: []Section{
			{
				ID:         "section-1",
				Name:       "Nossos Bolos",
				Visible:    true,
				Order:      1,
				ProductIDs: []string{"1", "2", "3", "4"},
			},
			{
				ID:         "section-2",
				Name:       "Bolos Especiais",
				Visible:    true,
				Order:      2,
				ProductIDs: []string{"5", "6"},
			},
		},
		Extras: []Extra{
			{
				ID:          "e1",
				Name:        "Cobertura de Brigadeiro Branco",
				Description: "Cobertura cremosa e deliciosa",
				Image:       "/images/cobertura-brigadeiro-branco.jpg",
				Price:       12.00,
				Order:       1,
			},
			{
				ID:          "e2",
				Name:        "Cobertura de Brigadeiro Tradicional",
				Description: "O clássico brigadeiro que todos amam",
				Image:       "/images/cobertura-brigadeiro-tradicional.jpg",
				Price:       10.00,
				Order:       2,
			},
			{
				ID:          "e3",
				Name:        "Brigadeiro de Coco",
				Description: "Cobertura especial com coco ralado",
				Image:       "/images/cobertura-coco.jpg",
				Price:       13.00,
				Order:       3,
			},
		},
		Tags: []Tag{
			{ID: "1", Name: "Destaque", Color: "#E88D95", Emoji: "⭐"},
			{ID: "2", Name: "Promoção", Color: "#9DC4A8", Emoji: "🎉"},
			{ID: "3", Name: "Novidade", Color: "#E8C89D", Emoji: "✨"},
			{ID: "4", Name: "Vegano", Color: "#98C9A3", Emoji: "🌱"},
			{ID: "5", Name: "Sem Lactose", Color: "#C9B8E4", Emoji: "🥛"},
			{ID: "6", Name: "Sem Glúten", Color: "#F4C2C2", Emoji: "🌾"},
		},
	}
}
