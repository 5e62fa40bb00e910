package catalog

// Data is the full in-memory aggregate for one bakery: settings plus the
// four catalog collections. It is loaded as a whole and saved as a whole.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Data struct {
	Settings Settings  `json:"settings"`
	Products []Product `json:"products"`
	Sections []Section `json:"sections"`
	Extras   []Extra   `json:"extras"`
	Tags     []Tag     `json:"tags"`
}

// Settings holds the presentation and contact fields of a bakery. Fields are
// never validated individually; absent fields decode to zero values and the
// storefront falls back to defaults at render time.
type Settings struct {
	BrandName          string  `json:"brandName"`
	ShowLogo           bool    `json:"showLogo"`
	ShowName           bool    `json:"showName"`
	LogoImage          string  `json:"logoImage,omitempty"`
	HeroLogoImage      string  `json:"heroLogoImage,omitempty"`
	ShowHeroLogo       bool    `json:"showHeroLogo"`
	HeroImage          string  `json:"heroImage,omitempty"`
	HeroImagePosition  string  `json:"heroImagePosition,omitempty"`
	HeroOverlayColor   string  `json:"heroOverlayColor"`
	HeroOverlayOpacity float64 `json:"heroOverlayOpacity"`
	HeroTitle          string  `json:"heroTitle"`
	HeroSubtitle       string  `json:"heroSubtitle"`
	WhatsappNumber     string  `json:"whatsappNumber"`
	WhatsappMessage    string  `json:"whatsappMessage"`
	AboutTitle         string  `json:"aboutTitle"`
	AboutText          string  `json:"aboutText"`
	AboutImage         string  `json:"aboutImage,omitempty"`
	ShowAbout          bool    `json:"showAbout"`
	ShowAboutImage     bool    `json:"showAboutImage,omitempty"`
	ExtraInfoTitle     string  `json:"extraInfoTitle"`
	ExtraInfoText      string  `json:"extraInfoText"`
	ShowExtraInfo      bool    `json:"showExtraInfo"`
	FooterText         string  `json:"footerText"`
	FooterAddress      string  `json:"footerAddress,omitempty"`
	FooterPhone        string  `json:"footerPhone,omitempty"`
	InstagramURL       string  `json:"instagramUrl,omitempty"`
	// two editable theme colors
	ColorBackground    string `json:"colorBackgroundRosa,omitempty"`
	ColorButtonPrimary string `json:"colorButtonPrimary,omitempty"`
}

// Product ids are assigned client-side and must survive a save/load round
// trip unchanged; sections reference products by these ids.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	ShowImage   bool   `json:"showImage"`
	Sizes       []Size `json:"sizes"`
	// weak references into Data.Tags; dangling ids are skipped when rendering
	Tags  []string `json:"tags"`
	Order int      `json:"order"`
}

type Size struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Section groups products. ProductIDs defines both membership and the
// display order inside the section; ids may point at products that no
// longer exist (mid-edit state) and are then simply skipped.
type Section struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Visible    bool     `json:"visible"`
	Order      int      `json:"order"`
	ProductIDs []string `json:"productIds"`
}

type Extra struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	ShowImage   bool    `json:"showImage,omitempty"`
	Order       int     `json:"order"`
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji,omitempty"`
}

// FallbackSettings builds a fully defaulted settings object from the bakery
// display name alone. Used when a bakery row carries no settings blob.
func FallbackSettings(brandName string) Settings {
	return Settings{
		BrandName:          brandName,
		HeroImagePosition:  "center",
		HeroOverlayColor:   "#000000",
		HeroOverlayOpacity: 0.5,
	}
}
