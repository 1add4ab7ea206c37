package model

// Product represents a catalog record. Localized variants carry the Arabic
// text for the bilingual storefront; they are optional everywhere.
type Product struct {
	ID             int64    `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	NameAr         string   `json:"nameAr,omitempty"`
	Price          float64  `json:"price" validate:"gte=0"`
	Category       string   `json:"category" validate:"required"`
	CategoryAr     string   `json:"categoryAr,omitempty"`
	Image          string   `json:"image,omitempty"`
	Description    string   `json:"description,omitempty"`
	DescriptionAr  string   `json:"descriptionAr,omitempty"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	Colors         []string `json:"colors,omitempty"`
	Brand          string   `json:"brand,omitempty"`
	InStock        bool     `json:"inStock"`
	Quantity       int      `json:"quantity,omitempty" validate:"gte=0"`
	Slug           string   `json:"slug,omitempty"`
	SEOTitle       string   `json:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
	VendorID       int64    `json:"vendorId,omitempty"`
}
