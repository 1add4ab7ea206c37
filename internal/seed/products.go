// Package seed holds the bundled default catalog used when the local store is
// empty on boot. The records are static: the next boot reads them back from
// the store instead.
package seed

import "ascend-local-store/internal/model"

// DefaultCatalog returns a fresh copy of the bundled product list.
func DefaultCatalog() []model.Product {
	products := make([]model.Product, len(defaultProducts))
	copy(products, defaultProducts)
	return products
}

var defaultProducts = []model.Product{
	{
		ID:             1,
		Name:           "ASCEND Classic Tee",
		NameAr:         "تيشيرت ASCEND الكلاسيكي",
		Price:          35.00,
		Category:       "Apparel",
		CategoryAr:     "ملابس",
		Image:          "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "A timeless classic made from 100% organic cotton. Perfect for everyday wear.",
		DescriptionAr:  "قطعة كلاسيكية خالدة مصنوعة من القطن العضوي 100٪. مثالية للارتداء اليومي.",
		Rating:         4.5,
		Brand:          "ASCEND",
		Colors:         []string{"#000000", "#FFFFFF", "#1e3a8a"},
		InStock:        true,
		Slug:           "ascend-classic-tee",
		SEOTitle:       "ASCEND Classic Tee | Premium Organic Cotton",
		SEODescription: "Shop the ASCEND Classic Tee. Made from 100% organic cotton for ultimate comfort and style.",
		VendorID:       1,
	},
	{
		ID:             2,
		Name:           "Urban Explorer Backpack",
		NameAr:         "حقيبة المستكشف الحضري",
		Price:          120.00,
		Category:       "Accessories",
		CategoryAr:     "إكسسوارات",
		Image:          "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Rugged durability meets modern design. Water-resistant with laptop compartment.",
		DescriptionAr:  "متانة قوية تلتقي بالتصميم الحديث. مقاومة للماء مع حجرة للكمبيوتر المحمول.",
		Rating:         4.8,
		Brand:          "NorthFace",
		Colors:         []string{"#333333", "#1e3a8a"},
		InStock:        true,
		Slug:           "urban-explorer-backpack",
		SEOTitle:       "Urban Explorer Backpack | Water Resistant Laptop Bag",
		SEODescription: "The ultimate backpack for city living. Water-resistant, durable, and stylish.",
		VendorID:       2,
	},
	{
		ID:             3,
		Name:           "Minimalist Watch",
		NameAr:         "ساعة بسيطة",
		Price:          189.00,
		Category:       "Accessories",
		CategoryAr:     "إكسسوارات",
		Image:          "https://images.unsplash.com/photo-1524592094714-0f0654e20314?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Elegant simplicity. Swiss movement with a genuine leather strap.",
		DescriptionAr:  "بساطة أنيقة. حركة سويسرية مع حزام جلد أصلي.",
		Rating:         4.7,
		Brand:          "Fossil",
		Colors:         []string{"#000000", "#8B4513"},
		InStock:        true,
		Slug:           "minimalist-watch",
		SEOTitle:       "Minimalist Watch | Swiss Movement Leather Strap",
		SEODescription: "A watch that defines elegance. Swiss movement and genuine leather.",
		VendorID:       3,
	},
	{
		ID:             4,
		Name:           "Studio Headphones",
		NameAr:         "سماعات ستوديو",
		Price:          249.00,
		Category:       "Electronics",
		CategoryAr:     "إلكترونيات",
		Image:          "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Immersive sound quality with active noise cancellation.",
		DescriptionAr:  "جودة صوت غامرة مع إلغاء الضوضاء النشط.",
		Rating:         4.9,
		Brand:          "Sony",
		Colors:         []string{"#000000", "#C0C0C0"},
		InStock:        false,
		Slug:           "studio-headphones",
		SEOTitle:       "Studio Headphones | Noise Cancelling & High Fidelity",
		SEODescription: "Experience sound like never before with our premium Studio Headphones.",
		VendorID:       4,
	},
	{
		ID:             5,
		Name:           "Canvas Sneakers",
		NameAr:         "حذاء قماش",
		Price:          85.00,
		Category:       "Footwear",
		CategoryAr:     "أحذية",
		Image:          "https://images.unsplash.com/photo-1560769629-975e13f0c470?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Low-profile sneakers that go with everything.",
		DescriptionAr:  "أحذية رياضية بسيطة تتناسب مع كل شيء.",
		Rating:         4.4,
		Brand:          "Vans",
		Colors:         []string{"#FFFFFF", "#000000", "#FF0000"},
		InStock:        true,
		Slug:           "canvas-sneakers",
		SEOTitle:       "Classic Canvas Sneakers | Comfortable Everyday Shoes",
		SEODescription: "Versatile and comfortable canvas sneakers for any occasion.",
		VendorID:       5,
	},
	{
		ID:             6,
		Name:           "Ceramic Coffee Set",
		NameAr:         "طقم قهوة سيراميك",
		Price:          45.00,
		Category:       "Home",
		CategoryAr:     "منزل",
		Image:          "https://images.unsplash.com/photo-1517256064527-09c73fc73e38?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Handcrafted ceramic mugs for your morning ritual.",
		DescriptionAr:  "أكواب سيراميك مصنوعة يدوياً لطقوسك الصباحية.",
		Rating:         4.6,
		Brand:          "PotteryBarn",
		Colors:         []string{"#FFFFFF", "#E6E6FA"},
		InStock:        true,
		Slug:           "ceramic-coffee-set",
		SEOTitle:       "Handcrafted Ceramic Coffee Set | Mugs & Saucers",
		SEODescription: "Start your morning right with this beautiful, handcrafted ceramic coffee set.",
		VendorID:       6,
	},
	{
		ID:             7,
		Name:           "Polarized Sunglasses",
		NameAr:         "نظارة شمسية مستقطبة",
		Price:          115.00,
		Category:       "Accessories",
		CategoryAr:     "إكسسوارات",
		Image:          "https://images.unsplash.com/photo-1511499767150-a48a237f0083?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Classic aviator style with UV protection.",
		DescriptionAr:  "نمط طيار كلاسيكي مع حماية من الأشعة فوق البنفسجية.",
		Rating:         4.7,
		Brand:          "RayBan",
		Colors:         []string{"#000000", "#FFD700"},
		InStock:        true,
		Slug:           "polarized-sunglasses",
		SEOTitle:       "Polarized Aviator Sunglasses | UV Protection",
		SEODescription: "Protect your eyes in style with these classic polarized aviator sunglasses.",
		VendorID:       7,
	},
	{
		ID:             8,
		Name:           "Yoga Mat Pro",
		NameAr:         "سجادة يوغا برو",
		Price:          65.00,
		Category:       "Fitness",
		CategoryAr:     "لياقة",
		Image:          "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Description:    "Extra thick anti-slip mat for yoga and pilates.",
		DescriptionAr:  "سجادة سميكة جداً مانعة للانزلاق لليوجا والبيلاتس.",
		Rating:         4.8,
		Brand:          "Lululemon",
		Colors:         []string{"#800080", "#000000"},
		InStock:        true,
		Slug:           "yoga-mat-pro",
		SEOTitle:       "Yoga Mat Pro | Non-Slip Extra Thick Exercise Mat",
		SEODescription: "Achieve perfect balance with the Yoga Mat Pro. Non-slip and extra thick.",
		VendorID:       8,
	},
}
