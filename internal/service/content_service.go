package service

import "github.com/rahat-dev/ramadan-times-api/internal/models"

// ContentService serves the static marketing and religious content: the
// website package catalog, the duas and the hadith rotation. The data is
// compiled in; there is no write path.
type ContentService struct {
	offers       []models.Offer
	duas         []models.Dua
	hadiths      []models.Hadith
	websiteTypes []string
}

// NewContentService constructs the service with the built-in catalog.
func NewContentService() *ContentService {
	return &ContentService{
		offers:       offerCatalog,
		duas:         duaEntries,
		hadiths:      hadithEntries,
		websiteTypes: websiteTypeOptions,
	}
}

// Offers lists the website packages.
func (s *ContentService) Offers() []models.Offer {
	return s.offers
}

// Duas lists the supplication entries.
func (s *ContentService) Duas() []models.Dua {
	return s.duas
}

// Hadiths lists the narration entries.
func (s *ContentService) Hadiths() []models.Hadith {
	return s.hadiths
}

// WebsiteTypes lists the options offered by the contact form.
func (s *ContentService) WebsiteTypes() []string {
	return s.websiteTypes
}

var offerCatalog = []models.Offer{
	{
		Title:         "E-commerce Website",
		Features:      []string{"Online Store", "Payment Gateway", "Admin Panel", "Unlimited Products"},
		OriginalPrice: "৳25,000",
		OfferPrice:    "৳12,500",
		Badge:         "Most Popular",
	},
	{
		Title:         "Business Website",
		Features:      []string{"5 Pages", "Contact Form", "SEO Optimization", "Mobile Responsive"},
		OriginalPrice: "৳15,000",
		OfferPrice:    "৳7,500",
		Badge:         "Best Value",
	},
	{
		Title:         "Portfolio Website",
		Features:      []string{"Personal Branding", "Project Gallery", "Resume Download", "Contact Section"},
		OriginalPrice: "৳10,000",
		OfferPrice:    "৳5,000",
		Badge:         "Starter",
	},
	{
		Title:         "Blog / News Portal",
		Features:      []string{"CMS Integration", "AdSense Ready", "User Comments", "Newsletter"},
		OriginalPrice: "৳20,000",
		OfferPrice:    "৳10,000",
		Badge:         "Professional",
	},
}

var duaEntries = []models.Dua{
	{
		Title:           "ইফতারের দোয়া",
		Arabic:          "بِسْمِ اللَّهِ — الْحَمْدُ لِلَّهِ",
		Transliteration: "বিসমিল্লাহ — আলহামদুলিল্লাহ",
		Meaning:         "খাওয়ার শুরুতে ‘বিসমিল্লাহ’ বলবো এবং খাওয়ার শেষে ‘আলহামদুলিল্লাহ’ বলবো।",
		Reference:       "সহীহ বুখারি, সহীহ মুসলিম",
		Occasion:        "ইফতারের সময়ের সুন্নাহ",
	},
}

var hadithEntries = []models.Hadith{
	{
		Arabic:    "لِلصَّائِمِ فَرْحَتَانِ: فَرْحَةٌ عِنْدَ فِطْرِهِ، وَفَرْحَةٌ عِنْدَ لِقَاءِ رَبِّهِ",
		Bangla:    "রোজাদারের জন্য দুইটি আনন্দ রয়েছে: একটি ইফতারের সময় এবং অন্যটি তার রবের সাক্ষাতে।",
		Reference: "সহীহ বুখারী ১৯০৪",
		Category:  "রোজার মর্যাদা",
	},
	{
		Arabic:    "مَنْ صَامَ رَمَضَانَ إِيمَانًا وَاحْتِسَابًا غُفِرَ لَهُ مَا تَقَدَّمَ مِنْ ذَنْبِهِ",
		Bangla:    "যে ব্যক্তি ঈমানের সাথে সওয়াবের আশায় রমযানের রোযা রাখে, তার পূর্ববর্তী গুনাহ ক্ষমা করে দেয়া হয়।",
		Reference: "সহীহ বুখারী ৩৮",
		Category:  "রমজানের ফজিলত",
	},
}

var websiteTypeOptions = []string{
	"Business Website",
	"E-commerce Store",
	"Portfolio",
	"Blog/News Portal",
	"Hotel Website",
	"Hotel Management System",
	"Restaurant Website",
	"School/Coaching",
	"Real Estate",
	"Doctor/Clinic",
	"Landing Page",
	"Other",
}
