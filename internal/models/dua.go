package models

// Dua is a supplication entry with Bengali transliteration and meaning.
type Dua struct {
	Title           string `json:"title"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	Meaning         string `json:"meaning"`
	Reference       string `json:"reference"`
	Occasion        string `json:"occasion"`
}

// Hadith is a narration entry shown alongside the duas.
type Hadith struct {
	Arabic    string `json:"arabic"`
	Bangla    string `json:"bangla"`
	Reference string `json:"reference"`
	Category  string `json:"category"`
}
