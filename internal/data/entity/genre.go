package entity

type Genre struct {
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	HeroImage   string `json:"hero_image"`
}

// CollectionMetadata describes a curated collection page (title, blurb and the
// hero banner shown above the listing). Keyed by category key, e.g. "populares".
type CollectionMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HeroImage   string `json:"hero_image"`
}
