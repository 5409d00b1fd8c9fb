package entity

type ContentKind string

const (
	KindMovie  ContentKind = "movie"
	KindSeries ContentKind = "series"
)

type Episode struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
}

type Season struct {
	Number   int       `json:"number"`
	Episodes []Episode `json:"episodes"`
}

// Content is a movie or series record in the catalog. Records are immutable
// after the store is seeded.
type Content struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Rating      float64     `json:"rating"`
	Poster      string      `json:"poster"`
	Description string      `json:"description"`
	Year        int         `json:"year"`
	Duration    string      `json:"duration"`
	Genres      []string    `json:"genres"`
	Backdrop    string      `json:"backdrop"`
	Kind        ContentKind `json:"kind"`
	TrailerURL  *string     `json:"trailer_url,omitempty"`
	Seasons     []Season    `json:"seasons,omitempty"`
	VideoURL    *string     `json:"video_url,omitempty"`
}
