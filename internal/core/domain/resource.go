package domain

// WellbeingResource is a curated well-being material (article, video,
// meditation guide, ...) that employees can bookmark.
type WellbeingResource struct {
	ResourceID string `json:"resourceID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Link       string `json:"link"`
}
