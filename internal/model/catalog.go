package model

// CatalogRow describes one catalog entry together with the state of its
// library page and box image on disk.
type CatalogRow struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Image     string `json:"image" yaml:"image"` // File name that links reference
	HasImage  bool   `json:"has_image" yaml:"has_image"`
	ImageSize int64  `json:"image_size,omitempty" yaml:"image_size,omitempty"`
	HasPage   bool   `json:"has_page" yaml:"has_page"`
}
