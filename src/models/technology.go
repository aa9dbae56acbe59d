package models

// Technology is a catalog entry (language, framework, tool) that projects can
// link to. The icon image is stored as a blob and served verbatim through its
// own endpoint, so it is excluded from JSON responses.
type Technology struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Image     []byte `json:"-"`
	ImageType string `json:"-"` // content type recorded at upload, e.g. image/png
}
