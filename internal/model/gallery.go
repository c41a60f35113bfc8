package model

// GalleryPhoto фотография галереи; URL может быть data-URI с base64
type GalleryPhoto struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Caption     string `json:"caption"`
	TargetClass string `json:"targetClass,omitempty"`
}
