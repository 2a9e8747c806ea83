package models

// BannerKind classifies a notification banner message.
type BannerKind string

// Banner kinds. The set is closed; screens style messages by kind.
const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
	BannerInfo    BannerKind = "info"
	BannerWarning BannerKind = "warning"
)

// Banner is the single transient status message shown to the user.
// Hiding keeps the last kind and message; Visible alone gates rendering.
type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message"`
	Visible bool       `json:"visible"`
}
