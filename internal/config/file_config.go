package config

// FileRules bounds what each upload slot accepts. Photos end up in the
// public area; everything else is served only to the owner or staff.
type FileRules struct {
	MaxSize      int64
	StoragePath  string
	AllowedTypes map[string][]string // upload kind -> MIME types
}

var UploadRules = FileRules{
	MaxSize:     10 * 1024 * 1024,
	StoragePath: "./uploads",
	AllowedTypes: map[string][]string{
		"photo":           {"image/jpeg", "image/png", "image/webp"},
		"identity_doc":    {"image/jpeg", "image/png", "application/pdf"},
		"criminal_record": {"image/jpeg", "image/png", "application/pdf"},
		"diplomas":        {"image/jpeg", "image/png", "application/pdf"},
		"article_image":   {"image/jpeg", "image/png", "image/webp"},
	},
}

func initUploadRules(cfg *Config) {
	UploadRules.MaxSize = cfg.Upload.MaxSize
	UploadRules.StoragePath = cfg.Storage.BasePath
}
