package foodist

// StoreConfig selects where the recipe collection lives. When S3Bucket is
// set the collection is read from and written to S3, otherwise from the
// local JSON file.
type StoreConfig struct {
	RecipesPath string `env:"FOODIST_RECIPES_PATH,default=data/recipes.json"`
	S3Bucket    string `env:"FOODIST_S3_BUCKET"`
	S3Key       string `env:"FOODIST_S3_RECIPES_KEY,default=recipes.json"`
	ParseLogDir string `env:"FOODIST_PARSE_LOG_DIR,default=logs"`
}

// UsesS3 reports whether the collection is stored in S3.
func (c StoreConfig) UsesS3() bool { return c.S3Bucket != "" }

type ShareConfig struct {
	WebhookURL string `env:"FOODIST_SHARE_WEBHOOK_URL"`
	Channel    string `env:"FOODIST_SHARE_CHANNEL,default=#recipes"`
}
