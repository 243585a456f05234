package delivery

// Config holds delivery provider configuration. Provider-specific fields
// are optional so the dev deliverer works with a zero value.
type Config struct {
	LabelPrefix string `env:"MAIL_LABEL_PREFIX" envDefault:"Agent-Sent"`

	// Postmark
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL"`

	// Gmail OAuth
	GoogleClientFile string `env:"GOOGLE_OAUTH_CLIENT_FILE" envDefault:".secrets/google/credentials.json"`
	GoogleTokenFile  string `env:"GOOGLE_OAUTH_USER_FILE" envDefault:".secrets/google/token.json"`

	// Dev
	DevOutputDir string `env:"MAIL_DEV_OUTPUT_DIR" envDefault:"./email-output"`
}
