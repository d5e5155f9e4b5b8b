package config

// Config holds all configuration for the application.
type Config struct {
	DBName      string
	Port        string
	LogLevel    string
	Slack       SlackConfig
	Turso       TursoConfig
	ProjectID   string
	MaxUploadMB int64
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SlackEnabled reports whether notifications can be posted.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}

// MaxUploadBytes is the upload size limit in bytes. An unset limit falls
// back to the default.
func (c Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return defaultMaxUploadMB << 20
	}
	return c.MaxUploadMB << 20
}
