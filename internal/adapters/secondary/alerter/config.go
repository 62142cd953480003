package alerter

type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"`
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID *int64 `envconfig:"MESSAGE_THREAD_ID"`
	// APIURL базовый адрес Bot API, переопределяется для self-hosted сервера
	APIURL string `envconfig:"API_URL" default:"https://api.telegram.org"`
}

// Enabled алерты отправляются только при заданных токене и чате
func (c *Config) Enabled() bool {
	return c != nil && c.BotToken != "" && c.ChatID != 0
}
