package cfg

type Cfg struct {
	// CMS configuration
	CMSBaseUrl   string
	FetchTimeout int
	FetchRetries int
	FallbackMode string

	// Application configuration
	Port            string
	WorkerCount     int
	RefreshInterval int
	APIAccessKey    string

	// Chat configuration
	LLMBaseUrl     string
	LLMAPIKey      string
	ChatModel      string
	ChatMaxTokens  int
	ChatRatePerMin int

	// Search configuration
	DebounceMs int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
