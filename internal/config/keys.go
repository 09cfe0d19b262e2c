package config

const (
	KeyEmail            = "cookidoo_email"
	KeyPassword         = "cookidoo_password"
	KeyCountry          = "cookidoo_country"
	KeyLanguage         = "cookidoo_language"
	KeyLogLevel         = "log_level"
	KeyHistoryDSN       = "history_dsn"
	KeyHistoryDebug     = "history_debug"
	KeyScrapeTimeout    = "scrape_timeout"
	KeyUploadDelay      = "upload_propagation_delay"
	KeyUserAgent        = "scrape_user_agent"
	KeyCookidooClientID = "cookidoo_client_id"
)
