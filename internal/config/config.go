package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyCountry, "fr")
	viper.SetDefault(KeyLanguage, "fr-FR")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyScrapeTimeout, "30s")
	viper.SetDefault(KeyUploadDelay, "3s")
	viper.SetDefault(KeyUserAgent,
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault(KeyCookidooClientID, "kupferwerk-client-nwot")
	viper.SetDefault(KeyHistoryDebug, false)
}

func Email() string                 { return viper.GetString(KeyEmail) }
func Password() string              { return viper.GetString(KeyPassword) }
func Country() string               { return viper.GetString(KeyCountry) }
func Language() string              { return viper.GetString(KeyLanguage) }
func LogLevel() string              { return viper.GetString(KeyLogLevel) }
func HistoryDSN() string            { return viper.GetString(KeyHistoryDSN) }
func HistoryDebug() bool            { return viper.GetBool(KeyHistoryDebug) }
func ScrapeTimeout() time.Duration  { return viper.GetDuration(KeyScrapeTimeout) }
func UploadDelay() time.Duration    { return viper.GetDuration(KeyUploadDelay) }
func ScrapeUserAgent() string       { return viper.GetString(KeyUserAgent) }
func CookidooClientID() string      { return viper.GetString(KeyCookidooClientID) }
