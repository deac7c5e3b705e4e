// api/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server   ServerConfiguration
	Postgres PostgresConfiguration
	Redis    RedisConfiguration
	Proven   ProvenConfiguration
	Bridge   BridgeConfiguration
	Access   AccessConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// PostgresConfiguration stores data for the access-request database
type PostgresConfiguration struct {
	URI string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr string
}

// ProvenConfiguration stores credentials for the GetProven deals API
type ProvenConfiguration struct {
	BaseURL string
	APIKey  string
}

// BridgeConfiguration stores the endpoint of the Bridge network API
type BridgeConfiguration struct {
	BaseURL string
}

// AccessConfiguration stores the knobs of the access-resolution engine
type AccessConfiguration struct {
	WhitelistTTL    time.Duration
	PortfolioTTL    time.Duration
	RecheckInterval time.Duration
	CookieName      string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("postgres.uri", "postgres://localhost:5432/perks")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("proven.baseURL", "https://api.getproven.com/v1")
	viper.SetDefault("proven.defaultProviderId", "")
	viper.SetDefault("bridge.baseURL", "https://api.bridge.xyz")
	viper.SetDefault("access.whitelistTTL", "5m")
	viper.SetDefault("access.portfolioTTL", "15m")
	viper.SetDefault("access.recheckInterval", "1h")
	viper.SetDefault("access.cookieName", "perks_access")
	viper.SetDefault("access.cookieMaxAge", "24h")
	viper.SetDefault("access.portfolioPageSize", 100)
	viper.SetDefault("access.portfolioMaxPages", 50)
	viper.SetDefault("admin.emails", []string{})
	viper.SetDefault("admin.domains", []string{})
	viper.SetDefault("personalEmail.domains", []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com", "aol.com",
	})
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice retrieves a string-slice value from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
