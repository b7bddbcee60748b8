package system

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	AssetRoot    string
	Mode         string
	LogDir       string
	LogLevel     string
	MaxBodyBytes int64
	LoadTimeout  time.Duration
}

var config *Config

// Init (re)reads configuration from the environment. main calls it once after
// godotenv; tests call it again after tweaking env vars.
func Init() {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ASSET_ROOT", "./spritesheets")
	viper.SetDefault("MODE", "debug")
	viper.SetDefault("LOG_DIR", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_BODY_BYTES", 1<<20)
	viper.SetDefault("LOAD_TIMEOUT_SECONDS", 30)

	config = &Config{
		Port:         viper.GetString("PORT"),
		AssetRoot:    viper.GetString("ASSET_ROOT"),
		Mode:         viper.GetString("MODE"),
		LogDir:       viper.GetString("LOG_DIR"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
		MaxBodyBytes: viper.GetInt64("MAX_BODY_BYTES"),
		LoadTimeout:  time.Duration(viper.GetInt("LOAD_TIMEOUT_SECONDS")) * time.Second,
	}
}

func GetConfig() *Config {
	if config == nil {
		Init()
	}
	return config
}

func IsRelease() bool {
	return GetConfig().Mode == "release"
}
