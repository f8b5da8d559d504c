package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the catalog server.
type Config struct {
	Addr string
}

// Load reads settings from the environment, after loading a .env file when
// one is present. PORT defaults to 8080.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.AutomaticEnv()

	return Config{
		Addr: ":" + v.GetString("PORT"),
	}
}
