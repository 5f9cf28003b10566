package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	UploadRoot            string `mapstructure:"UPLOAD_ROOT"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogPath               string `mapstructure:"LOG_PATH"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("can't find the file .env: ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("environment can't be loaded: ", err)
	}

	if env.ContextTimeout <= 0 {
		env.ContextTimeout = 10
	}
	if env.UploadRoot == "" {
		env.UploadRoot = "uploads"
	}
	if env.AccessTokenExpiryHour <= 0 {
		env.AccessTokenExpiryHour = 24
	}

	if env.AppEnv == "development" {
		log.Println("the app is running in development env")
	}

	return &env
}
