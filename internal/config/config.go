package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from an app.env file or environment variables.
type Config struct {
	DBDriver              string `mapstructure:"DB_DRIVER"`
	DBSource              string `mapstructure:"DB_SOURCE"`
	DBMaxOpenConns        int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns        int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ElasticSearchAddress  string `mapstructure:"ELASTICSEARCH_ADDRESS"`
	RedisAddress          string `mapstructure:"REDIS_ADDRESS"`
	ReconcileSchedule     string `mapstructure:"RECONCILE_SCHEDULE"`
	CandidateOnQueryError string `mapstructure:"CANDIDATE_ON_QUERY_ERROR"`
	JobOnQueryError       string `mapstructure:"JOB_ON_QUERY_ERROR"`
}

// LoadConfig reads configuration from the file in path or from environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("RECONCILE_SCHEDULE", "@every 6h")
	viper.SetDefault("CANDIDATE_ON_QUERY_ERROR", "fail_open")
	viper.SetDefault("JOB_ON_QUERY_ERROR", "fail_closed")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
