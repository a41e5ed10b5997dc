// Package config provides configuration management for the Przelewy24 payment service.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"sync"
)

// Config holds all configuration for the Przelewy24 payment service.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug    bool  `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	LogRecords int64 `yaml:"log_records" env:"LOG_RECORDS" env-default:"0"`
	Listen     struct {
		Type     string `yaml:"type" env:"LISTEN_TYPE" env-default:"port"`
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5200"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:""`
	} `yaml:"mongo"`
	// Przelewy24 merchant account credentials. MerchantId/ClientId and
	// SecretId/ReportKey are legacy alias pairs: older deployments configured
	// client_id and report_key, newer ones merchant_id and secret_id. Both are
	// read and the settings resolver takes whichever is present.
	Przelewy24 struct {
		MerchantId      int    `yaml:"merchant_id" env:"P24_MERCHANT_ID" env-default:"0"`
		ClientId        int    `yaml:"client_id" env:"P24_CLIENT_ID" env-default:"0"`
		PosId           int    `yaml:"pos_id" env:"P24_POS_ID" env-default:"0"`
		Crc             string `yaml:"crc" env:"P24_CRC" env-default:""`
		ReportKey       string `yaml:"report_key" env:"P24_REPORT_KEY" env-default:""`
		SecretId        string `yaml:"secret_id" env:"P24_SECRET_ID" env-default:""`
		ApiUrl          string `yaml:"api_url" env:"P24_API_URL" env-default:""`
		SandboxFallback string `yaml:"sandbox_fallback" env:"P24_SANDBOX_FALLBACK" env-default:""`
		TimeoutSeconds  int    `yaml:"timeout_seconds" env:"P24_TIMEOUT_SECONDS" env-default:"30"`
	} `yaml:"przelewy24"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// Configuration values can be overridden by environment variables.
// This function uses a singleton pattern and only loads the config once.
//
// Environment variables take precedence over YAML values. See Config struct
// for the list of supported environment variables.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("load config: %w; %s", err, desc)
			instance = nil
		}
	})
	return instance, err
}
