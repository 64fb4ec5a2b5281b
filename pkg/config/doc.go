// Package config loads environment-based configuration into tagged structs.
//
// A local .env file is loaded once per process unless APP_ENV is set to
// "production", so deployed instances rely exclusively on real environment
// variables. Parsed configurations are cached per struct type; repeated
// Load calls for the same type return the cached value.
//
//	type MailConfig struct {
//		Token string `env:"POSTMARK_SERVER_TOKEN"`
//	}
//
//	var cfg MailConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
