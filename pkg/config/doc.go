// Package config loads typed configuration structs from environment
// variables, with an optional .env file picked up once per process.
//
// Configuration structs declare their variables with `env` tags:
//
//	type Settings struct {
//	    DefaultAction string `env:"MAIL_DEFAULT_ACTION" envDefault:"draft"`
//	    LabelPrefix   string `env:"MAIL_LABEL_PREFIX" envDefault:"Agent-Sent"`
//	}
//
//	var settings Settings
//	config.MustLoad(&settings)
package config
