package internal

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the hub's environment configuration. Everything unrelated
// to the aggregation layer (backend endpoints, UI settings) stays with
// the collaborators that own it.
type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR"`

	// Demo credentials for the loopback backends; a real deployment
	// seeds the secret store out of band instead.
	TeamChatToken  string `env:"TEAMCHAT_TOKEN"`
	VoiceChatToken string `env:"VOICECHAT_TOKEN"`

	// PairPresence is environment-derived, not credentialed.
	PairPresenceAvailable bool `env:"PAIRPRESENCE_AVAILABLE"`
}

// Validate applies the struct rules after go-env unmarshalling.
func (c Config) Validate() error {
	return validate.Struct(c)
}
