package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/joepikowski/criteo-api-go-client/pkg/criteo"
	"github.com/joepikowski/criteo-api-go-client/pkg/criteoclient"
)

// Output format constants.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// CreateClient builds an API client from the resolved configuration.
// Credentials come from flags, environment variables, or the config file,
// in that order of precedence.
func CreateClient() (criteo.Client, error) {
	config := &criteo.Config{
		Endpoint:     viper.GetString("endpoint"),
		Version:      viper.GetString("api_version"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		AccessToken:  viper.GetString("token"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewStderrLogger()
	}

	return criteoclient.New(context.Background(), config)
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(data)
}
