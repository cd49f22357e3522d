package cfg

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// The remote inference service token can be set in 2 ways:
//
//  1. Via YAML config file under $HOME/.har2openapi/credentials.yaml:
//
//     ```yaml
//     default:
//       inference_token: tok_6NiejyYEVpWfziUXJgovV6
//     ```
//
//  2. Via the environment variable `HAR2OPENAPI_INFERENCE_TOKEN`.
var creds = viper.New()

const credsFileName = "credentials"

func initCreds() {
	creds.SetConfigName(credsFileName)
	creds.AddConfigPath(GetCfgDir())
	// Missing file is fine; the token is optional.
	_ = creds.ReadInConfig()
}

// GetInferenceServiceToken returns the bearer token for the remote inference
// service, or empty when none is configured.
func GetInferenceServiceToken() string {
	if tok := os.Getenv("HAR2OPENAPI_INFERENCE_TOKEN"); tok != "" {
		return tok
	}
	initCreds()
	return creds.GetString("default.inference_token")
}

// GetCredentialsConfigPath is exposed for error messages.
func GetCredentialsConfigPath() string {
	return filepath.Join(GetCfgDir(), credsFileName+".yaml")
}
