package flags

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	LogFormat = "log-format"
	LogLevel  = "log-level"
	LogSource = "log-source"
)

func init() {
	viper.SetDefault(LogFormat, "text")
	viper.SetDefault(LogLevel, "INFO")
	viper.SetDefault(LogSource, false)

	viper.SetEnvPrefix("autoclear")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}
