package config

import (
	"errors"
	"fmt"
	"reflect"

	"maersk-tracker/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`

	// Portal holds the tracking portal configuration.
	Portal PortalConfig `mapstructure:",squash"`

	// Output holds the filesystem layout for logs and artifacts.
	Output OutputConfig `mapstructure:",squash"`

	// Proxy holds the optional forward-proxy configuration for the browser.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// PortalConfig holds the tracking portal and browser behavior settings.
type PortalConfig struct {
	// URL is the tracking portal entry page.
	URL string `mapstructure:"PORTAL_URL" default:"https://www.maersk.com/mymaersk-scm-track/"`
	// Headless runs the browser without a visible window.
	Headless bool `mapstructure:"HEADLESS" default:"true"`
	// UserAgent is the fixed browser user agent string.
	UserAgent string `mapstructure:"USER_AGENT" default:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	// WaitTimeoutSeconds is the default bound for element and navigation waits.
	WaitTimeoutSeconds int `mapstructure:"WAIT_TIMEOUT_SECONDS" default:"30"`
	// NavigationSettleSeconds is the pause after the portal page loads.
	NavigationSettleSeconds int `mapstructure:"NAVIGATION_SETTLE_SECONDS" default:"3"`
	// ItemDelaySeconds is the fixed pacing pause between identifiers.
	ItemDelaySeconds int `mapstructure:"ITEM_DELAY_SECONDS" default:"3"`
}

// OutputConfig holds the output directory layout, relative to the working
// directory.
type OutputConfig struct {
	// LogDir receives one timestamped run log per execution.
	LogDir string `mapstructure:"LOG_DIR" default:"logs"`
	// ResultsDir receives the summary reports and text fallback artifacts.
	ResultsDir string `mapstructure:"RESULTS_DIR" default:"results"`
	// PDFDir receives the per-identifier PDF artifacts.
	PDFDir string `mapstructure:"PDF_DIR" default:"results/pdfs"`
}

// ProxyConfig holds forward-proxy connection details for the browser.
type ProxyConfig struct {
	// Enabled toggles proxy usage.
	Enabled bool `mapstructure:"PROXY_ENABLED" default:"false"`
	// Hostname is the proxy server hostname.
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	// Port is the proxy server port.
	Port int `mapstructure:"PROXY_PORT"`
	// Username is the proxy auth user.
	Username string `mapstructure:"PROXY_USERNAME"`
	// Password is the proxy auth password.
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Settings converts the proxy configuration into browser proxy settings.
func (p ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  p.Enabled,
		Hostname: p.Hostname,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
	}
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
