package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	DatabaseURL string

	// Braintree credentials. Environment is "sandbox" or "production".
	BraintreeEnvironment       string
	BraintreeMerchantID        string
	BraintreePublicKey         string
	BraintreePrivateKey        string
	BraintreeMerchantAccountID string
	BraintreeTimeout           string

	// Dynamic descriptor defaults shown on cardholder statements
	DescriptorName  string
	DescriptorPhone string
	DescriptorURL   string

	VerifyCards                  string
	FailOnDuplicatePaymentMethod string

	LogLevel  string
	LogFormat string

	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
}

// envVar describes how a Config field is read from the environment.
type envVar struct {
	name     string
	envVar   string
	display  string
	required bool
}

var envVars = []envVar{
	{"DatabaseURL", "DATABASE_URL", "Database URL", true},
	{"BraintreeEnvironment", "BRAINTREE_ENVIRONMENT", "Braintree Environment", true},
	{"BraintreeMerchantID", "BRAINTREE_MERCHANT_ID", "Braintree Merchant ID", true},
	{"BraintreePublicKey", "BRAINTREE_PUBLIC_KEY", "Braintree Public Key", true},
	{"BraintreePrivateKey", "BRAINTREE_PRIVATE_KEY", "Braintree Private Key", true},
	{"BraintreeMerchantAccountID", "BRAINTREE_MERCHANT_ACCOUNT_ID", "Braintree Merchant Account ID", false},
	{"BraintreeTimeout", "BRAINTREE_TIMEOUT", "Braintree Timeout", false},
	{"DescriptorName", "DESCRIPTOR_NAME", "Descriptor Name", false},
	{"DescriptorPhone", "DESCRIPTOR_PHONE", "Descriptor Phone", false},
	{"DescriptorURL", "DESCRIPTOR_URL", "Descriptor URL", false},
	{"VerifyCards", "VERIFY_CARDS", "Verify Cards", false},
	{"FailOnDuplicatePaymentMethod", "FAIL_ON_DUPLICATE_PAYMENT_METHOD", "Fail On Duplicate Payment Method", false},
	{"LogLevel", "LOG_LEVEL", "Log Level", false},
	{"LogFormat", "LOG_FORMAT", "Log Format", false},
	// Optional integration base URL for remote tests
	{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
	// Optional server ports
	{"HTTPPort", "PORT", "HTTP Port", false},
	{"GRPCPort", "GRPC_PORT", "gRPC Port", false},
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return fromEnv()
}

// loadDotEnv loads the nearest .env file from the current directory or its parents.
func loadDotEnv() error {
	currentDir, _ := os.Getwd()
	for currentDir != "/" && currentDir != "." {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("failed to load .env file: %v", err)
			}
			return nil
		}
		currentDir = filepath.Dir(currentDir)
	}
	return nil
}

func fromEnv() (*Config, error) {
	config := &Config{}
	for _, v := range envVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	switch config.BraintreeEnvironment {
	case "sandbox", "production", "development":
	default:
		return nil, fmt.Errorf("unsupported Braintree environment: %q", config.BraintreeEnvironment)
	}

	// Defaults
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.GRPCPort == "" {
		config.GRPCPort = "50051"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "json"
	}
	if config.BraintreeTimeout == "" {
		config.BraintreeTimeout = "30s"
	}
	if _, err := time.ParseDuration(config.BraintreeTimeout); err != nil {
		return nil, fmt.Errorf("invalid BRAINTREE_TIMEOUT %q: %w", config.BraintreeTimeout, err)
	}
	if config.VerifyCards == "" {
		config.VerifyCards = "true"
	}
	if config.FailOnDuplicatePaymentMethod == "" {
		config.FailOnDuplicatePaymentMethod = "false"
	}
	for _, b := range []string{config.VerifyCards, config.FailOnDuplicatePaymentMethod} {
		if _, err := strconv.ParseBool(b); err != nil {
			return nil, fmt.Errorf("invalid boolean setting %q: %w", b, err)
		}
	}

	return config, nil
}

// Timeout returns the per-call Braintree timeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.BraintreeTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// VerifyCardsEnabled reports whether new cards are verified on vaulting.
func (c *Config) VerifyCardsEnabled() bool {
	b, _ := strconv.ParseBool(c.VerifyCards)
	return b
}

// FailOnDuplicate reports whether vaulting a duplicate card fails.
func (c *Config) FailOnDuplicate() bool {
	b, _ := strconv.ParseBool(c.FailOnDuplicatePaymentMethod)
	return b
}
