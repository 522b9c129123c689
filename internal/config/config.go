package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress     = ":8080"
	DefaultAPIURL         = "http://localhost:3005"
	DefaultOrdersPageSize = 5
	DefaultCookieSecure   = false
	DefaultRequestTimeout = 0

	DefaultStubAddress   = ":3005"
	DefaultPassCost      = 3
	DefaultSecretKey     = "secret"
	DefaultTokenLifetime = 3 * time.Hour
)

// Config - настройки портала участника
type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	APIURL         string        `env:"API_URL"`
	OrdersPageSize int           `env:"ORDERS_PAGE_SIZE"`
	CookieSecure   bool          `env:"COOKIE_SECURE"`
	CookieDomain   string        `env:"COOKIE_DOMAIN"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// StubConfig - настройки локального сервиса отеля
type StubConfig struct {
	RunAddress    string        `env:"STUB_ADDRESS"`
	PassCost      int           `env:"PASS_COST"`
	SecretKey     string        `env:"SECRET_KEY"`
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME"`
	SeedDemo      bool          `env:"SEED_DEMO"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.APIURL, "u", DefaultAPIURL, "Hotel service base URL protocol://hostname:port")
	flag.IntVar(&config.OrdersPageSize, "n", DefaultOrdersPageSize, "Orders shown per page step")
	flag.BoolVar(&config.CookieSecure, "c", DefaultCookieSecure, "Mark session cookies Secure")
	flag.StringVar(&config.CookieDomain, "domain", "", "Session cookie domain")
	flag.DurationVar(&config.RequestTimeout, "t", DefaultRequestTimeout, "Hotel service request timeout (0 = none)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func ReadStub() (StubConfig, error) {
	config := StubConfig{}

	flag.StringVar(&config.RunAddress, "a", DefaultStubAddress, "Server run address")
	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Token lifetime (e.g. 1h, 30m, 2h30m)")
	flag.BoolVar(&config.SeedDemo, "demo", true, "Register the demo member with sample orders")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
