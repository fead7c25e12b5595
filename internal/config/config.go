package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
	Assumptions AssumptionsConfig `yaml:"assumptions" mapstructure:"assumptions"`
	Batch       BatchConfig       `yaml:"batch" mapstructure:"batch"`
}

// StoreConfig configures the database backend. The pool sizes apply to the
// postgres driver only; zero means the driver default.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
	// SimulateRPS caps simulation requests per second; the simulator is the
	// most expensive endpoint.
	SimulateRPS float64 `yaml:"simulate_rps" mapstructure:"simulate_rps"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// AssumptionsConfig carries the projection defaults applied when a plan or
// simulation request leaves a rate unset.
type AssumptionsConfig struct {
	SalesGrowthRatePct  float64 `yaml:"sales_growth_rate_pct" mapstructure:"sales_growth_rate_pct"`
	CostOfSalesRatioPct float64 `yaml:"cost_of_sales_ratio_pct" mapstructure:"cost_of_sales_ratio_pct"`
	SGARatioPct         float64 `yaml:"sga_ratio_pct" mapstructure:"sga_ratio_pct"`
	TaxRate             float64 `yaml:"tax_rate" mapstructure:"tax_rate"`
	TargetEquityRatio   float64 `yaml:"target_equity_ratio" mapstructure:"target_equity_ratio"`
	CollateralRatio     float64 `yaml:"collateral_ratio" mapstructure:"collateral_ratio"`
	DiscountRatePct     float64 `yaml:"discount_rate_pct" mapstructure:"discount_rate_pct"`
}

// BatchConfig configures multi-company batch analysis.
type BatchConfig struct {
	MaxConcurrentCompanies int `yaml:"max_concurrent_companies" mapstructure:"max_concurrent_companies"`
}

// Validate checks the fields a command mode depends on and reports every
// problem at once.
func (c *Config) Validate(mode string) error {
	var problems []string

	checkCommon := func() {
		if c.Batch.MaxConcurrentCompanies < 1 || c.Batch.MaxConcurrentCompanies > 50 {
			problems = append(problems, "batch.max_concurrent_companies must be between 1 and 50")
		}
		if c.Assumptions.TaxRate < 0 || c.Assumptions.TaxRate >= 1 {
			problems = append(problems, "assumptions.tax_rate must be in [0, 1)")
		}
		if c.Assumptions.CostOfSalesRatioPct < 0 || c.Assumptions.CostOfSalesRatioPct > 100 {
			problems = append(problems, "assumptions.cost_of_sales_ratio_pct must be between 0 and 100")
		}
	}

	switch mode {
	case "store":
		checkCommon()
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required")
		}
	case "serve":
		checkCommon()
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required")
		}
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Server.SimulateRPS <= 0 {
			problems = append(problems, "server.simulate_rps must be > 0")
		}
	case "analyze":
		checkCommon()
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FINPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "finplan.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.simulate_rps", 10)
	v.SetDefault("batch.max_concurrent_companies", 5)
	v.SetDefault("assumptions.sales_growth_rate_pct", 5.0)
	v.SetDefault("assumptions.cost_of_sales_ratio_pct", 70.0)
	v.SetDefault("assumptions.sga_ratio_pct", 20.0)
	v.SetDefault("assumptions.tax_rate", 0.30)
	v.SetDefault("assumptions.target_equity_ratio", 30.0)
	v.SetDefault("assumptions.collateral_ratio", 0.70)
	v.SetDefault("assumptions.discount_rate_pct", 5.0)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
