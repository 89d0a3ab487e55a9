package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	httpapi "github.com/oredafashion/oreda-manager/internal/api/http"
	"github.com/oredafashion/oreda-manager/internal/report"
	"github.com/oredafashion/oreda-manager/internal/scheduler"
	"github.com/oredafashion/oreda-manager/internal/store"
	"github.com/oredafashion/oreda-manager/log"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Report    report.Config    `mapstructure:"report"`
	Scheduler scheduler.Config `mapstructure:"scheduler"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file
// values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/oreda-manager")
		viper.AddConfigPath("/etc/oreda-manager")
		_ = viper.ReadInConfig()
	}

	config := Config{
		Report:    report.DefaultConfig(),
		Scheduler: scheduler.DefaultConfig(),
	}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys so flat names
// like MYSQL_DSN work alongside the nested MYSQL__DSN form.
func bindEnvVars() {
	// MySQL. An empty DSN selects the in-memory store.
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")

	// Report
	viper.BindEnv("report.low_stock_threshold", "REPORT_LOW_STOCK_THRESHOLD")
	viper.BindEnv("report.best_sellers_limit", "REPORT_BEST_SELLERS_LIMIT")
	viper.BindEnv("report.top_products_limit", "REPORT_TOP_PRODUCTS_LIMIT")
	viper.BindEnv("report.recent_sales_limit", "REPORT_RECENT_SALES_LIMIT")
	viper.BindEnv("report.sample_backfill", "REPORT_SAMPLE_BACKFILL")
	viper.BindEnv("report.sample_data_days", "REPORT_SAMPLE_DATA_DAYS")

	// Scheduler
	viper.BindEnv("scheduler.chart_throttle", "SCHEDULER_CHART_THROTTLE")
	viper.BindEnv("scheduler.resize_debounce", "SCHEDULER_RESIZE_DEBOUNCE")
	viper.BindEnv("scheduler.scroll_quiet", "SCHEDULER_SCROLL_QUIET")
	viper.BindEnv("scheduler.filter_debounce", "SCHEDULER_FILTER_DEBOUNCE")
	viper.BindEnv("scheduler.significant_resize", "SCHEDULER_SIGNIFICANT_RESIZE")
	viper.BindEnv("scheduler.refresh_interval", "SCHEDULER_REFRESH_INTERVAL")
}
