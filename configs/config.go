package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	Cart     `mapstructure:"cart"`
	Redis    `mapstructure:"redis"`
	Checkout `mapstructure:"checkout"`
	Line     `mapstructure:"line"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DbName       string `mapstructure:"database"`
	SSLMode      bool   `mapstructure:"sslmode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// Cart struct - where cart snapshots are kept
type Cart struct {
	Storage   string `mapstructure:"storage"` // memory | file | redis
	KeyPrefix string `mapstructure:"key_prefix"`
	FileDir   string `mapstructure:"file_dir"`
	TTLHours  int    `mapstructure:"ttl_hours"`
}

// Redis struct
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Checkout struct
type Checkout struct {
	ShippingFee  float64 `mapstructure:"shipping_fee"`
	TaxRate      float64 `mapstructure:"tax_rate"`
	DeliveryDays int     `mapstructure:"delivery_days"`
}

// Line struct - an empty NotifyTo disables order notifications
type Line struct {
	ChannelToken string `mapstructure:"channel_token"`
	NotifyTo     string `mapstructure:"notify_to"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.port", "9089")
	viper.SetDefault("cart.storage", "memory")
	viper.SetDefault("cart.key_prefix", "cart")
	viper.SetDefault("cart.file_dir", "./data/carts")
	viper.SetDefault("cart.ttl_hours", 168)
	viper.SetDefault("checkout.shipping_fee", 50)
	viper.SetDefault("checkout.tax_rate", 0.1)
	viper.SetDefault("checkout.delivery_days", 4)
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
