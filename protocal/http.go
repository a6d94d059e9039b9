package protocal

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"storefront/configs"
	httpAdapter "storefront/internal/adapters/input/http"
	fileAdapter "storefront/internal/adapters/output/file"
	lineAdapter "storefront/internal/adapters/output/line"
	"storefront/internal/adapters/output/memory"
	"storefront/internal/adapters/output/postgres"
	redisAdapter "storefront/internal/adapters/output/redis"
	"storefront/internal/application"
	"storefront/internal/domain"
	"storefront/internal/ports/output"
	"storefront/pkg/database_driver/gorm"
	redisDriver "storefront/pkg/database_driver/redis"
	"storefront/pkg/metrics"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	setupLogger(conf.App)
	logrus.Info(conf.App.Env)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	app.Use(metrics.Middleware())

	dbConGorm, err := gorm.ConnectToPostgreSQL(
		conf.Postgres.Host,
		conf.Postgres.Port,
		conf.Postgres.Username,
		conf.Postgres.Password,
		conf.Postgres.DbName,
		conf.Postgres.SSLMode,
		gorm.PoolConfig{
			MaxIdleConns:    conf.Postgres.MaxIdleConns,
			MaxOpenConns:    conf.Postgres.MaxOpenConns,
			ConnMaxLifetime: 2 * time.Hour,
		},
	)
	if err != nil {
		return err
	}
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbConGorm.Postgres)

	storage, closeStorage, err := newSnapshotStorage(conf.Cart, conf.Redis)
	if err != nil {
		return err
	}

	// Wire up the hexagonal architecture layers
	// Output adapters (repositories, storage, notifier)
	productRepo := postgres.NewProductRepository(dbConGorm.Postgres)
	orderRepo := postgres.NewOrderRepository(dbConGorm.Postgres)
	var notifier output.OrderNotifier
	if conf.Line.NotifyTo != "" {
		lineNotifier, err := lineAdapter.NewOrderNotifier(conf.Line.ChannelToken, conf.Line.NotifyTo)
		if err != nil {
			logrus.Warnf("Order notifications disabled: %v", err)
		} else {
			notifier = lineNotifier
		}
	}

	// Application services (use cases)
	catalogSrv := application.NewCatalogService(productRepo)
	cartSrv := application.NewCartService(storage, productRepo, conf.Cart.KeyPrefix, recordCartEvent)
	orderSrv := application.NewOrderService(cartSrv, orderRepo, notifier, checkoutPricing(conf.Checkout))
	stopExpiry := startCartExpiry(cartSrv, time.Duration(conf.Cart.TTLHours)*time.Hour)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			stopExpiry()
			closeStorage()
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(catalogSrv, cartSrv, orderSrv, dbConGorm.Postgres)
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	hdl.RegisterRoutes(app)

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}

func setupLogger(app configs.App) {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if app.Env != "" && app.Env != "local" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// newSnapshotStorage builds the cart storage named by cfg.Storage and a func releasing it
func newSnapshotStorage(cfg configs.Cart, redisCfg configs.Redis) (output.SnapshotStorage, func(), error) {
	ttl := time.Duration(cfg.TTLHours) * time.Hour
	noop := func() {}

	switch cfg.Storage {
	case "", "memory":
		logrus.Warn("Cart snapshots are kept in memory and are lost on restart")
		return memory.NewSnapshotStorage(ttl), noop, nil
	case "file":
		storage, err := fileAdapter.NewSnapshotStorage(afero.NewOsFs(), cfg.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return storage, noop, nil
	case "redis":
		client, err := redisDriver.ConnectToRedis(redisCfg.Addr, redisCfg.Password, redisCfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return redisAdapter.NewSnapshotStorage(client, ttl), func() { redisDriver.DisconnectRedis(client) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cart storage %q", cfg.Storage)
	}
}

// startCartExpiry periodically expires carts idle for longer than ttl.
// A zero ttl keeps carts forever. The returned func stops the sweep.
func startCartExpiry(carts *application.CartService, ttl time.Duration) func() {
	if ttl <= 0 {
		return func() {}
	}
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				carts.ExpireIdle(ctx, ttl)
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(cancel) }
}

func recordCartEvent(event application.CartEvent) {
	metrics.RecordCartMutation(string(event.Operation), event.Snapshot.ItemCount)
	logrus.Debugf("Cart %s %s: %d items, total %s", event.Key, event.Operation, event.Snapshot.ItemCount, event.Snapshot.CartTotal)
}

func checkoutPricing(cfg configs.Checkout) application.CheckoutPricing {
	pricing := application.DefaultCheckoutPricing()
	if cfg.ShippingFee > 0 {
		pricing.ShippingFee = decimal.NewFromFloat(cfg.ShippingFee)
	}
	if cfg.TaxRate > 0 {
		pricing.TaxRate = decimal.NewFromFloat(cfg.TaxRate)
	}
	if cfg.DeliveryDays > 0 {
		pricing.DeliveryDays = cfg.DeliveryDays
	}
	return pricing
}
