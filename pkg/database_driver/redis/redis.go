package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// ConnectToRedis func
func ConnectToRedis(addr, password string, db int) (*goredis.Client, error) {
	if addr == "" {
		return nil, errors.New("cannot estabished the connection: redis address is empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Error(err)
		_ = client.Close()
		return nil, err
	}

	logrus.Infof("Connected to redis at %s db %d", addr, db)
	return client, nil
}

// DisconnectRedis func
func DisconnectRedis(client *goredis.Client) {
	if err := client.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with redis has closed")
}
