package data

import (
	"context"
	"time"

	"go-shortlink/ent"
	"go-shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	_ "github.com/mattn/go-sqlite3"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewLinkRepo, NewLinkCache, NewVisitRepo)

const (
	defaultDialTimeout = time.Second
	defaultOpTimeout   = 500 * time.Millisecond
)

// Data holds the shared store and cache clients.
type Data struct {
	db  *ent.Client
	rdb *redis.Client
}

// NewData opens the persistent store, runs migrations, and connects the
// cache tier. A missing redis config leaves rdb nil and the cache tier
// disabled.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	driver, source := "sqlite3", "file:shortlink?mode=memory&cache=shared&_fk=1"
	if c != nil && c.Database != nil {
		if c.Database.Driver != "" {
			driver = c.Database.Driver
		}
		if c.Database.Source != "" {
			source = c.Database.Source
		}
	}

	client, err := ent.Open(driver, source)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, nil, err
	}

	var rdb *redis.Client
	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			Password:     c.Redis.Password,
			DB:           c.Redis.DB,
			DialTimeout:  c.Redis.DialTimeout.AsDuration(defaultDialTimeout),
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(defaultOpTimeout),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(defaultOpTimeout),
		})
	} else {
		helper.Info("no redis configured, cache tier disabled")
	}

	d := &Data{
		db:  client,
		rdb: rdb,
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		if err := d.db.Close(); err != nil {
			helper.Error(err)
		}
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
	}

	return d, cleanup, nil
}

// EntClient exposes the underlying ent client.
func (d *Data) EntClient() *ent.Client {
	return d.db
}
