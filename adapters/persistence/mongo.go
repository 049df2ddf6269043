package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	CollectionProjects    = "projects"
	CollectionExperiences = "experiences"
	CollectionProfiles    = "profiles"
	CollectionAuditLog    = "entity_events"

	defaultDatabase = "test"
)

var errNotConnected = errors.New("mongodb client is not connected")

// MongoDB is the process-wide datastore handle. A failed connect is kept in
// connErr and returned by every collection lookup instead of stopping the
// process.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	connErr  error
}

// NewMongoDB connects and pings once within cfg.Mongo.ConnectTimeout. Both
// failures are logged only.
func NewMongoDB(ctx context.Context, cfg config.Config, log logger.Logger) *MongoDB {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Error("Connect MongoDB failed, requests will fail until restart", err)
		return &MongoDB{connErr: fmt.Errorf("%w: %v", errNotConnected, err)}
	}

	name := databaseName(cfg)
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Error("Ping MongoDB failed", err, zap.String("database", name))
	} else {
		log.Info("Connect MongoDB successfully.", zap.String("database", name))
	}

	return &MongoDB{client: client, database: client.Database(name)}
}

// databaseName prefers the explicit setting, then the database in the URI.
func databaseName(cfg config.Config) string {
	if cfg.Mongo.Database != "" {
		return cfg.Mongo.Database
	}
	if cs, err := connstring.Parse(cfg.Mongo.URI); err == nil && cs.Database != "" {
		return cs.Database
	}
	return defaultDatabase
}

func (m *MongoDB) Collection(name string) (*mongo.Collection, error) {
	if m.connErr != nil {
		return nil, m.connErr
	}
	return m.database.Collection(name), nil
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
