package external

import (
	"fmt"

	"prayertimes.app/internal/adapters/database"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

type StoreFactory struct{}

func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// CreateStore opens the entitlement store selected by STORE_TYPE
func (f *StoreFactory) CreateStore(cfg *config.StoreConfig) (ports.ManagedStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryStore(), nil
	case config.StoreTypeRedis:
		store, err := NewRedisStoreAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreTypeDatabase:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		return database.NewKeyValueStoreAdapter(db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type.String()), nil)
	}
}
