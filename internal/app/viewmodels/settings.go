package viewmodels

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/store"
)

// SettingsViewModel owns the per-user settings singleton.
type SettingsViewModel struct {
	mu       sync.Mutex
	settings models.Settings

	store     store.Store
	codec     store.Codec
	principal PrincipalProvider
	logger    zerolog.Logger
}

// NewSettingsViewModel creates a new SettingsViewModel holding the
// default settings until loaded.
func NewSettingsViewModel(st store.Store, codec store.Codec, principal PrincipalProvider, logger zerolog.Logger) *SettingsViewModel {
	return &SettingsViewModel{
		settings:  codec.DefaultSettings(),
		store:     st,
		codec:     codec,
		principal: principal,
		logger:    logger,
	}
}

// Load fetches the settings document and replaces the in-memory value.
// A missing document or a fetch failure resolves to the defaults.
func (vm *SettingsViewModel) Load(ctx context.Context) {
	fetched := vm.codec.DefaultSettings()

	docs, err := vm.store.FetchAll(ctx, vm.principal.PrincipalID(), store.KindSettings)
	if err != nil {
		vm.logger.Error().Err(err).Msg("Error fetching settings")
	} else if len(docs) > 0 {
		fetched = vm.codec.DecodeSettings(docs[0])
	}

	vm.mu.Lock()
	vm.settings = fetched
	vm.mu.Unlock()
}

// Settings returns the current settings value.
func (vm *SettingsViewModel) Settings() models.Settings {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.settings
}

// Save replaces the settings and persists the singleton document in
// the background.
func (vm *SettingsViewModel) Save(s models.Settings) {
	vm.mu.Lock()
	vm.settings = s
	vm.mu.Unlock()

	principalID := vm.principal.PrincipalID()
	go func() {
		doc := vm.codec.EncodeSettings(s)
		if err := vm.store.Save(context.Background(), principalID, store.KindSettings, store.SettingsDocID, doc); err != nil {
			vm.logger.Error().Err(err).Msg("Error saving settings")
		}
	}()
}
