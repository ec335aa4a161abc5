package location

import (
	"context"
	"sync"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

// ChangeListener is called after every change of the current location.
// Listeners run outside the resolver's state lock and may read it back.
type ChangeListener func(Location)

// Resolver owns the active location and the confirmation-pending flag.
// The location starts unresolved, may be filled once from the device
// position and can be overridden any number of times by the user.
type Resolver struct {
	geocoder ports.ReverseGeocoder
	logger   ports.Logger

	// serializes apply+notify so listeners observe changes in order
	notifyMu sync.Mutex

	mu              sync.RWMutex
	current         Location
	selected        TimeZone
	pending         bool
	deviceRequested bool
	overrides       uint64
	listeners       []ChangeListener
}

type ResolverDependencies struct {
	Geocoder ports.ReverseGeocoder
	Logger   ports.Logger
}

func NewResolver(deps ResolverDependencies) (*Resolver, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("reverse geocoder is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Resolver{
		geocoder: deps.Geocoder,
		logger:   deps.Logger,
		selected: DefaultTimeZone,
		pending:  true,
	}, nil
}

// OnChange registers a listener for location changes
func (r *Resolver) OnChange(listener ChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, listener)
}

// OnDeviceLocationAvailable resolves the device position to a city once per
// process. Failures are logged and leave the location untouched; there is no
// retry. A result that arrives after the user picked a timezone is dropped.
func (r *Resolver) OnDeviceLocationAvailable(ctx context.Context, latitude, longitude float64) {
	r.mu.Lock()
	if r.deviceRequested {
		r.mu.Unlock()
		r.logger.Debug("Device location already handled, ignoring",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude))
		return
	}
	r.deviceRequested = true
	overridesAtStart := r.overrides
	r.mu.Unlock()

	if !validation.IsValidCoordinate(latitude, longitude) {
		r.logger.Error("Error fetching location",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("error", "coordinates out of range"))
		return
	}

	addr, err := r.geocoder.Reverse(ctx, latitude, longitude)
	if err != nil {
		r.logger.Error("Error fetching location",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("error", err))
		return
	}
	if addr == nil {
		r.logger.Error("Error fetching location",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("error", "empty geocoder response"))
		return
	}

	loc := FromAddress(*addr)

	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if r.overrides != overridesAtStart {
		r.mu.Unlock()
		r.logger.Info("Device location discarded, user already selected a timezone",
			ports.F("location", loc.String()))
		return
	}
	r.current = loc
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.logger.Info("Location resolved from device", ports.F("location", loc.String()))
	notify(listeners, loc)
}

// OnDeviceLocationUnsupported records that the host has no geolocation capability
func (r *Resolver) OnDeviceLocationUnsupported() {
	r.mu.Lock()
	r.deviceRequested = true
	r.mu.Unlock()

	r.logger.Error("Geolocation is not supported by this host")
}

// SelectTimezone overrides the location with the city of the given zone,
// replacing any earlier value including a device-resolved one.
func (r *Resolver) SelectTimezone(tz TimeZone) error {
	if !tz.IsValid() {
		return errors.NewValidationError("timezone is not in the supported set")
	}

	loc := tz.Location()

	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	r.current = loc
	r.selected = tz
	r.overrides++
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.logger.Info("Location selected by timezone",
		ports.F("timezone", tz.String()),
		ports.F("location", loc.String()))
	notify(listeners, loc)
	return nil
}

// Confirm clears the confirmation-pending flag. It does not touch the location.
func (r *Resolver) Confirm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = false
}

// Current returns the active location
func (r *Resolver) Current() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// PendingConfirmation reports whether the user has yet to confirm the location
func (r *Resolver) PendingConfirmation() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pending
}

// SelectedTimezone returns the selector value, DefaultTimeZone until the user picks one
func (r *Resolver) SelectedTimezone() TimeZone {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

// must hold r.mu
func (r *Resolver) snapshotListeners() []ChangeListener {
	out := make([]ChangeListener, len(r.listeners))
	copy(out, r.listeners)
	return out
}

func notify(listeners []ChangeListener, loc Location) {
	for _, l := range listeners {
		l(loc)
	}
}
