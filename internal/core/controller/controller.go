package controller

import (
	"context"
	"sync"
	"time"

	"prayertimes.app/internal/core/entitlement"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/core/payment"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// NoticeSource exposes the most recent user-facing notice
type NoticeSource interface {
	Latest() string
}

// View is the derived UI state rendered by the front end
type View struct {
	Loading             bool              `json:"loading"`
	PendingConfirmation bool              `json:"pendingConfirmation"`
	Location            location.Location `json:"location"`
	SelectedTimezone    location.TimeZone `json:"selectedTimezone"`
	SelectedDate        prayer.Date       `json:"selectedDate"`
	Times               prayer.TimeSet    `json:"times"`
	SubscribeVisible    bool              `json:"subscribeVisible"`
	TrialActive         bool              `json:"trialActive"`
	PaymentAvailable    bool              `json:"paymentAvailable"`
	Notice              string            `json:"notice,omitempty"`
}

// Controller composes the location resolver, prayer sync, entitlement and
// payment flow. Location changes and date selections are turned into sync
// updates; the sync itself skips unchanged inputs.
type Controller struct {
	resolver    *location.Resolver
	sync        *prayer.Sync
	entitlement *entitlement.Service
	payment     *payment.Flow
	notices     NoticeSource
	logger      ports.Logger
	now         func() time.Time

	// guards date and orders sync updates
	mu   sync.Mutex
	ctx  context.Context
	date prayer.Date

	background sync.WaitGroup
}

type ControllerDependencies struct {
	Resolver    *location.Resolver
	Sync        *prayer.Sync
	Entitlement *entitlement.Service
	Payment     *payment.Flow
	Notices     NoticeSource
	Logger      ports.Logger
	// Now defaults to time.Now
	Now func() time.Time
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("location resolver is required")
	}
	if deps.Sync == nil {
		return nil, errors.NewValidationError("prayer sync is required")
	}
	if deps.Entitlement == nil {
		return nil, errors.NewValidationError("entitlement service is required")
	}
	if deps.Payment == nil {
		return nil, errors.NewValidationError("payment flow is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	c := &Controller{
		resolver:    deps.Resolver,
		sync:        deps.Sync,
		entitlement: deps.Entitlement,
		payment:     deps.Payment,
		notices:     deps.Notices,
		logger:      deps.Logger,
		now:         now,
		ctx:         context.Background(),
		date:        prayer.DateOf(now()),
	}

	c.resolver.OnChange(c.onLocationChange)
	return c, nil
}

// Start issues the launch fetch for today and the current, possibly
// unresolved, location. ctx bounds all background work started later.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ctx = ctx
	c.date = prayer.DateOf(c.now())

	c.logger.Info("Starting prayer times controller", ports.F("date", c.date.ISO()))
	c.sync.Start(ctx, prayer.Inputs{Location: c.resolver.Current(), Date: c.date})
}

func (c *Controller) onLocationChange(loc location.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sync.Update(c.ctx, prayer.Inputs{Location: loc, Date: c.date})
}

// DeviceLocation hands the device position to the resolver without blocking
// the caller.
func (c *Controller) DeviceLocation(latitude, longitude float64) {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()

	c.background.Add(1)
	go func() {
		defer c.background.Done()
		c.resolver.OnDeviceLocationAvailable(ctx, latitude, longitude)
	}()
}

func (c *Controller) DeviceLocationUnsupported() {
	c.resolver.OnDeviceLocationUnsupported()
}

func (c *Controller) SelectTimezone(tz location.TimeZone) error {
	return c.resolver.SelectTimezone(tz)
}

func (c *Controller) ConfirmLocation() {
	c.resolver.Confirm()
}

// SelectDate changes the date and refetches when it differs from the current inputs
func (c *Controller) SelectDate(date prayer.Date) error {
	if date.IsZero() {
		return errors.NewValidationError("date is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.date = date
	c.sync.Update(c.ctx, prayer.Inputs{Location: c.resolver.Current(), Date: date})
	return nil
}

// Subscribe runs the payment flow and blocks until the host answers or ctx ends
func (c *Controller) Subscribe(ctx context.Context) (payment.Outcome, error) {
	return c.payment.InitiatePayment(ctx)
}

// SetTrialActive forwards the trial flag from its external owner
func (c *Controller) SetTrialActive(active bool) {
	c.entitlement.SetTrialActive(active)
}

// View assembles the current UI state
func (c *Controller) View() View {
	c.mu.Lock()
	date := c.date
	c.mu.Unlock()

	ent := c.entitlement.State()

	v := View{
		Loading:             c.sync.Loading(),
		PendingConfirmation: c.resolver.PendingConfirmation(),
		Location:            c.resolver.Current(),
		SelectedTimezone:    c.resolver.SelectedTimezone(),
		SelectedDate:        date,
		Times:               c.sync.Times(),
		SubscribeVisible:    ent.SubscribeVisible(),
		TrialActive:         ent.IsTrialActive,
		PaymentAvailable:    c.payment.HostAvailable(),
	}
	if c.notices != nil {
		v.Notice = c.notices.Latest()
	}
	return v
}

// Wait blocks until background geolocation and in-flight fetches have settled
func (c *Controller) Wait() {
	c.background.Wait()
	c.sync.Wait()
}
