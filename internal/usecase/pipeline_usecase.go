package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidOrganizationID = errors.New("invalid organization_id")
	ErrSourceUnavailable     = errors.New("pipeline source unavailable")
)

const (
	sourceQuotes    = "quotes"
	sourceInvoices  = "invoices"
	sourceCustomers = "customers"
)

// Origin tells where the held pipeline collection came from.
type Origin string

const (
	OriginNone  Origin = "none"
	OriginCache Origin = "cache"
	OriginLive  Origin = "live"
)

// PipelineStatus describes the collection currently held for an organization.
type PipelineStatus struct {
	OrganizationID  string
	Origin          Origin
	Revision        uint64
	ItemCount       int
	QuotesLoaded    bool
	InvoicesLoaded  bool
	CustomersLoaded bool
	UpdatedAt       time.Time
}

// IPipelineUseCase exposes the sales pipeline of an organization.
//
// Slices returned by the Get* methods are shared with the view cache and
// must be treated as read-only.
type IPipelineUseCase interface {
	Refresh(ctx context.Context, organizationID string) error
	GetPipelineItems(ctx context.Context, organizationID string, f pipeline.Filters) ([]entities.PipelineItem, error)
	GetForecastMetrics(ctx context.Context, organizationID string, f pipeline.Filters) (pipeline.ForecastMetrics, error)
	GetStageGroups(ctx context.Context, organizationID string, f pipeline.Filters) (map[entities.Stage][]entities.PipelineItem, error)
	GetKanban(ctx context.Context, organizationID string, f pipeline.Filters) ([]pipeline.StageColumn, error)
	GetTable(ctx context.Context, organizationID string, f pipeline.Filters) ([]pipeline.TableRow, error)
	GetSplitView(ctx context.Context, organizationID string, f pipeline.Filters, sel *pipeline.Selection) (pipeline.SplitView, error)
	Status(ctx context.Context, organizationID string) (PipelineStatus, error)
}

type PipelineOption func(*PipelineUseCase)

// WithSnapshotCache sets the local snapshot read once, on first access.
// The use case never writes it.
func WithSnapshotCache(c interfaces.ISnapshotCache) PipelineOption {
	return func(u *PipelineUseCase) { u.snapshots = c }
}

// WithViewCache sets the cache memoizing filtered views.
func WithViewCache(c *cache.Cache) PipelineOption {
	return func(u *PipelineUseCase) { u.views = c }
}

func WithMetrics(m interfaces.IPipelineMetrics) PipelineOption {
	return func(u *PipelineUseCase) { u.metrics = m }
}

func WithLogger(l *zap.Logger) PipelineOption {
	return func(u *PipelineUseCase) { u.logger = l }
}

// PipelineUseCase holds one pipeline per organization.
//
// Each pipeline goes through init (snapshot placeholder), subscribe (fetch
// the three sources concurrently), recompute (after every source that
// arrives) and notify (new revision). The held collection is always
// replaced whole.
type PipelineUseCase struct {
	quotes    interfaces.IQuoteRepository
	invoices  interfaces.IInvoiceRepository
	customers interfaces.ICustomerRepository
	snapshots interfaces.ISnapshotCache
	views     *cache.Cache
	metrics   interfaces.IPipelineMetrics
	logger    *zap.Logger
	now       func() time.Time

	mu     sync.Mutex
	states map[string]*pipelineState
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(
	quotes interfaces.IQuoteRepository,
	invoices interfaces.IInvoiceRepository,
	customers interfaces.ICustomerRepository,
	opts ...PipelineOption,
) *PipelineUseCase {
	u := &PipelineUseCase{
		quotes:    quotes,
		invoices:  invoices,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
		states:    make(map[string]*pipelineState),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.views == nil {
		u.views = cache.New(5*time.Minute, 10*time.Minute)
	}
	if u.metrics == nil {
		u.metrics = noopMetrics{}
	}
	if u.logger == nil {
		u.logger = zap.NewNop()
	}
	u.logger = u.logger.Named("pipeline")
	return u
}

type pipelineState struct {
	initOnce sync.Once

	mu              sync.Mutex
	quotes          []entities.Quote
	invoices        []entities.Invoice
	customers       []entities.Customer
	quotesLoaded    bool
	invoicesLoaded  bool
	customersLoaded bool

	items     []entities.PipelineItem
	computed  bool
	origin    Origin
	revision  uint64
	updatedAt time.Time
}

func (u *PipelineUseCase) state(organizationID string) *pipelineState {
	u.mu.Lock()
	defer u.mu.Unlock()
	st, ok := u.states[organizationID]
	if !ok {
		st = &pipelineState{origin: OriginNone}
		u.states[organizationID] = st
	}
	return st
}

// ensure initializes the pipeline on first access. A failed initial fetch
// is logged only; readers get whatever is held.
func (u *PipelineUseCase) ensure(ctx context.Context, organizationID string) *pipelineState {
	st := u.state(organizationID)
	st.initOnce.Do(func() {
		if err := u.initialize(ctx, organizationID, st); err != nil {
			u.logger.Warn("initial pipeline load incomplete",
				zap.String("organization_id", organizationID), zap.Error(err))
		}
	})
	return st
}

// initialize runs once per organization and outlives the request that
// triggered it. Fetch deadlines belong to the repositories.
func (u *PipelineUseCase) initialize(ctx context.Context, organizationID string, st *pipelineState) error {
	ctx = context.WithoutCancel(ctx)
	u.loadSnapshot(ctx, organizationID, st)
	return u.refresh(ctx, organizationID, st)
}

// loadSnapshot installs the cached collection as a placeholder. It is only
// consulted before the first live computation.
func (u *PipelineUseCase) loadSnapshot(ctx context.Context, organizationID string, st *pipelineState) {
	if u.snapshots == nil {
		return
	}
	snap, ok, err := u.snapshots.Load(ctx, organizationID)
	if err != nil {
		u.logger.Warn("snapshot cache unreadable",
			zap.String("organization_id", organizationID), zap.Error(err))
		return
	}
	if !ok {
		return
	}

	items := pipeline.Aggregate(snap.Quotes, snap.Invoices, snap.Customers)
	if len(items) == 0 {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.computed {
		return
	}
	u.replace(organizationID, st, items, OriginCache)
}

func (u *PipelineUseCase) Refresh(ctx context.Context, organizationID string) error {
	organizationID, err := normalizeOrganizationID(organizationID)
	if err != nil {
		return err
	}

	st := u.state(organizationID)
	first := false
	var initErr error
	st.initOnce.Do(func() {
		first = true
		initErr = u.initialize(ctx, organizationID, st)
	})
	if first {
		return initErr
	}
	return u.refresh(ctx, organizationID, st)
}

// refresh fetches the three sources concurrently. Each source is applied as
// soon as it arrives; a failed source keeps its previous value.
func (u *PipelineUseCase) refresh(ctx context.Context, organizationID string, st *pipelineState) error {
	start := u.now()
	var g errgroup.Group

	g.Go(func() error {
		quotes, err := u.quotes.ListByOrganization(ctx, organizationID)
		if err != nil {
			return u.fetchFailed(organizationID, sourceQuotes, err)
		}
		u.apply(organizationID, st, sourceQuotes, func() {
			st.quotes, st.quotesLoaded = quotes, true
		})
		return nil
	})
	g.Go(func() error {
		invoices, err := u.invoices.ListByOrganization(ctx, organizationID)
		if err != nil {
			return u.fetchFailed(organizationID, sourceInvoices, err)
		}
		u.apply(organizationID, st, sourceInvoices, func() {
			st.invoices, st.invoicesLoaded = invoices, true
		})
		return nil
	})
	g.Go(func() error {
		customers, err := u.customers.ListByOrganization(ctx, organizationID)
		if err != nil {
			return u.fetchFailed(organizationID, sourceCustomers, err)
		}
		u.apply(organizationID, st, sourceCustomers, func() {
			st.customers, st.customersLoaded = customers, true
		})
		return nil
	})

	err := g.Wait()
	u.logger.Debug("pipeline refresh finished",
		zap.String("organization_id", organizationID),
		zap.Duration("elapsed", u.now().Sub(start)),
		zap.Bool("ok", err == nil))
	return err
}

func (u *PipelineUseCase) fetchFailed(organizationID, source string, err error) error {
	u.metrics.RecordFetchError(source)
	u.logger.Warn("pipeline source fetch failed; keeping last known data",
		zap.String("organization_id", organizationID),
		zap.String("source", source),
		zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source, err)
}

func (u *PipelineUseCase) apply(organizationID string, st *pipelineState, source string, set func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	set()
	u.recompute(organizationID, st, source)
}

// recompute rebuilds the collection from the live sources. Caller holds st.mu.
func (u *PipelineUseCase) recompute(organizationID string, st *pipelineState, trigger string) {
	if !st.quotesLoaded && !st.invoicesLoaded {
		return
	}

	items := pipeline.Aggregate(st.quotes, st.invoices, st.customers)
	if len(items) == 0 && st.computed {
		u.metrics.RecordRecompute(string(OriginLive), false)
		u.logger.Debug("empty pipeline recomputation ignored",
			zap.String("organization_id", organizationID),
			zap.String("trigger", trigger),
			zap.String("held_origin", string(st.origin)))
		return
	}
	u.replace(organizationID, st, items, OriginLive)
}

// replace swaps the held collection and bumps the revision, which retires
// every memoized view of the previous one. Caller holds st.mu.
func (u *PipelineUseCase) replace(organizationID string, st *pipelineState, items []entities.PipelineItem, origin Origin) {
	u.metrics.AddHeldItems(len(items) - len(st.items))
	st.items = items
	st.computed = true
	st.origin = origin
	st.revision++
	st.updatedAt = u.now()

	u.metrics.RecordRecompute(string(origin), true)
	u.logger.Info("pipeline recomputed",
		zap.String("organization_id", organizationID),
		zap.String("origin", string(origin)),
		zap.Uint64("revision", st.revision),
		zap.Int("items", len(items)))
}

func (st *pipelineState) current() ([]entities.PipelineItem, uint64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.items, st.revision
}

// view returns the memoized filtered and sorted collection.
func (u *PipelineUseCase) view(ctx context.Context, organizationID string, f pipeline.Filters) ([]entities.PipelineItem, error) {
	organizationID, err := normalizeOrganizationID(organizationID)
	if err != nil {
		return nil, err
	}

	st := u.ensure(ctx, organizationID)
	items, revision := st.current()
	f = f.Normalized()

	key := fmt.Sprintf("%s|%d|%s", organizationID, revision, f.CacheKey())
	if cached, ok := u.views.Get(key); ok {
		u.metrics.RecordViewCache(true)
		return cached.([]entities.PipelineItem), nil
	}
	u.metrics.RecordViewCache(false)

	out := pipeline.View(items, f)
	u.views.SetDefault(key, out)
	return out, nil
}

func (u *PipelineUseCase) GetPipelineItems(ctx context.Context, organizationID string, f pipeline.Filters) ([]entities.PipelineItem, error) {
	return u.view(ctx, organizationID, f)
}

func (u *PipelineUseCase) GetForecastMetrics(ctx context.Context, organizationID string, f pipeline.Filters) (pipeline.ForecastMetrics, error) {
	items, err := u.view(ctx, organizationID, f)
	if err != nil {
		return pipeline.ForecastMetrics{}, err
	}
	return pipeline.Metrics(items), nil
}

func (u *PipelineUseCase) GetStageGroups(ctx context.Context, organizationID string, f pipeline.Filters) (map[entities.Stage][]entities.PipelineItem, error) {
	items, err := u.view(ctx, organizationID, f)
	if err != nil {
		return nil, err
	}
	return pipeline.GroupByStage(items), nil
}

func (u *PipelineUseCase) GetKanban(ctx context.Context, organizationID string, f pipeline.Filters) ([]pipeline.StageColumn, error) {
	items, err := u.view(ctx, organizationID, f)
	if err != nil {
		return nil, err
	}
	return pipeline.KanbanColumns(items), nil
}

func (u *PipelineUseCase) GetTable(ctx context.Context, organizationID string, f pipeline.Filters) ([]pipeline.TableRow, error) {
	items, err := u.view(ctx, organizationID, f)
	if err != nil {
		return nil, err
	}
	return pipeline.TableRows(items), nil
}

func (u *PipelineUseCase) GetSplitView(ctx context.Context, organizationID string, f pipeline.Filters, sel *pipeline.Selection) (pipeline.SplitView, error) {
	items, err := u.view(ctx, organizationID, f)
	if err != nil {
		return pipeline.SplitView{}, err
	}
	return pipeline.Split(items, sel), nil
}

func (u *PipelineUseCase) Status(ctx context.Context, organizationID string) (PipelineStatus, error) {
	organizationID, err := normalizeOrganizationID(organizationID)
	if err != nil {
		return PipelineStatus{}, err
	}

	st := u.ensure(ctx, organizationID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return PipelineStatus{
		OrganizationID:  organizationID,
		Origin:          st.origin,
		Revision:        st.revision,
		ItemCount:       len(st.items),
		QuotesLoaded:    st.quotesLoaded,
		InvoicesLoaded:  st.invoicesLoaded,
		CustomersLoaded: st.customersLoaded,
		UpdatedAt:       st.updatedAt,
	}, nil
}

func normalizeOrganizationID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidOrganizationID
	}
	return id, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordRecompute(string, bool) {}
func (noopMetrics) RecordFetchError(string)      {}
func (noopMetrics) RecordViewCache(bool)         {}
func (noopMetrics) AddHeldItems(int)             {}
