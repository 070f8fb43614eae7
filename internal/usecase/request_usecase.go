package usecase

//go:generate mockgen -source=request_usecase.go -destination=../adapter/http/handlers/mocks/mock_request_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestao_compras/internal/domain/access"
	"gestao_compras/internal/domain/audit"
	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// Columns the client never writes directly.
var managedColumns = []string{"id", "history"}

// IRequestUseCase exposes the procurement request operations.
//
// Every operation takes the acting user: listing is filtered by sector
// visibility and single-request access is guarded the same way.
type IRequestUseCase interface {
	List(ctx context.Context, actor entities.User) ([]entities.Request, error)
	Get(ctx context.Context, actor entities.User, id int64) (entities.Request, error)
	Create(ctx context.Context, actor entities.User, req entities.Request) (entities.Request, error)
	Update(ctx context.Context, actor entities.User, id int64, changes entities.Row) (entities.Request, error)
	Delete(ctx context.Context, actor entities.User, id int64) error
	State() (WriteState, error)
	Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
}

type RequestUseCase struct {
	requests  *collection[entities.Request]
	catalog   ICatalogUseCase
	policy    access.Policy
	delivered string
	now       func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(store interfaces.ITableStore, catalog ICatalogUseCase, policy access.Policy, deliveredStatus string) *RequestUseCase {
	if strings.TrimSpace(deliveredStatus) == "" {
		deliveredStatus = entities.DefaultDeliveredStatus
	}
	return &RequestUseCase{
		requests:  newCollection(interfaces.TableRequests, store, func(r entities.Request) any { return r.ID }),
		catalog:   catalog,
		policy:    policy,
		delivered: deliveredStatus,
		now:       time.Now,
	}
}

func (u *RequestUseCase) List(ctx context.Context, actor entities.User) ([]entities.Request, error) {
	all, err := u.requests.All(ctx)
	if err != nil {
		return []entities.Request{}, err
	}
	return u.policy.FilterVisible(all, actor), nil
}

func (u *RequestUseCase) Get(ctx context.Context, actor entities.User, id int64) (entities.Request, error) {
	r, ok, err := u.requests.Find(ctx, id)
	if err != nil {
		return entities.Request{}, err
	}
	if !ok {
		return entities.Request{}, ErrRequestNotFound
	}
	if err := u.policy.CanAccess(r, actor); err != nil {
		return entities.Request{}, err
	}
	return r, nil
}

// Create validates the request against the active required fields and
// inserts it. Missing status and sector default to the first configured
// status and to the actor's sector.
func (u *RequestUseCase) Create(ctx context.Context, actor entities.User, req entities.Request) (entities.Request, error) {
	fields, err := u.catalog.ListFormFields(ctx)
	if err != nil {
		return entities.Request{}, err
	}

	if strings.TrimSpace(req.Status) == "" {
		statuses, err := u.catalog.ListStatuses(ctx)
		if err != nil {
			return entities.Request{}, err
		}
		if len(statuses) > 0 {
			req.Status = statuses[0].Name
		}
	}
	if strings.TrimSpace(req.Sector) == "" {
		req.Sector = actor.Sector
	}
	if strings.TrimSpace(req.RequestDate) == "" {
		req.RequestDate = u.now().Format(time.DateOnly)
	}
	if strings.TrimSpace(req.Requester) == "" {
		req.Requester = actor.Name
	}
	if req.Items == nil {
		req.Items = []entities.LineItem{}
	}
	if req.CustomFields == nil {
		req.CustomFields = map[string]any{}
	}
	req.History = []entities.HistoryEntry{}
	req.ID = nextID()

	row, err := entities.ToRow(req)
	if err != nil {
		return entities.Request{}, err
	}
	if missing := missingRequired(row, fields); len(missing) > 0 {
		return entities.Request{}, fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	if audit.ApplyDeliveryRule(row, u.delivered) {
		req.Status = u.delivered
	}
	if err := u.policy.CanAccess(req, actor); err != nil {
		return entities.Request{}, err
	}

	if err := u.requests.Insert(ctx, req); err != nil {
		return entities.Request{}, err
	}
	zap.L().Info("[request][usecase] created", zap.Int64("id", req.ID), zap.String("user", actor.Email))
	return req, nil
}

// Update applies changes to a request in a single write.
//
// Blank and nil values are dropped before anything else, so a field cannot
// be cleared through an update. The delivery rule runs on the merged
// snapshot and every changed active field becomes one history entry.
func (u *RequestUseCase) Update(ctx context.Context, actor entities.User, id int64, changes entities.Row) (entities.Request, error) {
	existing, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.Request{}, err
	}
	fields, err := u.catalog.ListFormFields(ctx)
	if err != nil {
		return entities.Request{}, err
	}

	patch := interfaces.SanitizePatch(changes)
	for _, c := range managedColumns {
		delete(patch, c)
	}

	before, err := entities.ToRow(existing)
	if err != nil {
		return entities.Request{}, err
	}
	after, err := entities.ToRow(existing)
	if err != nil {
		return entities.Request{}, err
	}
	if custom, ok := patch["customFields"].(map[string]any); ok {
		merged := map[string]any{}
		for k, v := range existing.CustomFields {
			merged[k] = v
		}
		for k, v := range custom {
			merged[k] = v
		}
		patch["customFields"] = merged
	}
	for k, v := range patch {
		after[k] = v
	}
	if audit.ApplyDeliveryRule(after, u.delivered) {
		patch["status"] = u.delivered
	}

	entries := audit.Diff(before, after, fields, actor.Name, u.now())
	if len(patch) == 0 && len(entries) == 0 {
		return existing, nil
	}

	var updated entities.Request
	if err := entities.FromRow(after, &updated); err != nil {
		return entities.Request{}, err
	}
	updated.ID = existing.ID
	// The actor must still see the record after the change.
	if err := u.policy.CanAccess(updated, actor); err != nil {
		return entities.Request{}, err
	}
	updated.History = audit.Append(existing.History, entries)
	patch["history"] = updated.History

	if err := u.requests.Update(ctx, updated, patch); err != nil {
		return entities.Request{}, err
	}
	return updated, nil
}

func (u *RequestUseCase) Delete(ctx context.Context, actor entities.User, id int64) error {
	if _, err := u.Get(ctx, actor, id); err != nil {
		return err
	}
	return u.requests.Remove(ctx, id)
}

func (u *RequestUseCase) State() (WriteState, error) {
	return u.requests.State()
}

func (u *RequestUseCase) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return u.requests.Watch(ctx, notifier)
}

// missingRequired lists the labels of active required fields without a value.
func missingRequired(row entities.Row, fields []entities.FormField) []string {
	custom, _ := row["customFields"].(map[string]any)
	var missing []string
	for _, f := range fields {
		if !f.Active || !f.Required {
			continue
		}
		var v any
		if f.Standard {
			v = row[f.ID]
		} else {
			v = custom[f.ID]
		}
		if audit.Normalize(v) == entities.EmptyValue {
			missing = append(missing, f.Label)
		}
	}
	return missing
}
