package usecase

//go:generate mockgen -source=supplier_usecase.go -destination=../adapter/http/handlers/mocks/mock_supplier_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/performance"
	"gestao_compras/internal/usecase/interfaces"
)

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrSupplierAlreadyExists = errors.New("supplier already exists")
	ErrInvalidSupplierName   = errors.New("invalid supplier name")
	ErrInvalidSupplierRating = errors.New("supplier rating must be between 0 and 5")
)

// SupplierStats summarizes the requests that name a supplier.
type SupplierStats struct {
	Supplier        string   `json:"supplier"`
	Total           int      `json:"total"`
	Delivered       int      `json:"delivered"`
	Open            int      `json:"open"`
	AvgLeadTimeDays *float64 `json:"avg_lead_time_days"`
}

type ISupplierUseCase interface {
	List(ctx context.Context) ([]entities.Supplier, error)
	Get(ctx context.Context, id int64) (entities.Supplier, error)
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	Update(ctx context.Context, id int64, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, actor entities.User, id int64) (SupplierStats, error)
	Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
}

type SupplierUseCase struct {
	suppliers *collection[entities.Supplier]
	requests  IRequestUseCase
	delivered string
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(store interfaces.ITableStore, requests IRequestUseCase, deliveredStatus string) *SupplierUseCase {
	if strings.TrimSpace(deliveredStatus) == "" {
		deliveredStatus = entities.DefaultDeliveredStatus
	}
	return &SupplierUseCase{
		suppliers: newCollection(interfaces.TableSuppliers, store, func(s entities.Supplier) any { return s.ID }),
		requests:  requests,
		delivered: deliveredStatus,
	}
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.suppliers.All(ctx)
}

func (u *SupplierUseCase) Get(ctx context.Context, id int64) (entities.Supplier, error) {
	s, ok, err := u.suppliers.Find(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if !ok {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	s = trimSupplier(s)
	s.ID = nextID()
	if err := u.validate(ctx, s); err != nil {
		return entities.Supplier{}, err
	}
	if err := u.suppliers.Insert(ctx, s); err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

// Update replaces every editable column. Requests keep the supplier name
// they were saved with.
func (u *SupplierUseCase) Update(ctx context.Context, id int64, s entities.Supplier) (entities.Supplier, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return entities.Supplier{}, err
	}
	s = trimSupplier(s)
	s.ID = id
	if err := u.validate(ctx, s); err != nil {
		return entities.Supplier{}, err
	}
	patch := entities.Row{
		"name":     s.Name,
		"contact":  s.Contact,
		"email":    s.Email,
		"phone":    s.Phone,
		"category": s.Category,
		"rating":   s.Rating,
		"notes":    s.Notes,
	}
	if err := u.suppliers.Update(ctx, s, patch); err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

func (u *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.suppliers.Remove(ctx, id)
}

// Stats counts the visible requests whose supplier column equals the
// supplier name. Renaming a supplier detaches its earlier requests.
func (u *SupplierUseCase) Stats(ctx context.Context, actor entities.User, id int64) (SupplierStats, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return SupplierStats{}, err
	}
	reqs, err := u.requests.List(ctx, actor)
	if err != nil {
		return SupplierStats{}, err
	}

	matched := make([]entities.Request, 0)
	for _, r := range reqs {
		if r.Supplier == s.Name {
			matched = append(matched, r)
		}
	}
	stats := SupplierStats{Supplier: s.Name, Total: len(matched)}
	for _, r := range matched {
		if r.Status == u.delivered {
			stats.Delivered++
		}
	}
	stats.Open = stats.Total - stats.Delivered
	stats.AvgLeadTimeDays = performance.MeanLeadTime(matched, u.delivered)
	return stats, nil
}

func (u *SupplierUseCase) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return u.suppliers.Watch(ctx, notifier)
}

func (u *SupplierUseCase) validate(ctx context.Context, s entities.Supplier) error {
	if s.Name == "" {
		return ErrInvalidSupplierName
	}
	if s.Rating < 0 || s.Rating > entities.MaxSupplierRating {
		return ErrInvalidSupplierRating
	}
	all, err := u.suppliers.All(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID != s.ID && strings.EqualFold(other.Name, s.Name) {
			return ErrSupplierAlreadyExists
		}
	}
	return nil
}

func trimSupplier(s entities.Supplier) entities.Supplier {
	s.Name = strings.TrimSpace(s.Name)
	s.Contact = strings.TrimSpace(s.Contact)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Category = strings.TrimSpace(s.Category)
	return s
}
