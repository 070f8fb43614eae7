package usecase

//go:generate mockgen -source=price_map_usecase.go -destination=../adapter/http/handlers/mocks/mock_price_map_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/domain/quote"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPriceMapNotFound   = errors.New("price map not found")
	ErrInvalidPriceMap    = errors.New("price map title is required")
	ErrInvalidOfferTarget = errors.New("supplier name is required")
	ErrUnknownItem        = errors.New("item not found in price map")
	ErrNegativeAmount     = errors.New("amount must not be negative")
)

const itemIDPrefix = "it_"

// IPriceMapUseCase manages quote-comparison documents.
type IPriceMapUseCase interface {
	List(ctx context.Context) ([]entities.PriceMap, error)
	Get(ctx context.Context, id int64) (entities.PriceMap, error)
	Create(ctx context.Context, pm entities.PriceMap) (entities.PriceMap, error)
	Update(ctx context.Context, id int64, pm entities.PriceMap) (entities.PriceMap, error)
	Delete(ctx context.Context, id int64) error
	SetPrice(ctx context.Context, id int64, supplier, itemID string, price float64) (entities.PriceMap, error)
	SetFreight(ctx context.Context, id int64, supplier string, freight float64) (entities.PriceMap, error)
	SetDeliveryDeadline(ctx context.Context, id int64, supplier, deadline string) (entities.PriceMap, error)
	Compare(ctx context.Context, id int64) (quote.Comparison, error)
	Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
}

type PriceMapUseCase struct {
	maps *collection[entities.PriceMap]
	now  func() time.Time
}

var _ IPriceMapUseCase = (*PriceMapUseCase)(nil)

func NewPriceMapUseCase(store interfaces.ITableStore) *PriceMapUseCase {
	return &PriceMapUseCase{
		maps: newCollection(interfaces.TablePriceMaps, store, func(pm entities.PriceMap) any { return pm.ID }),
		now:  time.Now,
	}
}

func (u *PriceMapUseCase) List(ctx context.Context) ([]entities.PriceMap, error) {
	return u.maps.All(ctx)
}

func (u *PriceMapUseCase) Get(ctx context.Context, id int64) (entities.PriceMap, error) {
	pm, ok, err := u.maps.Find(ctx, id)
	if err != nil {
		return entities.PriceMap{}, err
	}
	if !ok {
		return entities.PriceMap{}, ErrPriceMapNotFound
	}
	return pm, nil
}

func (u *PriceMapUseCase) Create(ctx context.Context, pm entities.PriceMap) (entities.PriceMap, error) {
	pm, err := u.normalize(pm)
	if err != nil {
		return entities.PriceMap{}, err
	}
	pm.ID = nextID()
	if err := u.maps.Insert(ctx, pm); err != nil {
		return entities.PriceMap{}, err
	}
	return pm, nil
}

// Update replaces the header, items and offers of a price map.
func (u *PriceMapUseCase) Update(ctx context.Context, id int64, pm entities.PriceMap) (entities.PriceMap, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return entities.PriceMap{}, err
	}
	pm, err := u.normalize(pm)
	if err != nil {
		return entities.PriceMap{}, err
	}
	pm.ID = id
	return pm, u.save(ctx, pm)
}

func (u *PriceMapUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.maps.Remove(ctx, id)
}

// SetPrice records the bid of a supplier for one item. A zero price clears
// the bid for comparison purposes.
func (u *PriceMapUseCase) SetPrice(ctx context.Context, id int64, supplier, itemID string, price float64) (entities.PriceMap, error) {
	if price < 0 {
		return entities.PriceMap{}, ErrNegativeAmount
	}
	return u.mutateOffers(ctx, id, supplier, func(pm entities.PriceMap) (entities.PriceMap, error) {
		if !hasItem(pm, itemID) {
			return pm, ErrUnknownItem
		}
		pm.Offers = quote.SetPrice(pm.Offers, supplier, itemID, price)
		return pm, nil
	})
}

func (u *PriceMapUseCase) SetFreight(ctx context.Context, id int64, supplier string, freight float64) (entities.PriceMap, error) {
	if freight < 0 {
		return entities.PriceMap{}, ErrNegativeAmount
	}
	return u.mutateOffers(ctx, id, supplier, func(pm entities.PriceMap) (entities.PriceMap, error) {
		pm.Offers = quote.SetFreight(pm.Offers, supplier, freight)
		return pm, nil
	})
}

func (u *PriceMapUseCase) SetDeliveryDeadline(ctx context.Context, id int64, supplier, deadline string) (entities.PriceMap, error) {
	return u.mutateOffers(ctx, id, supplier, func(pm entities.PriceMap) (entities.PriceMap, error) {
		pm.Offers = quote.SetDeliveryDeadline(pm.Offers, supplier, strings.TrimSpace(deadline))
		return pm, nil
	})
}

func (u *PriceMapUseCase) Compare(ctx context.Context, id int64) (quote.Comparison, error) {
	pm, err := u.Get(ctx, id)
	if err != nil {
		return quote.Comparison{}, err
	}
	return quote.Compare(pm), nil
}

func (u *PriceMapUseCase) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return u.maps.Watch(ctx, notifier)
}

func (u *PriceMapUseCase) mutateOffers(ctx context.Context, id int64, supplier string, mutate func(entities.PriceMap) (entities.PriceMap, error)) (entities.PriceMap, error) {
	if strings.TrimSpace(supplier) == "" {
		return entities.PriceMap{}, ErrInvalidOfferTarget
	}
	pm, err := u.Get(ctx, id)
	if err != nil {
		return entities.PriceMap{}, err
	}
	pm, err = mutate(pm)
	if err != nil {
		return entities.PriceMap{}, err
	}
	if err := u.maps.Update(ctx, pm, entities.Row{"offers": pm.Offers}); err != nil {
		return entities.PriceMap{}, err
	}
	return pm, nil
}

func (u *PriceMapUseCase) save(ctx context.Context, pm entities.PriceMap) error {
	patch := entities.Row{
		"title":  pm.Title,
		"date":   pm.Date,
		"notes":  pm.Notes,
		"items":  pm.Items,
		"offers": pm.Offers,
	}
	return u.maps.Update(ctx, pm, patch)
}

func (u *PriceMapUseCase) normalize(pm entities.PriceMap) (entities.PriceMap, error) {
	pm.Title = strings.TrimSpace(pm.Title)
	if pm.Title == "" {
		return pm, ErrInvalidPriceMap
	}
	if strings.TrimSpace(pm.Date) == "" {
		pm.Date = u.now().Format(time.DateOnly)
	}
	items := make([]entities.PriceMapItem, 0, len(pm.Items))
	for _, it := range pm.Items {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = itemIDPrefix + uuid.NewString()[:8]
		}
		items = append(items, it)
	}
	pm.Items = items
	if pm.Offers == nil {
		pm.Offers = []entities.SupplierOffer{}
	}
	for _, o := range pm.Offers {
		if strings.TrimSpace(o.Supplier) == "" {
			return pm, ErrInvalidOfferTarget
		}
	}
	return pm, nil
}

func hasItem(pm entities.PriceMap, itemID string) bool {
	for _, it := range pm.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}
