package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gestao_compras/internal/domain/entities"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidStatusName   = errors.New("invalid status name")
	ErrInvalidStatusColor  = errors.New("invalid status color")
	ErrStatusAlreadyExists = errors.New("status already exists")
	ErrStatusNotFound      = errors.New("status not found")

	ErrInvalidSectorName   = errors.New("invalid sector name")
	ErrSectorAlreadyExists = errors.New("sector already exists")
	ErrSectorNotFound      = errors.New("sector not found")

	ErrInvalidFieldLabel   = errors.New("invalid field label")
	ErrInvalidFieldType    = errors.New("invalid field type")
	ErrFieldNotFound       = errors.New("form field not found")
	ErrStandardFieldDelete = errors.New("standard fields can only be deactivated")
)

const customFieldPrefix = "cf_"

// DefaultStatuses is the workflow created on first run.
func DefaultStatuses() []entities.Status {
	return []entities.Status{
		{Name: "Pendente", Color: entities.StatusColorYellow},
		{Name: "Em Andamento", Color: entities.StatusColorBlue},
		{Name: "Aguardando Entrega", Color: entities.StatusColorPurple},
		{Name: entities.DefaultDeliveredStatus, Color: entities.StatusColorGreen},
		{Name: "Cancelado", Color: entities.StatusColorRed},
	}
}

// ICatalogUseCase manages the configuration tables: statuses, sectors and
// the request form definition.
type ICatalogUseCase interface {
	ListStatuses(ctx context.Context) ([]entities.Status, error)
	CreateStatus(ctx context.Context, name string, color entities.StatusColor) (entities.Status, error)
	UpdateStatus(ctx context.Context, id int64, name string, color entities.StatusColor) (entities.Status, error)
	DeleteStatus(ctx context.Context, id int64) error

	ListSectors(ctx context.Context) ([]entities.Sector, error)
	CreateSector(ctx context.Context, name, description string) (entities.Sector, error)
	UpdateSector(ctx context.Context, id int64, name, description string) (entities.Sector, error)
	DeleteSector(ctx context.Context, id int64) error

	ListFormFields(ctx context.Context) ([]entities.FormField, error)
	CreateFormField(ctx context.Context, f entities.FormField) (entities.FormField, error)
	UpdateFormField(ctx context.Context, id string, f entities.FormField) (entities.FormField, error)
	DeleteFormField(ctx context.Context, id string) error
	ReorderFormFields(ctx context.Context, ids []string) ([]entities.FormField, error)
	SetListVisibility(ctx context.Context, visibility map[string]bool) ([]entities.FormField, error)

	SeedDefaults(ctx context.Context) error
	Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error)
}

type CatalogUseCase struct {
	statuses *collection[entities.Status]
	sectors  *collection[entities.Sector]
	fields   *collection[entities.FormField]
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(store interfaces.ITableStore) *CatalogUseCase {
	return &CatalogUseCase{
		statuses: newCollection(interfaces.TableStatuses, store, func(s entities.Status) any { return s.ID }),
		sectors:  newCollection(interfaces.TableSectors, store, func(s entities.Sector) any { return s.ID }),
		fields:   newCollection(interfaces.TableFormFields, store, func(f entities.FormField) any { return f.ID }),
	}
}

// ListStatuses returns the statuses in creation order. The first one is the
// default status of new requests.
func (u *CatalogUseCase) ListStatuses(ctx context.Context) ([]entities.Status, error) {
	all, err := u.statuses.All(ctx)
	if err != nil {
		return all, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (u *CatalogUseCase) CreateStatus(ctx context.Context, name string, color entities.StatusColor) (entities.Status, error) {
	s := entities.Status{ID: nextID(), Name: strings.TrimSpace(name), Color: color}
	if err := u.validateStatus(ctx, s); err != nil {
		return entities.Status{}, err
	}
	if err := u.statuses.Insert(ctx, s); err != nil {
		return entities.Status{}, err
	}
	return s, nil
}

// UpdateStatus renames or recolors a status. Requests keep the name they were
// saved with; a rename does not cascade.
func (u *CatalogUseCase) UpdateStatus(ctx context.Context, id int64, name string, color entities.StatusColor) (entities.Status, error) {
	existing, ok, err := u.statuses.Find(ctx, id)
	if err != nil {
		return entities.Status{}, err
	}
	if !ok {
		return entities.Status{}, ErrStatusNotFound
	}
	s := entities.Status{ID: existing.ID, Name: strings.TrimSpace(name), Color: color}
	if err := u.validateStatus(ctx, s); err != nil {
		return entities.Status{}, err
	}
	if err := u.statuses.Update(ctx, s, entities.Row{"name": s.Name, "color": string(s.Color)}); err != nil {
		return entities.Status{}, err
	}
	return s, nil
}

func (u *CatalogUseCase) DeleteStatus(ctx context.Context, id int64) error {
	if _, ok, err := u.statuses.Find(ctx, id); err != nil {
		return err
	} else if !ok {
		return ErrStatusNotFound
	}
	return u.statuses.Remove(ctx, id)
}

func (u *CatalogUseCase) validateStatus(ctx context.Context, s entities.Status) error {
	if s.Name == "" {
		return ErrInvalidStatusName
	}
	if !s.Color.Valid() {
		return ErrInvalidStatusColor
	}
	all, err := u.statuses.All(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID != s.ID && strings.EqualFold(other.Name, s.Name) {
			return ErrStatusAlreadyExists
		}
	}
	return nil
}

// ListSectors returns the sectors in creation order.
func (u *CatalogUseCase) ListSectors(ctx context.Context) ([]entities.Sector, error) {
	all, err := u.sectors.All(ctx)
	if err != nil {
		return all, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (u *CatalogUseCase) CreateSector(ctx context.Context, name, description string) (entities.Sector, error) {
	s := entities.Sector{ID: nextID(), Name: strings.TrimSpace(name), Description: strings.TrimSpace(description)}
	if err := u.validateSector(ctx, s); err != nil {
		return entities.Sector{}, err
	}
	if err := u.sectors.Insert(ctx, s); err != nil {
		return entities.Sector{}, err
	}
	return s, nil
}

func (u *CatalogUseCase) UpdateSector(ctx context.Context, id int64, name, description string) (entities.Sector, error) {
	existing, ok, err := u.sectors.Find(ctx, id)
	if err != nil {
		return entities.Sector{}, err
	}
	if !ok {
		return entities.Sector{}, ErrSectorNotFound
	}
	s := entities.Sector{ID: existing.ID, Name: strings.TrimSpace(name), Description: strings.TrimSpace(description)}
	if err := u.validateSector(ctx, s); err != nil {
		return entities.Sector{}, err
	}
	patch := entities.Row{"name": s.Name, "description": s.Description}
	if err := u.sectors.Update(ctx, s, patch); err != nil {
		return entities.Sector{}, err
	}
	return s, nil
}

func (u *CatalogUseCase) DeleteSector(ctx context.Context, id int64) error {
	if _, ok, err := u.sectors.Find(ctx, id); err != nil {
		return err
	} else if !ok {
		return ErrSectorNotFound
	}
	return u.sectors.Remove(ctx, id)
}

func (u *CatalogUseCase) validateSector(ctx context.Context, s entities.Sector) error {
	if s.Name == "" {
		return ErrInvalidSectorName
	}
	all, err := u.sectors.All(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID != s.ID && strings.EqualFold(other.Name, s.Name) {
			return ErrSectorAlreadyExists
		}
	}
	return nil
}

// ListFormFields returns every field, active or not, sorted by Order.
func (u *CatalogUseCase) ListFormFields(ctx context.Context) ([]entities.FormField, error) {
	all, err := u.fields.All(ctx)
	if err != nil {
		return all, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Order < all[j].Order })
	return all, nil
}

// CreateFormField adds a custom field at the end of the form.
func (u *CatalogUseCase) CreateFormField(ctx context.Context, f entities.FormField) (entities.FormField, error) {
	f.Label = strings.TrimSpace(f.Label)
	if f.Label == "" {
		return entities.FormField{}, ErrInvalidFieldLabel
	}
	if !f.Type.Valid() {
		return entities.FormField{}, ErrInvalidFieldType
	}
	all, err := u.ListFormFields(ctx)
	if err != nil {
		return entities.FormField{}, err
	}
	f.ID = customFieldPrefix + uuid.NewString()[:8]
	f.Standard = false
	f.Order = len(all)
	if f.Options == nil {
		f.Options = []string{}
	}
	if err := u.fields.Insert(ctx, f); err != nil {
		return entities.FormField{}, err
	}
	return f, nil
}

// UpdateFormField edits the presentation of a field. The type of a standard
// field is fixed and Order only changes through ReorderFormFields.
func (u *CatalogUseCase) UpdateFormField(ctx context.Context, id string, f entities.FormField) (entities.FormField, error) {
	existing, ok, err := u.fields.Find(ctx, id)
	if err != nil {
		return entities.FormField{}, err
	}
	if !ok {
		return entities.FormField{}, ErrFieldNotFound
	}

	updated := existing
	if label := strings.TrimSpace(f.Label); label != "" {
		updated.Label = label
	}
	if !existing.Standard && f.Type != "" {
		if !f.Type.Valid() {
			return entities.FormField{}, ErrInvalidFieldType
		}
		updated.Type = f.Type
	}
	if f.Options != nil {
		updated.Options = f.Options
	}
	updated.Active = f.Active
	updated.Required = f.Required
	updated.ShowInList = f.ShowInList

	patch := entities.Row{
		"label":      updated.Label,
		"type":       string(updated.Type),
		"options":    updated.Options,
		"active":     updated.Active,
		"required":   updated.Required,
		"showInList": updated.ShowInList,
	}
	if err := u.fields.Update(ctx, updated, patch); err != nil {
		return entities.FormField{}, err
	}
	return updated, nil
}

// DeleteFormField removes a custom field and closes the gap in Order.
func (u *CatalogUseCase) DeleteFormField(ctx context.Context, id string) error {
	existing, ok, err := u.fields.Find(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFieldNotFound
	}
	if existing.Standard {
		return ErrStandardFieldDelete
	}
	if err := u.fields.Remove(ctx, id); err != nil {
		return err
	}
	all, err := u.ListFormFields(ctx)
	if err != nil {
		return err
	}
	_, err = u.resequence(ctx, all)
	return err
}

// ReorderFormFields moves the given ids to the front in that order; fields
// not named keep their relative order after them. Order is rewritten as
// 0..n-1 and only fields whose position changed are written.
func (u *CatalogUseCase) ReorderFormFields(ctx context.Context, ids []string) ([]entities.FormField, error) {
	all, err := u.ListFormFields(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.FormField, len(all))
	for _, f := range all {
		byID[f.ID] = f
	}

	ordered := make([]entities.FormField, 0, len(all))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		f, ok := byID[id]
		if !ok {
			return nil, ErrFieldNotFound
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, f)
	}
	for _, f := range all {
		if !seen[f.ID] {
			ordered = append(ordered, f)
		}
	}
	return u.resequence(ctx, ordered)
}

// SetListVisibility toggles ShowInList for several fields at once.
func (u *CatalogUseCase) SetListVisibility(ctx context.Context, visibility map[string]bool) ([]entities.FormField, error) {
	all, err := u.ListFormFields(ctx)
	if err != nil {
		return nil, err
	}
	for id := range visibility {
		found := false
		for _, f := range all {
			if f.ID == id {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrFieldNotFound
		}
	}
	for i, f := range all {
		show, ok := visibility[f.ID]
		if !ok || show == f.ShowInList {
			continue
		}
		f.ShowInList = show
		if err := u.fields.Update(ctx, f, entities.Row{"showInList": show}); err != nil {
			return nil, err
		}
		all[i] = f
	}
	return all, nil
}

func (u *CatalogUseCase) resequence(ctx context.Context, ordered []entities.FormField) ([]entities.FormField, error) {
	for i, f := range ordered {
		if f.Order == i {
			continue
		}
		f.Order = i
		if err := u.fields.Update(ctx, f, entities.Row{"order": i}); err != nil {
			return nil, err
		}
		ordered[i] = f
	}
	return ordered, nil
}

// SeedDefaults creates the standard form fields and the default workflow
// when their tables are empty.
func (u *CatalogUseCase) SeedDefaults(ctx context.Context) error {
	fields, err := u.fields.All(ctx)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		for _, f := range entities.DefaultFormFields() {
			if err := u.fields.Insert(ctx, f); err != nil {
				return err
			}
		}
		zap.L().Info("[catalog][usecase] default form fields created")
	}

	statuses, err := u.statuses.All(ctx)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		for _, s := range DefaultStatuses() {
			s.ID = nextID()
			if err := u.statuses.Insert(ctx, s); err != nil {
				return err
			}
		}
		zap.L().Info("[catalog][usecase] default statuses created")
	}
	return nil
}

func (u *CatalogUseCase) Watch(ctx context.Context, notifier interfaces.IChangeNotifier) (func(), error) {
	return watchAll(ctx, notifier, u.statuses.Watch, u.sectors.Watch, u.fields.Watch)
}

type watchFunc func(context.Context, interfaces.IChangeNotifier) (func(), error)

// watchAll subscribes every collection and returns one cancel for all of them.
func watchAll(ctx context.Context, notifier interfaces.IChangeNotifier, watchers ...watchFunc) (func(), error) {
	cancels := make([]func(), 0, len(watchers))
	cancelAll := func() {
		for _, c := range cancels {
			c()
		}
	}
	for _, w := range watchers {
		cancel, err := w(ctx, notifier)
		if err != nil {
			cancelAll()
			return nil, err
		}
		cancels = append(cancels, cancel)
	}
	return cancelAll, nil
}
