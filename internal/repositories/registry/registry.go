package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/observe"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

// Kind describes one named entity collection. ErrNotFound is wrapped by
// every lookup miss and New builds a fresh record.
type Kind[E model.Entity] struct {
	Name        string
	ErrNotFound error
	New         func(id int, name string) E
}

// Repo is a repository for entities that carry an id and a name.
// Each call reloads the whole collection, applies one change and writes it back.
// The lock serialises calls on this instance only.
type Repo[E model.Entity] struct {
	lock     sync.Mutex
	store    persistence.Store[E]
	kind     Kind[E]
	observer *observe.Observer
}

func NewRepo[E model.Entity](store persistence.Store[E], kind Kind[E], opts ...observe.Option) *Repo[E] {
	return &Repo[E]{
		store:    store,
		kind:     kind,
		observer: observe.New(kind.Name, opts...),
	}
}

// Create appends a new entity with the next free id. Ids are never reused.
func (r *Repo[E]) Create(name string) (E, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	span := r.observer.Start("create")
	created, err := r.create(span, name)
	span.End(err)
	return created, err
}

func (r *Repo[E]) create(span *observe.Span, name string) (E, error) {
	var zero E

	entities, err := r.store.LoadAll()
	if errors.Is(err, persistence.ErrStoreNotExist) {
		span.Logger().Info("storage does not exist, creating it", "source", r.store.Source())
		if err := r.store.SaveAll(nil); err != nil {
			return zero, fmt.Errorf("failed to create %s storage: %w", r.kind.Name, err)
		}
		entities = nil
	} else if err != nil {
		return zero, fmt.Errorf("failed to read %s storage: %w", r.kind.Name, err)
	}

	slices.SortStableFunc(entities, func(a, b E) int {
		return cmp.Compare(a.Identity(), b.Identity())
	})

	lastID := 0
	if len(entities) > 0 {
		lastID = entities[len(entities)-1].Identity()
	}

	created := r.kind.New(lastID+1, name)
	entities = append(entities, created)

	if err := r.save(span, entities); err != nil {
		return zero, err
	}

	return created, nil
}

func (r *Repo[E]) Delete(id int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	span := r.observer.Start("delete")
	err := r.delete(span, id)
	span.End(err)
	return err
}

func (r *Repo[E]) delete(span *observe.Span, id int) error {
	entities, idx, err := r.find(id)
	if err != nil {
		return err
	}

	entities = slices.Delete(entities, idx, idx+1)
	return r.save(span, entities)
}

func (r *Repo[E]) Read(id int) (E, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	span := r.observer.Start("read")
	entity, err := r.read(id)
	span.End(err)
	return entity, err
}

func (r *Repo[E]) read(id int) (E, error) {
	entities, idx, err := r.find(id)
	if err != nil {
		var zero E
		return zero, err
	}
	return entities[idx], nil
}

// Update replaces the entity with a freshly built one; nothing of the old record is kept but the id.
func (r *Repo[E]) Update(id int, name string) (E, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	span := r.observer.Start("update")
	updated, err := r.update(span, id, name)
	span.End(err)
	return updated, err
}

func (r *Repo[E]) update(span *observe.Span, id int, name string) (E, error) {
	var zero E

	entities, idx, err := r.find(id)
	if err != nil {
		return zero, err
	}

	updated := r.kind.New(id, name)
	entities[idx] = updated

	if err := r.save(span, entities); err != nil {
		return zero, err
	}
	return updated, nil
}

// find loads the collection and locates id. A missing collection counts as not found.
func (r *Repo[E]) find(id int) ([]E, int, error) {
	entities, err := r.store.LoadAll()
	if err != nil {
		if errors.Is(err, persistence.ErrStoreNotExist) {
			return nil, -1, fmt.Errorf("%w: id: %d: %w", r.kind.ErrNotFound, id, err)
		}
		return nil, -1, fmt.Errorf("failed to read %s storage: %w", r.kind.Name, err)
	}

	idx := slices.IndexFunc(entities, func(e E) bool {
		return e.Identity() == id
	})
	if idx < 0 {
		return nil, -1, fmt.Errorf("%w: id: %d", r.kind.ErrNotFound, id)
	}

	return entities, idx, nil
}

func (r *Repo[E]) save(span *observe.Span, entities []E) error {
	if err := r.store.SaveAll(entities); err != nil {
		return fmt.Errorf("failed to store %s: %w", r.kind.Name, err)
	}
	span.Saved(len(entities))
	return nil
}
