package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	basecache "github.com/riskibarqy/spartakiad-scoring/internal/platform/cache"
)

const (
	sportKeyPrefix   = "sport:"
	facultyKeyPrefix = "faculty:"
)

// SportTypeRepository serves sport type reads from the cache. Creates go to
// next and drop every cached sport key.
type SportTypeRepository struct {
	next  sport.Repository
	cache *basecache.Store
}

func NewSportTypeRepository(next sport.Repository, cache *basecache.Store) *SportTypeRepository {
	return &SportTypeRepository{next: next, cache: cache}
}

func (r *SportTypeRepository) List(ctx context.Context) ([]sport.SportType, error) {
	items, err := basecache.Load(ctx, r.cache, sportKeyPrefix+"list", func(ctx context.Context) ([]sport.SportType, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return append([]sport.SportType(nil), items...), nil
}

func (r *SportTypeRepository) GetByID(ctx context.Context, id int64) (sport.SportType, bool, error) {
	key := sportKeyPrefix + "id:" + strconv.FormatInt(id, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedByID[sport.SportType], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return cachedByID[sport.SportType]{}, err
		}
		return cachedByID[sport.SportType]{value: item, exists: exists}, nil
	})
	if err != nil {
		return sport.SportType{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *SportTypeRepository) Create(ctx context.Context, item sport.SportType) (sport.SportType, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return sport.SportType{}, err
	}
	r.cache.DeletePrefix(ctx, sportKeyPrefix)
	return created, nil
}

// FacultyRepository caches faculty and group reads.
type FacultyRepository struct {
	next  faculty.Repository
	cache *basecache.Store
}

func NewFacultyRepository(next faculty.Repository, cache *basecache.Store) *FacultyRepository {
	return &FacultyRepository{next: next, cache: cache}
}

func (r *FacultyRepository) List(ctx context.Context) ([]faculty.Faculty, error) {
	items, err := basecache.Load(ctx, r.cache, facultyKeyPrefix+"list", func(ctx context.Context) ([]faculty.Faculty, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return append([]faculty.Faculty(nil), items...), nil
}

func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (faculty.Faculty, bool, error) {
	key := facultyKeyPrefix + "id:" + strconv.FormatInt(id, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedByID[faculty.Faculty], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return cachedByID[faculty.Faculty]{}, err
		}
		return cachedByID[faculty.Faculty]{value: item, exists: exists}, nil
	})
	if err != nil {
		return faculty.Faculty{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *FacultyRepository) Create(ctx context.Context, item faculty.Faculty) (faculty.Faculty, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return faculty.Faculty{}, err
	}
	r.cache.DeletePrefix(ctx, facultyKeyPrefix)
	return created, nil
}

func (r *FacultyRepository) ListGroups(ctx context.Context) ([]faculty.Group, error) {
	items, err := basecache.Load(ctx, r.cache, facultyKeyPrefix+"groups", func(ctx context.Context) ([]faculty.Group, error) {
		return r.next.ListGroups(ctx)
	})
	if err != nil {
		return nil, err
	}
	return append([]faculty.Group(nil), items...), nil
}

func (r *FacultyRepository) CreateGroup(ctx context.Context, item faculty.Group) (faculty.Group, error) {
	created, err := r.next.CreateGroup(ctx, item)
	if err != nil {
		return faculty.Group{}, err
	}
	r.cache.DeletePrefix(ctx, facultyKeyPrefix)
	return created, nil
}

type cachedByID[T any] struct {
	value  T
	exists bool
}

// Invalidator drops every cached catalog read. Bulk rewrites such as a reset
// bypass the decorated repositories and call it afterwards.
type Invalidator struct {
	cache *basecache.Store
}

func NewInvalidator(cache *basecache.Store) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) Invalidate(ctx context.Context) {
	i.cache.DeletePrefix(ctx, sportKeyPrefix)
	i.cache.DeletePrefix(ctx, facultyKeyPrefix)
}
