package http

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// memStore mimics one collection: insertion ordered, copies in and out.
type memStore[T any] struct {
	mu    sync.Mutex
	model string
	idOf  func(*T) primitive.ObjectID
	docs  []*T
	fail  error
}

func newMemStore[T any](model string, idOf func(*T) primitive.ObjectID) *memStore[T] {
	return &memStore[T]{model: model, idOf: idOf}
}

func clone[T any](doc *T) *T {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		panic(err)
	}
	return out
}

func (m *memStore[T]) Save(_ context.Context, doc *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return apperror.NewInternal("insert", m.fail)
	}
	m.docs = append(m.docs, clone(doc))
	return nil
}

func (m *memStore[T]) FindAll(_ context.Context) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, apperror.NewInternal("find", m.fail)
	}
	out := make([]*T, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, clone(d))
	}
	return out, nil
}

func (m *memStore[T]) FindFirst(_ context.Context) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, apperror.NewInternal("find", m.fail)
	}
	if len(m.docs) == 0 {
		return nil, apperror.NewNotFound(m.model, "")
	}
	return clone(m.docs[0]), nil
}

func (m *memStore[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, apperror.NewInternal("find", m.fail)
	}
	if i := m.index(id); i >= 0 {
		return clone(m.docs[i]), nil
	}
	return nil, apperror.NewNotFound(m.model, id.Hex())
}

// Update copies the named fields from doc onto the stored copy, dropping
// the ones doc leaves unset.
func (m *memStore[T]) Update(_ context.Context, doc *T, fields []string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, apperror.NewInternal("update", m.fail)
	}
	i := m.index(m.idOf(doc))
	if i < 0 {
		return nil, apperror.NewNotFound(m.model, m.idOf(doc).Hex())
	}

	stored, changes := toFields(m.docs[i]), toFields(doc)
	for _, f := range fields {
		if v, ok := changes[f]; ok {
			stored[f] = v
		} else {
			delete(stored, f)
		}
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		panic(err)
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		panic(err)
	}
	m.docs[i] = out
	return clone(out), nil
}

func toFields[T any](doc *T) map[string]json.RawMessage {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		panic(err)
	}
	return fields
}

func (m *memStore[T]) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return apperror.NewInternal("delete", m.fail)
	}
	i := m.index(id)
	if i < 0 {
		return apperror.NewNotFound(m.model, id.Hex())
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return nil
}

func (m *memStore[T]) index(id primitive.ObjectID) int {
	for i, d := range m.docs {
		if m.idOf(d) == id {
			return i
		}
	}
	return -1
}

func (m *memStore[T]) setFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

type fakeProjectRepo struct{ *memStore[project.Project] }

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{newMemStore(project.ModelName, func(p *project.Project) primitive.ObjectID { return p.ID })}
}

type fakeProfileRepo struct{ *memStore[profile.Profile] }

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{newMemStore(profile.ModelName, func(p *profile.Profile) primitive.ObjectID { return p.ID })}
}

type fakeExperienceRepo struct{ *memStore[experience.Experience] }

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{newMemStore(experience.ModelName, func(e *experience.Experience) primitive.ObjectID { return e.ID })}
}

// FindAll orders by period text, descending, like the collection sort.
func (r *fakeExperienceRepo) FindAll(ctx context.Context) ([]*experience.Experience, error) {
	list, err := r.memStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Period > list[j].Period })
	return list, nil
}
