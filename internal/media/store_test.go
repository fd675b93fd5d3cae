package media

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// memStore keeps documents in insertion order and understands the equality
// and $gt filters issued by the service.
type memStore struct {
	mu   sync.Mutex
	docs map[string][]bson.M
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]bson.M)}
}

func (s *memStore) InsertRecord(_ context.Context, collection string, record any) error {
	raw, err := bson.Marshal(record)
	if err != nil {
		return err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], doc)
	return nil
}

func (s *memStore) FindRecords(_ context.Context, collection string, filter any, results any) error {
	f, ok := filter.(bson.M)
	if !ok {
		return fmt.Errorf("unsupported filter %T", filter)
	}

	out := reflect.ValueOf(results).Elem()
	out.Set(reflect.MakeSlice(out.Type(), 0, 0))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.docs[collection] {
		if !matches(doc, f) {
			continue
		}
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(out.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		out.Set(reflect.Append(out, elem.Elem()))
	}
	return nil
}

func (s *memStore) count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs[collection])
}

func matches(doc, filter bson.M) bool {
	for key, cond := range filter {
		if ops, ok := cond.(bson.M); ok {
			for op, want := range ops {
				if op != "$gt" {
					return false
				}
				got, ok1 := number(doc[key])
				limit, ok2 := number(want)
				if !ok1 || !ok2 || got <= limit {
					return false
				}
			}
			continue
		}
		if doc[key] != cond {
			return false
		}
	}
	return true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// storeConnector hands out the same store for every scope.
type storeConnector struct {
	store  Store
	scopes int
}

func (c *storeConnector) WithStore(_ context.Context, fn func(Store) error) error {
	c.scopes++
	return fn(c.store)
}
