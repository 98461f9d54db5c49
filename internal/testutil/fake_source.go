package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"council-portal-api/internal/remote"
)

// ErrDown is the cause wrapped by FakeSource failures set with Fail.
var ErrDown = errors.New("remote store is down")

// FakeSource is an in-memory remote.Source. Rows are copied into dst through
// JSON, so any value whose JSON shape matches the destination row type works.
type FakeSource struct {
	mu       sync.Mutex
	rows     map[string]any
	errs     map[string]error
	fetches  map[string]int
	inserted map[string][]any
	// Gate, when set, blocks every fetch until it is closed.
	Gate chan struct{}
}

// NewFakeSource returns an empty FakeSource.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		rows:     make(map[string]any),
		errs:     make(map[string]error),
		fetches:  make(map[string]int),
		inserted: make(map[string][]any),
	}
}

// Put sets the rows returned for resource.
func (f *FakeSource) Put(resource string, rows any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[resource] = rows
}

// Fail makes every call on resource fail with kind.
func (f *FakeSource) Fail(resource string, kind remote.Kind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[resource] = &remote.Error{Op: "fake", Resource: resource, Kind: kind, Err: ErrDown}
}

// Recover clears a failure set with Fail.
func (f *FakeSource) Recover(resource string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.errs, resource)
}

// Fetches returns how many fetches reached resource.
func (f *FakeSource) Fetches(resource string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches[resource]
}

// Inserted returns the records inserted into resource.
func (f *FakeSource) Inserted(resource string) []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.inserted[resource]...)
}

// Calls returns the total number of fetches and inserts across resources.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.fetches {
		n += c
	}
	for _, recs := range f.inserted {
		n += len(recs)
	}
	return n
}

func (f *FakeSource) FetchCollection(ctx context.Context, resource string, _ remote.Query, dst any) error {
	return f.fetch(ctx, resource, dst)
}

func (f *FakeSource) FetchJoined(ctx context.Context, resource string, _ []string, dst any) error {
	return f.fetch(ctx, resource, dst)
}

func (f *FakeSource) InsertRecord(_ context.Context, resource string, record any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[resource]; err != nil {
		return err
	}
	f.inserted[resource] = append(f.inserted[resource], record)
	return nil
}

func (f *FakeSource) fetch(ctx context.Context, resource string, dst any) error {
	f.mu.Lock()
	f.fetches[resource]++
	gate := f.Gate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return &remote.Error{Op: "fake", Resource: resource, Kind: remote.KindTimeout, Err: ctx.Err()}
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[resource]; err != nil {
		return err
	}
	rows, ok := f.rows[resource]
	if !ok {
		return nil
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

var _ remote.Source = (*FakeSource)(nil)
