package adapter_test

import "strings"

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// store is the demo wrapped object used across the package tests: a tiny
// key/value bag with a teardown counter.
type store struct {
	data   map[string]string
	closes int
}

func newStore() *store {
	return &store{data: map[string]string{}}
}

func (s *store) Put(key, value string) {
	s.data[key] = value
}

func (s *store) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *store) Len() int {
	return len(s.data)
}

func (s *store) Sum(a, b int) int {
	return a + b
}

func (s *store) Join(sep string, parts ...string) string {
	return strings.Join(parts, sep)
}

func (s *store) Close() error {
	s.closes++
	return nil
}

// ticker exposes the alternate teardown spelling.
type ticker struct {
	torn int
}

func (t *ticker) Teardown() {
	t.torn++
}

// plain has no teardown at all.
type plain struct {
	N int
}

// Value-receiver methods so plain works when wrapped as a struct value.
func (p plain) Double() int { return p.N * 2 }
