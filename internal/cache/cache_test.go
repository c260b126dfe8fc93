// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"reflect"
	"strconv"
	"sync"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	c := New[string, int]()
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	v, hit, err := c.GetOrCreate("warrior", create)
	if err != nil || hit || v != 42 {
		t.Fatalf("first GetOrCreate = %d, %v, %v; want 42, false, nil", v, hit, err)
	}
	v, hit, err = c.GetOrCreate("warrior", func() (int, error) {
		t.Fatal("create called for a cached key")
		return 0, nil
	})
	if err != nil || !hit || v != 42 {
		t.Fatalf("second GetOrCreate = %d, %v, %v; want 42, true, nil", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	stats := c.Stats()
	if stats.Len != 1 || stats.Hits != 1 || stats.Misses != 1 || stats.HitRate != 0.5 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestGetOrCreateError(t *testing.T) {
	c := New[string, int]()
	boom := errors.New("boom")

	if _, _, err := c.GetOrCreate("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Fatal("failed create was cached")
	}
	v, hit, err := c.GetOrCreate("k", func() (int, error) { return 7, nil })
	if err != nil || hit || v != 7 {
		t.Errorf("retry = %d, %v, %v; want 7, false, nil", v, hit, err)
	}
}

func TestRangeAndClear(t *testing.T) {
	c := New[string, int]()
	for i := range 3 {
		key := strconv.Itoa(i)
		c.GetOrCreate(key, func() (int, error) { return i, nil })
	}

	var keys []string
	c.Range(func(k string, _ int) bool {
		keys = append(keys, k)
		return k != "1"
	})
	if want := []string{"0", "1"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("Range visited %v, want %v", keys, want)
	}

	var released []int
	c.Clear(func(v int) { released = append(released, v) })
	if want := []int{2, 1, 0}; !reflect.DeepEqual(released, want) {
		t.Errorf("released %v, want %v", released, want)
	}
	if n := c.Stats().Len; n != 0 {
		t.Errorf("Len after Clear = %d", n)
	}
	c.Clear(nil)
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[int, int]()
	var mu sync.Mutex
	creates := map[int]int{}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := (i + g) % 10
				c.GetOrCreate(key, func() (int, error) {
					mu.Lock()
					creates[key]++
					mu.Unlock()
					return key * 2, nil
				})
			}
		}()
	}
	wg.Wait()

	for k, n := range creates {
		if n != 1 {
			t.Errorf("key %d created %d times", k, n)
		}
	}
	if n := c.Stats().Len; n != 10 {
		t.Errorf("Len = %d, want 10", n)
	}
}
