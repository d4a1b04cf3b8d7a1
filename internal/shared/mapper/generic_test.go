package mapper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type srcItem struct {
	ID   uint
	Name string
}

type dstItem struct {
	Label string
}

func TestMapSlice(t *testing.T) {
	t.Run("nil input returns nil", func(t *testing.T) {
		got := MapSlice[int, string](nil, func(i int) string { return fmt.Sprintf("%d", i) })
		if got != nil {
			t.Errorf("want nil, got %v", got)
		}
	})

	t.Run("maps every element", func(t *testing.T) {
		got := MapSlice([]int{1, 2, 3}, func(i int) int { return i * 2 })
		want := []int{2, 4, 6}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})
}

func TestMapSliceWithError(t *testing.T) {
	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSliceWithError[int, string](nil, func(i int) (string, error) { return "", nil })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("want nil, got %v", got)
		}
	})

	t.Run("propagates mapping error", func(t *testing.T) {
		_, err := MapSliceWithError([]int{1, 2, 3}, func(i int) (string, error) {
			if i == 2 {
				return "", errors.New("mapping failed")
			}
			return fmt.Sprintf("%d", i), nil
		})
		if err == nil || !strings.Contains(err.Error(), "mapping failed") {
			t.Errorf("want mapping error, got %v", err)
		}
	})

	t.Run("successful mapping", func(t *testing.T) {
		got, err := MapSliceWithError([]int{1, 2}, func(i int) (string, error) {
			return fmt.Sprintf("num_%d", i), nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != "num_1" || got[1] != "num_2" {
			t.Errorf("unexpected result: %v", got)
		}
	})
}

func TestMapSlicePtrWithID(t *testing.T) {
	getID := func(s *srcItem) uint { return s.ID }

	t.Run("skips nil inputs", func(t *testing.T) {
		items := []*srcItem{{ID: 1, Name: "a"}, nil, {ID: 2, Name: "b"}}
		got, err := MapSlicePtrWithID(items, func(s *srcItem) (*dstItem, error) {
			return &dstItem{Label: s.Name}, nil
		}, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("skips nil outputs", func(t *testing.T) {
		items := []*srcItem{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
		got, err := MapSlicePtrWithID(items, func(s *srcItem) (*dstItem, error) {
			if s.ID == 1 {
				return nil, nil
			}
			return &dstItem{Label: s.Name}, nil
		}, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Label != "b" {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("error message carries the item ID", func(t *testing.T) {
		items := []*srcItem{{ID: 7, Name: "a"}}
		_, err := MapSlicePtrWithID(items, func(s *srcItem) (*dstItem, error) {
			return nil, errors.New("bad row")
		}, getID)
		if err == nil || !strings.Contains(err.Error(), "7") {
			t.Errorf("want error mentioning ID 7, got %v", err)
		}
	})
}
