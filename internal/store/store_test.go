package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() domain.UserProfile {
	spouse := decimal.NewFromInt(900000)
	return domain.UserProfile{
		AnnualIncome:     decimal.NewFromInt(4800000),
		EmploymentStatus: []domain.EmploymentStatus{domain.EmploymentEmployed},
		HasSpouse:        true,
		SpouseIncome:     &spouse,
		NumberOfChildren: 2,
		ChildrenAges:     []int{4, 1},
	}
}

// stores returns a fresh instance of every implementation
func stores(t *testing.T) map[string]ProfileStore {
	t.Helper()

	sqlite, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]ProfileStore{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestProfileStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := s.Save(ctx, StoredProfile{Name: "tanaka", Profile: sampleProfile()})
			require.NoError(t, err)
			assert.NotEmpty(t, saved.ID, "Should assign an id")
			assert.False(t, saved.CreatedAt.IsZero())
			assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

			got, err := s.Get(ctx, saved.ID)
			require.NoError(t, err)
			assert.Equal(t, "tanaka", got.Name)
			assert.True(t, got.Profile.AnnualIncome.Equal(decimal.NewFromInt(4800000)))
			require.NotNil(t, got.Profile.SpouseIncome)
			assert.True(t, got.Profile.SpouseIncome.Equal(decimal.NewFromInt(900000)))
			assert.Equal(t, []int{4, 1}, got.Profile.ChildrenAges, "Should keep birth order")
			assert.Equal(t, []domain.EmploymentStatus{domain.EmploymentEmployed}, got.Profile.EmploymentStatus)
			assert.True(t, got.CreatedAt.Equal(saved.CreatedAt))
		})
	}
}

func TestProfileStore_Update(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := s.Save(ctx, StoredProfile{Name: "before", Profile: sampleProfile()})
			require.NoError(t, err)

			saved.Name = "after"
			saved.Profile.IsPregnant = true
			updated, err := s.Save(ctx, saved)
			require.NoError(t, err)
			assert.Equal(t, saved.ID, updated.ID)
			assert.True(t, updated.CreatedAt.Equal(saved.CreatedAt), "Should keep creation time")

			got, err := s.Get(ctx, saved.ID)
			require.NoError(t, err)
			assert.Equal(t, "after", got.Name)
			assert.True(t, got.Profile.IsPregnant)

			_, err = s.Save(ctx, StoredProfile{ID: "missing", Profile: sampleProfile()})
			assert.True(t, errors.Is(err, ErrNotFound), "Updating an unknown id should fail")
		})
	}
}

func TestProfileStore_RejectsInvalidProfile(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			p := sampleProfile()
			p.AnnualIncome = decimal.NewFromInt(-1)

			_, err := s.Save(ctx, StoredProfile{Name: "bad", Profile: p})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidProfile))

			list, err := s.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, list, "Should not persist an invalid profile")
		})
	}
}

func TestProfileStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.Save(ctx, StoredProfile{Name: "first", Profile: sampleProfile()})
			require.NoError(t, err)
			second, err := s.Save(ctx, StoredProfile{Name: "second", Profile: sampleProfile()})
			require.NoError(t, err)

			list, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			ids := []string{list[0].ID, list[1].ID}
			assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)

			require.NoError(t, s.Delete(ctx, first.ID))
			_, err = s.Get(ctx, first.ID)
			assert.True(t, errors.Is(err, ErrNotFound))

			err = s.Delete(ctx, first.ID)
			assert.True(t, errors.Is(err, ErrNotFound), "Deleting twice should report not found")

			list, err = s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, second.ID, list[0].ID)
		})
	}
}

// setClock makes s stamp saves with each of times in turn
func setClock(t *testing.T, s ProfileStore, times ...time.Time) {
	t.Helper()
	next := 0
	clock := func() time.Time {
		now := times[next]
		next++
		return now
	}
	switch st := s.(type) {
	case *MemoryStore:
		st.now = clock
	case *SQLiteStore:
		st.now = clock
	default:
		t.Fatalf("unknown store %T", s)
	}
}

func TestProfileStore_ListOrdersByCreationTime(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 5, 0, time.UTC)
	// saved out of time order, with fractions of differing lengths
	saves := []struct {
		name   string
		offset time.Duration
	}{
		{"half", 500 * time.Millisecond},
		{"whole", 0},
		{"twelve", 120 * time.Millisecond},
		{"tenth", 100 * time.Millisecond},
	}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			times := make([]time.Time, len(saves))
			for i, sv := range saves {
				times[i] = base.Add(sv.offset)
			}
			setClock(t, s, times...)

			for _, sv := range saves {
				_, err := s.Save(ctx, StoredProfile{Name: sv.name, Profile: sampleProfile()})
				require.NoError(t, err)
			}

			list, err := s.List(ctx)
			require.NoError(t, err)
			names := make([]string, len(list))
			for i, p := range list {
				names[i] = p.Name
			}
			assert.Equal(t, []string{"whole", "tenth", "twelve", "half"}, names)
			assert.True(t, list[0].CreatedAt.Equal(base))
		})
	}
}

func TestFormatTime_FixedWidth(t *testing.T) {
	whole := formatTime(time.Date(2026, 4, 1, 0, 0, 5, 0, time.UTC))
	half := formatTime(time.Date(2026, 4, 1, 0, 0, 5, 500000000, time.UTC))

	assert.Equal(t, "2026-04-01T00:00:05.000000000Z", whole)
	assert.Len(t, half, len(whole))
	assert.Less(t, whole, half)

	parsed, err := parseTime(half)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, parsed.Sub(time.Date(2026, 4, 1, 0, 0, 5, 0, time.UTC)))
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	saved, err := s.Save(ctx, StoredProfile{Name: "copy", Profile: sampleProfile()})
	require.NoError(t, err)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	got.Profile.ChildrenAges[0] = 99

	again, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Profile.ChildrenAges[0], "Mutating a returned profile should not leak into the store")
}

func TestOpenSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	saved, err := s.Save(ctx, StoredProfile{Name: "persisted", Profile: sampleProfile()})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Name)
}
