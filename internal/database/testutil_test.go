package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
)

type TestDataBuilder struct {
	t   *testing.T
	ctx context.Context
	db  *Database
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithPresets(presets ...models.Preset) *TestDataBuilder {
	b.t.Helper()
	if err := b.db.SeedPresets(b.ctx, presets); err != nil {
		b.t.Fatalf("SeedPresets failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) WithCountdowns(count int) *TestDataBuilder {
	b.t.Helper()
	base := testutil.NewCountdown().Build().StartedAt
	for i := 0; i < count; i++ {
		c := testutil.NewCountdown().StartedAt(base.Add(time.Duration(i) * time.Hour)).Build()
		if _, err := b.db.RecordCountdown(b.ctx, c); err != nil {
			b.t.Fatalf("RecordCountdown failed: %v", err)
		}
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
