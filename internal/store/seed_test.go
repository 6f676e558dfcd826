// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nexiotech/sitegate/internal/model"
)

func TestSeedPopulatesSnapshots(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := Seed(ctx, db, true); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	q := New(db)
	payload, _, err := q.GetContentSnapshot(ctx, "products")
	if err != nil {
		t.Fatalf("GetContentSnapshot: %v", err)
	}
	if payload == nil {
		t.Fatal("products snapshot not seeded")
	}

	var products []model.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		t.Fatalf("decoding seeded products: %v", err)
	}
	if len(products) == 0 {
		t.Error("seeded products snapshot is empty")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	if err := q.SaveContentSnapshot(ctx, "products", []byte(`[{"id":99}]`)); err != nil {
		t.Fatalf("SaveContentSnapshot: %v", err)
	}

	if err := Seed(ctx, db, true); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	payload, _, err := q.GetContentSnapshot(ctx, "products")
	if err != nil {
		t.Fatalf("GetContentSnapshot: %v", err)
	}
	if string(payload) != `[{"id":99}]` {
		t.Errorf("Seed overwrote existing snapshot: %s", payload)
	}
}

func TestSeedDisabled(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := Seed(ctx, db, false); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	payload, _, err := New(db).GetContentSnapshot(ctx, "products")
	if err != nil {
		t.Fatalf("GetContentSnapshot: %v", err)
	}
	if payload != nil {
		t.Error("Seed wrote snapshots while disabled")
	}
}
