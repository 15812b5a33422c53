package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

func TestItemServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	valid := dom.Item{Name: "Metformin", Type: dom.ItemMedication, DosesPerDay: 2, Schedule: dom.EveryDay, Active: true}

	cases := []struct {
		name    string
		mutate  func(*dom.Item)
		wantErr error
	}{
		{"empty name", func(it *dom.Item) { it.Name = "" }, ErrNameRequired},
		{"whitespace name", func(it *dom.Item) { it.Name = "   " }, ErrNameRequired},
		{"bad type", func(it *dom.Item) { it.Type = "vitamin" }, ErrInvalidItemType},
		{"zero doses", func(it *dom.Item) { it.DosesPerDay = 0 }, ErrInvalidDoses},
		{"schedule out of range", func(it *dom.Item) { it.Schedule = dom.EveryDay + 1 }, ErrInvalidSchedule},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewItemService(&fakeItemRepo{}, nil)
			item := valid
			tc.mutate(&item)
			_, err := svc.Create(ctx, testUser, item)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	t.Run("valid item", func(t *testing.T) {
		svc := NewItemService(&fakeItemRepo{}, nil)
		created, err := svc.Create(ctx, testUser, valid)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID == 0 || created.UserID != testUser {
			t.Errorf("created = %+v, want assigned id and owner", created)
		}
	})
}

func TestItemServiceGetScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{}
	item := seedItem(repo, dom.Item{Name: "Iron", Type: dom.ItemSupplement, DosesPerDay: 1, Schedule: dom.EveryDay, Active: true})
	svc := NewItemService(repo, nil)

	if _, err := svc.Get(ctx, testUser, item.ID); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	if _, err := svc.Get(ctx, testUser+1, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign Get err = %v, want ErrNotFound", err)
	}
}

func TestItemServiceUpdatePartial(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{}
	item := seedItem(repo, dom.Item{Name: "Iron", Type: dom.ItemSupplement, DosesPerDay: 1, Schedule: dom.EveryDay, Notes: "with food", Active: true})
	svc := NewItemService(repo, nil)

	doses := 3
	active := false
	updated, err := svc.Update(ctx, testUser, item.ID, nil, nil, &doses, nil, nil, &active)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DosesPerDay != 3 || updated.Active {
		t.Errorf("updated = %+v, want doses 3 and inactive", updated)
	}
	if updated.Name != "Iron" || updated.Notes != "with food" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	bad := ""
	if _, err := svc.Update(ctx, testUser, item.ID, &bad, nil, nil, nil, nil, nil); !errors.Is(err, ErrNameRequired) {
		t.Errorf("empty-name patch err = %v, want ErrNameRequired", err)
	}
	if _, err := svc.Update(ctx, testUser, 999, nil, nil, &doses, nil, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing item err = %v, want ErrNotFound", err)
	}
}
