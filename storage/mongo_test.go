package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/dcode-github/property_valuation/models"
	"github.com/dcode-github/property_valuation/valuation"
)

func valuationDoc(id, owner string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
		{Key: "descriptor", Value: bson.D{
			{Key: "city", Value: "Pune"},
			{Key: "neighborhood", Value: "Baner"},
			{Key: "size", Value: 1200.0},
			{Key: "bedrooms", Value: int32(2)},
		}},
		{Key: "result", Value: bson.D{{Key: "price", Value: int64(21_300_000)}, {Key: "confidence", Value: 0.86}}},
		{Key: "createdAt", Value: createdAt},
	}
}

// sentFilterOwner returns the owner in the filter of the last command sent.
func sentFilterOwner(mt *mtest.T, filterKey string) string {
	mt.Helper()
	evt := mt.GetStartedEvent()
	if evt == nil {
		mt.Fatal("no command was sent")
	}
	v, err := evt.Command.LookupErr(filterKey)
	if err != nil {
		mt.Fatalf("command %s has no %s: %v", evt.CommandName, filterKey, err)
	}
	if filterKey == "deletes" {
		v = v.Array().Index(0).Value().Document().Lookup("q")
	}
	return v.Document().Lookup("owner").StringValue()
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	mt.Run("get scoped to owner", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, valuationDoc("v1", "user-1", now)))

		v, err := store.Get(ctx, "user-1", "v1")
		if err != nil {
			mt.Fatalf("Get: %v", err)
		}
		if v.ID != "v1" || v.Descriptor.City != valuation.Pune || v.Result.Price != 21_300_000 || !v.CreatedAt.Equal(now) {
			mt.Errorf("decoded %+v", v)
		}
		if owner := sentFilterOwner(mt, "filter"); owner != "user-1" {
			mt.Errorf("filter owner = %q; want user-1", owner)
		}
	})

	mt.Run("get missing maps to ErrNotFound", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		if _, err := store.Get(ctx, "user-2", "v1"); !errors.Is(err, ErrNotFound) {
			mt.Errorf("err = %v; want ErrNotFound", err)
		}
	})

	mt.Run("list", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			valuationDoc("v2", "user-1", now),
			valuationDoc("v1", "user-1", now.Add(-time.Hour)),
		))

		list, err := store.List(ctx, "user-1", 5)
		if err != nil {
			mt.Fatalf("List: %v", err)
		}
		if len(list) != 2 || list[0].ID != "v2" || list[1].ID != "v1" {
			mt.Errorf("List = %+v", list)
		}
		if owner := sentFilterOwner(mt, "filter"); owner != "user-1" {
			mt.Errorf("filter owner = %q; want user-1", owner)
		}
	})

	mt.Run("list empty is not nil", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		list, err := store.List(ctx, "nobody", 5)
		if err != nil || list == nil || len(list) != 0 {
			mt.Errorf("List = %#v, %v; want empty non-nil slice", list, err)
		}
	})

	mt.Run("save", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := store.Save(ctx, &models.SavedValuation{ID: "v3", Owner: "user-1", CreatedAt: now}); err != nil {
			mt.Errorf("Save: %v", err)
		}
	})

	mt.Run("save duplicate maps to ErrConflict", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		if err := store.Save(ctx, &models.SavedValuation{ID: "v3", Owner: "user-1"}); !errors.Is(err, ErrConflict) {
			mt.Errorf("err = %v; want ErrConflict", err)
		}
	})

	mt.Run("delete", func(mt *mtest.T) {
		store := &MongoStore{collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		deleted, err := store.Delete(ctx, "user-1", "v1")
		if err != nil || !deleted {
			mt.Errorf("Delete = %v, %v; want true", deleted, err)
		}
		if owner := sentFilterOwner(mt, "deletes"); owner != "user-1" {
			mt.Errorf("delete filter owner = %q; want user-1", owner)
		}

		deleted, err = store.Delete(ctx, "user-2", "v1")
		if err != nil || deleted {
			mt.Errorf("Delete by another owner = %v, %v; want false", deleted, err)
		}
	})
}
