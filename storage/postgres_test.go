package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/dcode-github/property_valuation/valuation"
)

type fakeRow struct {
	id, owner          string
	descriptor, result []byte
	createdAt          time.Time
	err                error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.id
	*dest[1].(*string) = r.owner
	*dest[2].(*[]byte) = r.descriptor
	*dest[3].(*[]byte) = r.result
	*dest[4].(*time.Time) = r.createdAt
	return nil
}

func TestScanValuation(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	row := fakeRow{
		id:         "abc",
		owner:      "user-1",
		descriptor: []byte(`{"city":"Pune","neighborhood":"Baner","propertyType":"Villa","size":2200,"bedrooms":4,"bathrooms":3,"age":2,"furnishing":"Unfurnished","amenities":["Gym","Garden"]}`),
		result:     []byte(`{"price":45600000,"confidence":0.86,"breakdown":{"baseRate":15000}}`),
		createdAt:  now,
	}

	v, err := scanValuation(row)
	if err != nil {
		t.Fatalf("scanValuation: %v", err)
	}
	if v.ID != "abc" || v.Owner != "user-1" || !v.CreatedAt.Equal(now) {
		t.Errorf("unexpected identity fields: %+v", v)
	}
	if v.Descriptor.City != valuation.Pune || v.Descriptor.SizeSqFt != 2200 || len(v.Descriptor.Amenities) != 2 {
		t.Errorf("descriptor decoded as %+v", v.Descriptor)
	}
	if v.Result.Price != 45_600_000 || v.Result.Breakdown.BaseRate != 15000 {
		t.Errorf("result decoded as %+v", v.Result)
	}
}

func TestScanValuationErrors(t *testing.T) {
	if _, err := scanValuation(fakeRow{err: sql.ErrNoRows}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v; want sql.ErrNoRows", err)
	}

	bad := fakeRow{descriptor: []byte(`{`), result: []byte(`{}`)}
	if _, err := scanValuation(bad); err == nil {
		t.Error("expected a decode error for malformed descriptor JSON")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{&pq.Error{Code: "23505"}, true},
		{fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"}), true},
		{&pq.Error{Code: "23503"}, false},
	}
	for _, tt := range tests {
		if got := isUniqueViolation(tt.err); got != tt.want {
			t.Errorf("isUniqueViolation(%v) = %v; want %v", tt.err, got, tt.want)
		}
	}
}
