package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/offer"

	"github.com/google/uuid"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d vs %d", len(dest), len(r.vals))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			val, ok := r.vals[i].(uuid.UUID)
			if !ok {
				return fmt.Errorf("scan type mismatch uuid at %d", i)
			}
			*d = val
		case *string:
			val, ok := r.vals[i].(string)
			if !ok {
				return fmt.Errorf("scan type mismatch string at %d", i)
			}
			*d = val
		case *[]string:
			val, ok := r.vals[i].([]string)
			if !ok {
				return fmt.Errorf("scan type mismatch []string at %d", i)
			}
			*d = val
		case *[]byte:
			if r.vals[i] == nil {
				*d = nil
				continue
			}
			val, ok := r.vals[i].([]byte)
			if !ok {
				return fmt.Errorf("scan type mismatch []byte at %d", i)
			}
			*d = val
		case *time.Time:
			val, ok := r.vals[i].(time.Time)
			if !ok {
				return fmt.Errorf("scan type mismatch time at %d", i)
			}
			*d = val
		default:
			return fmt.Errorf("unsupported scan type %T", dest[i])
		}
	}
	return nil
}

type fakeDB struct {
	query string
	args  []any
	row   fakeRow
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }

func (db *fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }

func (db *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	db.query = query
	db.args = args
	return db.row
}

// offerRowFor mirrors the offerColumns order.
func offerRowFor(o offer.JobOffer) fakeRow {
	return fakeRow{vals: []any{
		o.ID, o.UserID, o.CompanyName, o.PositionTitle, o.JobDescription, o.JobURL,
		o.Location, o.CompanyDescription, string(o.Status), o.TechStack, []byte(nil),
		o.CoverLetter, o.UserNotes, o.ApplicationDate, o.CreatedAt, o.UpdatedAt,
	}}
}

func TestPostgresOfferRepository_GetByID_ScopesToOwner(t *testing.T) {
	// A row owned by someone else matches no rows, same as a missing id.
	db := &fakeDB{row: fakeRow{err: sql.ErrNoRows}}
	repo := NewPostgresOfferRepository(db)

	userID := uuid.New()
	offerID := uuid.New()

	_, err := repo.GetByID(context.Background(), userID, offerID)
	if !errors.Is(err, offer.ErrNotFound) {
		t.Fatalf("expected offer.ErrNotFound, got %v", err)
	}

	if !strings.Contains(db.query, "user_id = $2") {
		t.Fatalf("lookup does not filter on the owner: %s", db.query)
	}
	if len(db.args) != 2 || db.args[0] != offerID || db.args[1] != userID {
		t.Fatalf("unexpected lookup args: %v", db.args)
	}
}

func TestPostgresOfferRepository_Create_Defaults(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()
	db := &fakeDB{row: offerRowFor(offer.JobOffer{
		ID: uuid.New(), UserID: userID, CompanyName: "Acme", PositionTitle: "Backend",
		JobDescription: "desc", Status: offer.StatusNotSent, TechStack: []string{},
		ApplicationDate: now, CreatedAt: now, UpdatedAt: now,
	})}
	repo := NewPostgresOfferRepository(db)

	got, err := repo.Create(context.Background(), offer.JobOffer{
		UserID:         userID,
		CompanyName:    "Acme",
		PositionTitle:  "Backend",
		JobDescription: "desc",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != offer.StatusNotSent {
		t.Fatalf("expected default status, got %q", got.Status)
	}

	// Insert arg order: id, user_id, ..., status ($9), tech_stack ($10), ...,
	// application_date ($14).
	if len(db.args) != 14 {
		t.Fatalf("expected 14 insert args, got %d", len(db.args))
	}
	if id, ok := db.args[0].(uuid.UUID); !ok || id == uuid.Nil {
		t.Fatalf("expected a generated id, got %v", db.args[0])
	}
	if db.args[8] != string(offer.StatusNotSent) {
		t.Fatalf("expected default status not_sent, got %v", db.args[8])
	}
	if ts, ok := db.args[9].([]string); !ok || ts == nil || len(ts) != 0 {
		t.Fatalf("expected empty tech stack, got %v", db.args[9])
	}
	appDate, ok := db.args[13].(time.Time)
	if !ok {
		t.Fatalf("expected application date arg, got %v", db.args[13])
	}
	y, m, d := appDate.UTC().Date()
	wy, wm, wd := time.Now().UTC().Date()
	if y != wy || m != wm || d != wd {
		t.Fatalf("expected application date defaulted to today, got %v", appDate)
	}
}

func TestPostgresOfferRepository_UpdateCoverLetter_SingleOwnerScopedStatement(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()
	now := time.Now().UTC()
	db := &fakeDB{row: offerRowFor(offer.JobOffer{
		ID: offerID, UserID: userID, CompanyName: "Acme", PositionTitle: "Backend",
		JobDescription: "desc", Status: offer.StatusApplied, TechStack: []string{},
		CoverLetter: `{"conseil_ouverture":"x"}`, UserNotes: "notes",
		ApplicationDate: now, CreatedAt: now, UpdatedAt: now,
	})}
	repo := NewPostgresOfferRepository(db)

	_, err := repo.UpdateCoverLetter(context.Background(), userID, offerID, `{"conseil_ouverture":"x"}`, "notes")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !strings.Contains(db.query, "cover_letter = $1, user_notes = $2") {
		t.Fatalf("advice and notes are not written in one statement: %s", db.query)
	}
	if !strings.Contains(db.query, "user_id = $4") {
		t.Fatalf("update does not filter on the owner: %s", db.query)
	}
	if len(db.args) != 4 || db.args[2] != offerID || db.args[3] != userID {
		t.Fatalf("unexpected update args: %v", db.args)
	}
}
