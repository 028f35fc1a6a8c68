package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/nauticalflow/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nauticalflow/internal/dbx"
)

// SQLiteStore keeps the session record in the metadata table of the
// console's local database, so it survives restarts until an explicit
// logout.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLiteStore) GetToken(ctx context.Context) (string, error) {
	v, err := s.repo(s.db).Get(ctx, metadata.KeyToken)
	return string(v), err
}

func (s *SQLiteStore) GetDisplayName(ctx context.Context) (string, error) {
	v, err := s.repo(s.db).Get(ctx, metadata.KeyDisplayName)
	return string(v), err
}

func (s *SQLiteStore) SetSession(ctx context.Context, token, displayName string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyDisplayName, []byte(displayName))
	})
}

func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, metadata.KeyToken, metadata.KeyDisplayName)
}

func (s *SQLiteStore) SetLogoutReason(ctx context.Context, reason LogoutReason) error {
	if reason == ReasonNone {
		return s.repo(s.db).Delete(ctx, metadata.KeyLogoutReason)
	}
	return s.repo(s.db).Set(ctx, metadata.KeyLogoutReason, []byte(reason))
}

func (s *SQLiteStore) TakeLogoutReason(ctx context.Context) (LogoutReason, error) {
	var reason LogoutReason
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		v, err := repo.Get(ctx, metadata.KeyLogoutReason)
		if err != nil || v == nil {
			return err
		}
		reason = parseReason(string(v))
		return repo.Delete(ctx, metadata.KeyLogoutReason)
	})
	if err != nil {
		return ReasonNone, err
	}
	return reason, nil
}
