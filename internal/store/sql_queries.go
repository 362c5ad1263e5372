// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-ad-board/models"
	"github.com/Masterminds/squirrel"
)

// Query construction for all repositories. Statements are built with
// squirrel so that the placeholder format follows the driver the DB handle
// was opened with ($1 for PostgreSQL, ? for SQLite).

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func (db *DB) selectUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select("user_id", "username", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		ToSql()
}

func (db *DB) insertAdvertisementQuery(ad models.Advertisement) (string, []any, error) {
	return db.builder.
		Insert(ad.TableName()).
		Columns("title", "description", "creation_date", "owner_id").
		Values(ad.Title, ad.Description, ad.CreationDate, ad.OwnerID).
		Suffix("RETURNING ad_id").
		ToSql()
}

func (db *DB) selectAdvertisementByIDQuery(adID int64) (string, []any, error) {
	return db.builder.
		Select("ad_id", "title", "description", "creation_date", "owner_id").
		From(models.Advertisement{}.TableName()).
		Where(squirrel.Eq{"ad_id": adID}).
		ToSql()
}

// selectAllAdvertisementsQuery orders by primary key so the listing follows
// insertion order as persisted.
func (db *DB) selectAllAdvertisementsQuery() (string, []any, error) {
	return db.builder.
		Select("ad_id", "title", "description", "creation_date", "owner_id").
		From(models.Advertisement{}.TableName()).
		OrderBy("ad_id").
		ToSql()
}

func (db *DB) deleteAdvertisementQuery(adID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Advertisement{}.TableName()).
		Where(squirrel.Eq{"ad_id": adID}).
		ToSql()
}

func (db *DB) insertSessionQuery(session models.Session) (string, []any, error) {
	return db.builder.
		Insert(session.TableName()).
		Columns("session_id", "user_id", "created_at", "expires_at").
		Values(session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func (db *DB) selectSessionByIDQuery(sessionID string) (string, []any, error) {
	return db.builder.
		Select("session_id", "user_id", "created_at", "expires_at").
		From(models.Session{}.TableName()).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
}

func (db *DB) deleteSessionQuery(sessionID string) (string, []any, error) {
	return db.builder.
		Delete(models.Session{}.TableName()).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
}
