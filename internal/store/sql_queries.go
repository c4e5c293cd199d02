// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-keeper/models"
)

const (
	accountsTable      = "accounts"
	vaultSettingsTable = "vault_settings"

	// vaultCheckKey is the vault_settings key of the verification blob.
	vaultCheckKey = "pam.vault.check.v1"
)

// builder renders SQLite "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// accountColumns is the column order shared by SELECT, INSERT and scanning.
var accountColumns = []string{
	"id",
	"account_name",
	"type",
	"account_number",
	"current_card_number",
	"credit_limit",
	"open_date",
	"interest_rate_apr",
	"service_fee_amount",
	"service_fee_frequency",
	"current_balance",
	"actual_last_min_payment",
	"login_url",
	"username",
	"password_enc",
	"notes",
	"created_at",
	"updated_at",
}

// nextTopPosition places a new row ahead of every existing one.
var nextTopPosition = sq.Expr("(SELECT COALESCE(MIN(position), 0) - 1 FROM " + accountsTable + ")")

func buildSelectAccountsQuery(accountType models.AccountType) (string, []any, error) {
	q := builder.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("position ASC", "created_at DESC")

	if accountType != "" {
		q = q.Where(sq.Eq{"type": string(accountType)})
	}

	return wrapBuild(q.ToSql())
}

func buildSelectAccountQuery(id string) (string, []any, error) {
	return wrapBuild(builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

// buildInsertAccountQuery inserts row at position, which is either an int
// (explicit order) or [nextTopPosition].
func buildInsertAccountQuery(row accountRow, position any) (string, []any, error) {
	columns := append(append([]string{}, accountColumns...), "position")
	values := append(row.values(), position)

	return wrapBuild(builder.
		Insert(accountsTable).
		Columns(columns...).
		Values(values...).
		ToSql())
}

func buildUpdateAccountQuery(row accountRow) (string, []any, error) {
	q := builder.Update(accountsTable)

	// id and created_at are immutable.
	values := row.values()
	for i, col := range accountColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		q = q.Set(col, values[i])
	}

	return wrapBuild(q.Where(sq.Eq{"id": row.ID}).ToSql())
}

func buildDeleteAccountQuery(id string) (string, []any, error) {
	return wrapBuild(builder.
		Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func buildDeleteAllAccountsQuery() (string, []any, error) {
	return wrapBuild(builder.Delete(accountsTable).ToSql())
}

func buildSelectVaultCheckQuery() (string, []any, error) {
	return wrapBuild(builder.
		Select("value").
		From(vaultSettingsTable).
		Where(sq.Eq{"key": vaultCheckKey}).
		ToSql())
}

func buildInsertVaultCheckQuery(value string) (string, []any, error) {
	return wrapBuild(builder.
		Insert(vaultSettingsTable).
		Columns("key", "value").
		Values(vaultCheckKey, value).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
