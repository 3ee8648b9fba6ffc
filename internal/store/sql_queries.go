package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/campus-coffee/models"
)

const usersTable = "users"

// userColumns is the column order every SELECT uses and scanUser expects.
var userColumns = []string{
	"id",
	"login_name",
	"email_address",
	"first_name",
	"last_name",
	"created_at",
	"updated_at",
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectUserByLoginNameQuery(b sq.StatementBuilderType, loginName string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login_name": loginName}).
		ToSql()
}

// buildInsertUserQuery returns an INSERT that hands back the generated id.
func buildInsertUserQuery(b sq.StatementBuilderType, profile models.UserProfile, now time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login_name", "email_address", "first_name", "last_name", "created_at", "updated_at").
		Values(profile.LoginName, profile.EmailAddress, profile.FirstName, profile.LastName, now, now).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateUserQuery returns a full-replace UPDATE of every profile column.
// created_at is never touched.
func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, profile models.UserProfile, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("login_name", profile.LoginName).
		Set("email_address", profile.EmailAddress).
		Set("first_name", profile.FirstName).
		Set("last_name", profile.LastName).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildClearUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(usersTable).ToSql()
}
