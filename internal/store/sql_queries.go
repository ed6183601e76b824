package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-api/models"
)

// usersTable is owned by the model so that every query names the same table.
var usersTable = models.User{}.TableName()

// userColumns is the column order used by every SELECT and by scanUser.
var userColumns = []string{"id", "name", "email", "password", "cpf", "number"}

func buildInsertUserQuery(d Dialect, user models.User) (string, []any, error) {
	builder := sq.Insert(usersTable).
		Columns("name", "email", "password", "cpf", "number").
		Values(user.Name, user.Email, user.Password, user.CPF, user.Number).
		PlaceholderFormat(d.Placeholder)

	if d.ReturningID {
		builder = builder.Suffix("RETURNING id")
	}

	return builder.ToSql()
}

func buildSelectUserByIDQuery(d Dialect, id int64) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(d.Placeholder).
		ToSql()
}

func buildSelectAllUsersQuery(d Dialect) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		PlaceholderFormat(d.Placeholder).
		ToSql()
}

// buildUpdateUserQuery writes all five data columns; the merge with the
// stored row happens in Go before the call.
func buildUpdateUserQuery(d Dialect, user models.User) (string, []any, error) {
	return sq.Update(usersTable).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password", user.Password).
		Set("cpf", user.CPF).
		Set("number", user.Number).
		Where(sq.Eq{"id": user.ID}).
		PlaceholderFormat(d.Placeholder).
		ToSql()
}

func buildDeleteUserQuery(d Dialect, id int64) (string, []any, error) {
	return sq.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(d.Placeholder).
		ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CPF, &user.Number)
	return user, err
}
