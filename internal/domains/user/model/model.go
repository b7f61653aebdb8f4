package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "user_id"
	FieldUsername = "username"
)

type User struct {
	ID           int64   `db:"user_id"       readonly:"true"`
	Username     string  `db:"username"`
	PasswordHash string  `db:"password_hash"`
	FullName     *string `db:"full_name"`
	Phone        *string `db:"phone"`
	Email        *string `db:"email"`
}
