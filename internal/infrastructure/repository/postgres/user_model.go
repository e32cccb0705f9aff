package postgres

type userTableModel struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Score        int    `db:"score"`
}
