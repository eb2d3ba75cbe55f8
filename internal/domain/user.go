package domain

type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Hash     string `db:"password_hash" json:"-"`
	Gears    int    `db:"gears" json:"gears"`
}
