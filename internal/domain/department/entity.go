package department

import "time"

type Department struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NameMaxLength matches the column width of departments.name.
const NameMaxLength = 100
