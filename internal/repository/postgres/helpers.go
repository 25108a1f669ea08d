package postgres

import "database/sql"

const dateLayout = "2006-01-02"

// dateArg converts an optional yyyy-mm-dd string into a driver argument,
// mapping "" to NULL.
func dateArg(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// strArg maps "" to NULL for nullable text columns.
func strArg(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func dateString(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(dateLayout)
}
