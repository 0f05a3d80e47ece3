package helpers

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// NullableTextToString returns the string value or "" when NULL
func NullableTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
