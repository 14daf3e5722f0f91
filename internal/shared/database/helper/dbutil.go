package helper

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

func StringPtr(s string) *string {
	return &s
}

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func NullToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// =======================
// UUID (Postgres native)
// =======================

func StringToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// =======================
// DECIMAL <-> NUMERIC
// =======================

// DecimalToString renders a decimal for a Postgres numeric column.
func DecimalToString(d decimal.Decimal) string {
	return d.String()
}

// StringToDecimal parses a numeric column value; invalid input reads as zero
// so a single bad row cannot poison a whole listing.
func StringToDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
