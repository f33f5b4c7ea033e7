// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/item).
// This root package holds the sentinel errors and the typed validation and
// format errors that every layer wraps and inspects with errors.Is/As.
package domain
