// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/company, domain/event),
// and the funnel rules live in domain/funnel. This root package holds sentinel
// errors, typed error details, and the Step interface used for staged writes.
package domain
