package usecase

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// InsufficientPoolError is returned when a distribution request exceeds the
// unassigned pool. It carries the true available count and guarantees no
// mutation happened.
type InsufficientPoolError struct {
	Available int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("only %d unassigned leads available", e.Available)
}
