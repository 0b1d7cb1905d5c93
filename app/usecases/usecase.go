// Package usecases holds the application-layer operations. Each use case is
// constructed with its repository and a logger, validates its own request,
// and talks to storage through the repository contract only.
package usecases

import "github.com/mwidyarto/go-commerce-api/app/domain"

// wrapRepoErr re-throws domain errors unchanged so the API layer can map them
// to precise codes, and wraps anything else from the persistence layer as a
// DatabaseError carrying the attempted operation name.
func wrapRepoErr(op string, err error) error {
	if domain.IsDomainError(err) {
		return err
	}
	return &domain.DatabaseError{Op: op, Err: err}
}
