package repository

import (
	"errors"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"

	"go.mongodb.org/mongo-driver/mongo"
)

// TranslateError maps driver errors onto the application error taxonomy.
// Errors it does not recognise are returned unchanged.
func TranslateError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.NotFound(resource)
	case mongo.IsDuplicateKeyError(err):
		return apperrors.Conflict(resource+" already exists", err)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return apperrors.ServiceUnavailable("Database unavailable", err)
	}
	return err
}
