package impl

import (
	"context"

	"github.com/pkg/errors"
)

// requireOwner loads an entity and fails with denied unless requesterID owns it.
// Loader errors are returned unchanged.
func requireOwner[T any](
	ctx context.Context,
	load func(ctx context.Context, id string) (T, error),
	owner func(T) string,
	id, requesterID string,
	denied error,
) (T, error) {
	var zero T

	loaded, err := load(ctx, id)
	if err != nil {
		return zero, err
	}

	if requesterID == "" || owner(loaded) != requesterID {
		return zero, errors.Wrapf(denied, "requester %q does not own %q", requesterID, id)
	}

	return loaded, nil
}
