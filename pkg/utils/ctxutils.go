package utils

import (
	"context"

	"equipment-system/pkg/contextkeys"
	apperrors "equipment-system/pkg/errors"
)

// GetUserIDFromCtx достаёт идентификатор текущего пользователя,
// положенный туда auth-middleware.
func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	if userID == 0 {
		return 0, apperrors.ErrInvalidUserID
	}
	return userID, nil
}
