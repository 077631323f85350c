// Plik: pkg/utils/ctxutils.go

package utils

import (
	"context"

	"operaty-system/pkg/constants"
	"operaty-system/pkg/contextkeys"
	apperrors "operaty-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (constants.UserRole, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(constants.UserRole)
	if !ok {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return role, nil
}

func ContextWithUser(ctx context.Context, userID string, role constants.UserRole) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}
