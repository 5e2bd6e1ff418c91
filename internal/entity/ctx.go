package entity

import (
	"context"
	"errors"
)

type (
	CtxKeyIP       struct{}
	CtxKeyIdentity struct{}
	CtxKeyToken    struct{}
)

func IdentityFromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(CtxKeyIdentity{}).(Identity)
	if !ok {
		return Identity{}, errors.New("data type casting")
	}

	return id, nil
}

func SetIdentityToContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity{}, id)
}

func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken{}, token)
}

func TokenFromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(CtxKeyToken{}).(string)
	if !ok {
		return "", errors.New("data type casting")
	}

	return token, nil
}

func IPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(CtxKeyIP{}).(string)
	return ip
}
