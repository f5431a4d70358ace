package harness

import (
	"context"
	"net/http"
)

func withUser(r *http.Request, u *fakeUser) context.Context {
	return context.WithValue(r.Context(), userKey{}, u)
}

func userFrom(r *http.Request) *fakeUser {
	u, _ := r.Context().Value(userKey{}).(*fakeUser)
	return u
}
