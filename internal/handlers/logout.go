package handlers

import "net/http"

// NewLogoutHandler returns an HTTP handler for logout. Tokens are stateless,
// so the client discards its token and the server only acknowledges.
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	}
}
