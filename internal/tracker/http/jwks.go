package http

import (
	"net/http"

	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/jwtx"
	"github.com/balco/tracker/pkg/trackersdk"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set session tokens can be verified against.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	trackersdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, trackersdk.JWKSResponse(keys.PublicJWKS()))
	}
}
