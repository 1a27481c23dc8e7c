package middleware

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mcoot/gamemodules/internal/api/apierr"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/auth"
)

type contextKey string

const callerContextKey contextKey = "caller"

// Auth creates authentication middleware. Requests without proof headers
// continue as anonymous callers; requests with a bad proof are rejected.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signerHex := r.Header.Get(auth.HeaderSigner)
			signatureHex := r.Header.Get(auth.HeaderSignature)
			if signerHex == "" && signatureHex == "" {
				next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), auth.Anonymous())))
				return
			}

			proof, err := extractProof(r, signerHex, signatureHex)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			caller, err := authService.Verify(r.Context(), proof)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), caller)))
		})
	}
}

// extractProof reads the proof headers and body, restoring the body for handlers
func extractProof(r *http.Request, signerHex, signatureHex string) (auth.Proof, error) {
	signer, err := model.ParseIdentity(signerHex)
	if err != nil {
		return auth.Proof{}, apierr.NewInvalidAuthorityError("invalid " + auth.HeaderSigner + " header")
	}
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return auth.Proof{}, apierr.NewInvalidAuthorityError("invalid " + auth.HeaderSignature + " header")
	}
	unix, err := strconv.ParseInt(r.Header.Get(auth.HeaderTimestamp), 10, 64)
	if err != nil {
		return auth.Proof{}, apierr.NewInvalidAuthorityError("invalid " + auth.HeaderTimestamp + " header")
	}

	// The body is bounded by BodyLimit further up the chain
	var body []byte
	if r.Body != nil {
		body, err = io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return auth.Proof{}, apierr.NewInvalidRequestError("request body too large")
			}
			return auth.Proof{}, apierr.NewInvalidRequestError("could not read request body")
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	return auth.Proof{
		Signer:    signer,
		Signature: signature,
		Timestamp: time.Unix(unix, 0),
		Nonce:     r.Header.Get(auth.HeaderNonce),
		Method:    r.Method,
		Path:      r.URL.Path,
		Body:      body,
	}, nil
}

func withCaller(ctx context.Context, caller auth.Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// GetCaller returns the caller attached by the auth middleware.
// Without the middleware the caller is anonymous.
func GetCaller(ctx context.Context) auth.Caller {
	caller, ok := ctx.Value(callerContextKey).(auth.Caller)
	if !ok {
		return auth.Anonymous()
	}
	return caller
}
