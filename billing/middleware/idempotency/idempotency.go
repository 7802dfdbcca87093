package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"tuition.app/billing/model"
)

// HeaderName carries the client supplied key on every payment route.
const HeaderName = "X-Idempotency-Key"

var validate = validator.New()

// PaymentIdempotency replays the stored response when a payment request is
// retried with the same key, and rejects a retry whose body differs. The key
// is claimed atomically, so concurrent retries run the handler once.
//
//encore:middleware target=tag:idempotency
func PaymentIdempotency(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	ctx := req.Context()
	cacheKey := model.IdempotencyKey{Resource: req.Data().Path, Key: key}
	bodyHash := payloadHash(req)

	claimErr := entries.SetIfNotExists(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	switch {
	case claimErr == nil:
		return process(req, next, cacheKey, bodyHash)
	case errors.Is(claimErr, cache.KeyExists):
		return existing(req, cacheKey, bodyHash)
	default:
		rlog.Error("failed to claim idempotency key", "key", key, "error", claimErr)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}
}

// existing answers a request whose key is already held by another request.
func existing(req middleware.Request, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	entry, err := entries.Get(req.Context(), cacheKey)
	switch {
	case errors.Is(err, cache.Miss):
		// released or expired since the claim; the client retries
		return inFlight(cacheKey.Key)
	case err != nil:
		rlog.Error("failed to read idempotency entry", "key", cacheKey.Key, "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	if err := checkBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		return inFlight(cacheKey.Key)
	case model.IdempotencyStatusCompleted:
		if resp, ok := replay(req, entry, cacheKey.Key); ok {
			return resp
		}
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to replay stored response"}}
	default:
		rlog.Warn("unknown idempotency status", "key", cacheKey.Key, "status", entry.Status)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}
	if err := validate.Var(key, "max=128,printascii"); err != nil {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " must be at most 128 printable ASCII characters"}
	}
	return key, nil
}

func payloadHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

// process runs the handler for a claimed key and records the outcome. A
// failed handler releases the key so the client can retry.
func process(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	ctx := req.Context()

	resp := next(req)
	if resp.Err != nil {
		release(ctx, cacheKey)
		return resp
	}

	markCompleted(ctx, cacheKey, bodyHash, resp)
	return resp
}

func checkBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func inFlight(key string) middleware.Response {
	rlog.Info("payment request already in flight", "key", key)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
	}
}

// replay decodes the stored payload into the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyCacheEntry, key string) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil || api.ResponseType.Kind() != reflect.Ptr {
		return middleware.Response{}, false
	}

	payload := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to decode stored response", "key", key, "error", err)
		return middleware.Response{}, false
	}

	rlog.Info("replaying stored payment response", "key", key)
	return middleware.Response{Payload: payload}, true
}

func release(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := entries.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to release idempotency key", "key", cacheKey.Key, "error", err)
	}
}

func markCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, resp middleware.Response) {
	now := time.Now()
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if resp.Payload != nil {
		body, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for replay", "key", cacheKey.Key, "error", err)
			release(ctx, cacheKey)
			return
		}
		entry.Response = body
	}

	if err := entries.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to store payment response", "key", cacheKey.Key, "error", err)
	}
}

// hashing returns the hex SHA-256 of body, or "" for an empty body.
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
