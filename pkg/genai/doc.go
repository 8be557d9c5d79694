// Package genai calls the generative-content API that enriches namespace
// documents with overviews, scenarios and best practices.
//
// The client retries only rate-limit-class failures (HTTP 429 or bodies
// mentioning rate limits/quotas), backing off 1s, 2s, 4s, 8s, 16s across at
// most 5 attempts. Authentication failures and malformed requests fail
// immediately. Model output may arrive wrapped in a markdown code fence;
// StripFence and ExtractPayload normalize it before decoding. Parse
// failures keep the raw response so callers can persist it for diagnosis.
package genai
