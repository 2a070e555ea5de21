package criteo

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Consent-URL signing. A consent URL carries the parameters of a consent
// request plus a keyed hash over them, so the consent portal can verify the
// URL was produced by the holder of the signing key. This utility is
// standalone and does not interact with the request pipeline.

// SignConsentURL appends a hex-encoded HMAC-SHA512 signature over the
// URL's query parameters. Parameters are signed in sorted key order so the
// signature is independent of map iteration.
func SignConsentURL(rawURL string, key []byte) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyConsentKey
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConsentURL, err)
	}

	params := parsed.Query()
	if len(params) == 0 {
		return "", ErrMissingConsentParams
	}

	params.Del("signature")
	params.Set("signature", consentSignature(params, key))
	parsed.RawQuery = params.Encode()

	return parsed.String(), nil
}

// VerifyConsentURL reports whether the URL's signature matches its
// parameters under the given key.
func VerifyConsentURL(rawURL string, key []byte) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyConsentKey
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidConsentURL, err)
	}

	params := parsed.Query()

	signature := params.Get("signature")
	if signature == "" {
		return false, nil
	}

	params.Del("signature")

	expected := consentSignature(params, key)

	return hmac.Equal([]byte(signature), []byte(expected)), nil
}

// consentSignature computes the keyed hash over sorted key=value pairs.
func consentSignature(params url.Values, key []byte) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+strings.Join(params[k], ","))
	}

	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(strings.Join(pairs, "&")))

	return hex.EncodeToString(mac.Sum(nil))
}
