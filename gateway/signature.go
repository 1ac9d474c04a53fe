package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

const maxReceiptLength = 40

// ComputeSignature returns hex(HMAC-SHA256(secret, payload))
func ComputeSignature(secret string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// PaymentSignaturePayload is the string the checkout signature is computed over
func PaymentSignaturePayload(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// signatureMatches compares in constant time
func signatureMatches(expected, given string) bool {
	return hmac.Equal([]byte(expected), []byte(given))
}

// BuildReceipt derives the order receipt from the registration id and the
// creation time: the id's last 12 characters, "_", then the last 8 digits of
// the Unix millisecond timestamp. The provider caps receipts at 40 characters.
func BuildReceipt(registrationID string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	receipt := lastN(registrationID, 12) + "_" + lastN(ms, 8)
	return lastN(receipt, maxReceiptLength)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
