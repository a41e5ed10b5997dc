package internal

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
)

// Request signing for the Przelewy24 API. The provider verifies a SHA-384
// digest over a canonical JSON rendering of selected request fields. Field
// order, absence of whitespace and the quoting of each value are part of the
// wire contract: any deviation produces a different digest and the provider
// rejects the request. The canonical string is therefore built by hand and
// never with json.Marshal.
//
// Both functions are pure and deterministic, no I/O and no shared state.

// RegisterSign computes the sign field of a transaction/register request.
// Amount is in the currency minor unit.
func RegisterSign(sessionId string, merchantId int, amount int, currency string, crc string) string {
	payload := fmt.Sprintf(`{"sessionId":"%s","merchantId":%d,"amount":%d,"currency":"%s","crc":"%s"}`,
		sessionId, merchantId, amount, currency, crc)
	return hexDigest(payload)
}

// VerifySign computes the sign field of a transaction/verify request.
// OrderId is the provider transaction number from the payment notification.
func VerifySign(sessionId string, orderId int, amount int, currency string, crc string) string {
	payload := fmt.Sprintf(`{"sessionId":"%s","orderId":%d,"amount":%d,"currency":"%s","crc":"%s"}`,
		sessionId, orderId, amount, currency, crc)
	return hexDigest(payload)
}

func hexDigest(payload string) string {
	digest := sha512.Sum384([]byte(payload))
	return hex.EncodeToString(digest[:])
}
