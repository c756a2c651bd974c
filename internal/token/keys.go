package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// UserKey derives the signing key for a user's reset and activation tokens.
// The key changes whenever the stored password hash changes, which revokes
// every token issued before.
func UserKey(secret string, userID int64, hashedPassword string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(userID, 10)))
	mac.Write([]byte{0})
	mac.Write([]byte(hashedPassword))
	return hex.EncodeToString(mac.Sum(nil))
}
