package hold

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"booking-holds/internal/domain/schedule"

	"github.com/google/uuid"
)

// Namespace for deterministic hold ids. Changing it would re-key every
// in-flight idempotent retry, so it is fixed for the lifetime of the service.
var idNamespace = uuid.MustParse("5a1edb6e-9a4b-4c8e-8f33-7d1b02c4f9aa")

// DeriveID produces the content-addressed hold identity from the caller's
// request parameters: the same (session, resource, interval) always maps to
// the same id.
func DeriveID(sessionToken string, resourceID *uuid.UUID, slot schedule.Interval) uuid.UUID {
	res := ""
	if resourceID != nil {
		res = resourceID.String()
	}
	material := sessionToken + "|" + res + "|" +
		slot.Start().UTC().Format(time.RFC3339Nano) + "|" +
		slot.End().UTC().Format(time.RFC3339Nano)
	return uuid.NewSHA1(idNamespace, []byte(material))
}

// HashSession one-way hashes a session token for storage. Cleartext tokens
// never reach the database.
func HashSession(sessionToken string) string {
	sum := sha256.Sum256([]byte(sessionToken))
	return hex.EncodeToString(sum[:])
}
