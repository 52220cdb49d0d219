package domain

// KYCProfile stores a user's identity submission. Only the last four digits
// of the Aadhaar number are retained.
type KYCProfile struct {
	ID                    int32  `json:"id"`
	UserID                int32  `json:"user_id"`
	AadhaarLast4          string `json:"aadhaar_last4"`
	Name                  string `json:"name"`
	DOB                   string `json:"dob"`
	Address               string `json:"address"`
	IsVerified            bool   `json:"is_verified"`
	VerificationTimestamp string `json:"verification_timestamp"`
}

// MaskAadhaar reduces a full Aadhaar number to its last four digits.
func MaskAadhaar(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
