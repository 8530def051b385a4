package model

// phoneNumberLength is the only stored length that can be split back into segments (3-4-4).
const phoneNumberLength = 11

// ComposePhoneNumber joins the three form segments verbatim.
func ComposePhoneNumber(phone1, phone2, phone3 string) string {
	return phone1 + phone2 + phone3
}

// SplitPhoneNumber splits an 11 character number into 3-4-4 segments.
// ok is false for any other length.
func SplitPhoneNumber(phoneNumber string) (phone1, phone2, phone3 string, ok bool) {
	if len(phoneNumber) != phoneNumberLength {
		return "", "", "", false
	}
	return phoneNumber[:3], phoneNumber[3:7], phoneNumber[7:], true
}
