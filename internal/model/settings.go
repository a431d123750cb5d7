package model

// ClinicSettings is the singleton configuration record. Exactly one
// instance exists; a missing or unreadable stored value yields
// DefaultSettings.
type ClinicSettings struct {
	ClinicName    string `json:"clinic_name"`
	ClinicAddress string `json:"clinic_address"`
	ClinicPhone   string `json:"clinic_phone"`
	ClinicTaxID   string `json:"clinic_tax_id"`
	StaffName     string `json:"staff_name"`
	StaffPosition string `json:"staff_position"`
	LicenseNumber string `json:"license_number"`
	FontSize      string `json:"font_size"`
	Theme         string `json:"theme"`
	StickerSize   string `json:"sticker_size"`
	NextReceiptNo uint32 `json:"next_receipt_no"`
}

// DefaultSettings returns the out-of-the-box clinic identity.
func DefaultSettings() ClinicSettings {
	return ClinicSettings{
		ClinicName:    "ญ.หญิงคลินิกการพยาบาลและการผดุงครรภ์",
		ClinicAddress: "83/9 หมู่ 7 ต.กุยบุรี อ.กุยบุรี จ.ประจวบคีรีขันธ์",
		ClinicPhone:   "081-014-1551",
		ClinicTaxID:   "",
		StaffName:     "นางสมหญิง วีระจินตนา",
		StaffPosition: "พยาบาลวิชาชีพชำนาญการ",
		LicenseNumber: "4511055362",
		FontSize:      "large",
		Theme:         "light",
		StickerSize:   "large",
		NextReceiptNo: 1,
	}
}
